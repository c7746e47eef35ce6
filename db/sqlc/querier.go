package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type Querier interface {
	GetHostAnalytics(ctx context.Context, hostIp pqtype.Inet) (GetHostAnalyticsRow, error)
	RecordSimulation(ctx context.Context, arg RecordSimulationParams) error
}

var _ Querier = (*Queries)(nil)
