package sqlc

import (
	"context"
	"net"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

type RunCounts struct {
	ShipsPlaced        int
	PlacementsRejected int
	SkillCellsMarked   int
}

func (a *AnalyticsManager) RecordSimulation(ctx context.Context, hostIpNet net.IPNet, counts RunCounts) error {
	return a.queries.RecordSimulation(ctx, RecordSimulationParams{
		HostIp:             pqtype.Inet{IPNet: hostIpNet, Valid: true},
		ShipsPlaced:        int64(counts.ShipsPlaced),
		PlacementsRejected: int64(counts.PlacementsRejected),
		SkillCellsMarked:   int64(counts.SkillCellsMarked),
	})
}

func (a *AnalyticsManager) GetHostAnalytics(ctx context.Context, hostIpNet net.IPNet) (GetHostAnalyticsRow, error) {
	return a.queries.GetHostAnalytics(ctx, pqtype.Inet{IPNet: hostIpNet, Valid: true})
}
