package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

const getHostAnalytics = `-- name: GetHostAnalytics :one
SELECT simulations_run, ships_placed, placements_rejected, skill_cells_marked
FROM sim_host_analytics
WHERE host_ip = $1
`

type GetHostAnalyticsRow struct {
	SimulationsRun     int64 `json:"simulations_run"`
	ShipsPlaced        int64 `json:"ships_placed"`
	PlacementsRejected int64 `json:"placements_rejected"`
	SkillCellsMarked   int64 `json:"skill_cells_marked"`
}

func (q *Queries) GetHostAnalytics(ctx context.Context, hostIp pqtype.Inet) (GetHostAnalyticsRow, error) {
	row := q.db.QueryRowContext(ctx, q.bind(getHostAnalytics), hostIp)
	var i GetHostAnalyticsRow
	err := row.Scan(
		&i.SimulationsRun,
		&i.ShipsPlaced,
		&i.PlacementsRejected,
		&i.SkillCellsMarked,
	)
	return i, err
}

const recordSimulation = `-- name: RecordSimulation :exec
INSERT INTO sim_host_analytics (host_ip, simulations_run, ships_placed, placements_rejected, skill_cells_marked)
VALUES ($1, 1, $2, $3, $4)
ON CONFLICT (host_ip) DO UPDATE SET
    simulations_run = sim_host_analytics.simulations_run + 1,
    ships_placed = sim_host_analytics.ships_placed + excluded.ships_placed,
    placements_rejected = sim_host_analytics.placements_rejected + excluded.placements_rejected,
    skill_cells_marked = sim_host_analytics.skill_cells_marked + excluded.skill_cells_marked,
    updated_at = CURRENT_TIMESTAMP
`

type RecordSimulationParams struct {
	HostIp             pqtype.Inet `json:"host_ip"`
	ShipsPlaced        int64       `json:"ships_placed"`
	PlacementsRejected int64       `json:"placements_rejected"`
	SkillCellsMarked   int64       `json:"skill_cells_marked"`
}

func (q *Queries) RecordSimulation(ctx context.Context, arg RecordSimulationParams) error {
	_, err := q.db.ExecContext(ctx, q.bind(recordSimulation),
		arg.HostIp,
		arg.ShipsPlaced,
		arg.PlacementsRejected,
		arg.SkillCellsMarked,
	)
	return err
}
