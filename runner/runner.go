package runner

import (
	"context"
	"log"
	"net"

	"github.com/saeidalz13/battleship-sim/db/sqlc"
	"github.com/saeidalz13/battleship-sim/internal/config"
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
	"github.com/saeidalz13/battleship-sim/internal/render"
	"github.com/saeidalz13/battleship-sim/internal/scenario"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

type Runner struct {
	stage     string
	renderer  render.Renderer
	analytics *sqlc.AnalyticsManager
	ipnet     net.IPNet
	logger    *log.Logger
}

type Option func(*Runner) error

func NewRunner(optFuncs ...Option) (*Runner, error) {
	r := Runner{
		stage:  config.StageDev,
		logger: log.Default(),
	}
	for _, opt := range optFuncs {
		if err := opt(&r); err != nil {
			return nil, err
		}
	}

	if r.analytics != nil && r.ipnet.IP == nil {
		r.ipnet = HostIpNet()
	}

	return &r, nil
}

func WithStage(stage string) Option {
	return func(r *Runner) error {
		if stage != config.StageProd && stage != config.StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		r.stage = stage
		return nil
	}
}

func WithRenderer(renderer render.Renderer) Option {
	return func(r *Runner) error {
		r.renderer = renderer
		return nil
	}
}

func WithAnalytics(analytics *sqlc.AnalyticsManager) Option {
	return func(r *Runner) error {
		r.analytics = analytics
		return nil
	}
}

func WithHostIpNet(ipnet net.IPNet) Option {
	return func(r *Runner) error {
		r.ipnet = ipnet
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) error {
		r.logger = logger
		return nil
	}
}

// Run plays one scenario on a fresh grid. A rejected ship stops the run:
// the error names the ship and nothing is rendered.
func (r *Runner) Run(ctx context.Context, sc scenario.Scenario) (mb.Report, error) {
	sim := mb.NewSimulation(sc.GridSize)
	ships, skills := sc.Ships(), sc.Skills()

	if r.stage == config.StageDev {
		r.logger.Printf("simulation %s\tscenario: %s\tships: %d\tskills: %d", sim.Uuid(), sc.Source, len(ships), len(skills))
	}

	report, runErr := sim.Run(ships, skills)
	if runErr != nil {
		last := report.Ships[len(report.Ships)-1]
		r.logger.Printf("simulation %s\tcould not place ship %q at (%d,%d)", sim.Uuid(), last.Name, last.Start.Row, last.Start.Col)
	}

	r.recordAnalytics(ctx, report)

	if runErr != nil {
		return report, runErr
	}

	if r.renderer != nil {
		if err := r.renderer.Render(sim.Grid()); err != nil {
			return report, err
		}
	}

	return report, nil
}

// Analytics failures are logged and never fail the run.
func (r *Runner) recordAnalytics(ctx context.Context, report mb.Report) {
	if r.analytics == nil {
		return
	}

	counts := sqlc.RunCounts{
		ShipsPlaced:      report.ShipsPlaced(),
		SkillCellsMarked: report.SkillCells,
	}
	if report.Rejected() {
		counts.PlacementsRejected = 1
	}

	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := r.analytics.RecordSimulation(ctx, r.ipnet, counts); err != nil {
		r.logger.Println(err)
	}
}
