package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/saeidalz13/battleship-sim/db"
	"github.com/saeidalz13/battleship-sim/db/sqlc"
	"github.com/saeidalz13/battleship-sim/internal/config"
	"github.com/saeidalz13/battleship-sim/internal/render"
	"github.com/saeidalz13/battleship-sim/internal/scenario"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
	"github.com/saeidalz13/battleship-sim/runner"
	"github.com/spf13/cobra"
)

var (
	scenarioPath string
	renderMode   string
	noColor      bool
	analyticsDsn string
	screenHold   time.Duration
	envFile      string
)

// runCmd is the explicit form of the root command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario and print the board",
	Long: `Run places every ship of the scenario in order, stops at the first ship that
is out of bounds or overlaps another one, then applies every skill and prints
the board.

Without --scenario the built-in board is used.`,
	Args: cobra.NoArgs,
	RunE: runSimulation,
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Scenario YAML file (env SCENARIO_PATH)")
	cmd.Flags().StringVarP(&renderMode, "render", "r", "", "Render mode: text, glyph or screen (env RENDER_MODE)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored glyphs (env NO_COLOR)")
	cmd.Flags().StringVar(&analyticsDsn, "analytics-dsn", "", "postgres:// or sqlite:// dsn for run analytics (env ANALYTICS_DSN)")
	cmd.Flags().DurationVar(&screenHold, "hold", 0, "How long the screen view stays up (env SCREEN_HOLD)")
	cmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Env file loaded outside prod")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	sc, err := loadScenario(cfg.ScenarioPath)
	if err != nil {
		return err
	}

	// The JSON report owns stdout, the board is skipped
	var renderer render.Renderer
	if !jsonOutput {
		renderer, err = render.New(cfg.RenderMode, cmd.OutOrStdout(), render.Options{
			Colored:    !cfg.NoColor && !color.NoColor,
			ScreenHold: cfg.ScreenHold,
		})
		if err != nil {
			return err
		}
	}

	opts := []runner.Option{
		runner.WithStage(cfg.Stage),
		runner.WithRenderer(renderer),
	}

	if cfg.AnalyticsDsn != "" {
		conn, driver, err := db.Open(cfg.AnalyticsDsn)
		if err != nil {
			// for now not failing the run for it
			log.Println("analytics disabled:", err)
		} else {
			defer conn.Close()
			opts = append(opts, runner.WithAnalytics(sqlc.NewDbManager(sqlc.NewQueries(conn, driver)).Analytics))
		}
	}

	r, err := runner.NewRunner(opts...)
	if err != nil {
		return err
	}

	report, runErr := r.Run(cmd.Context(), sc)

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		return runErr
	}

	if runErr != nil {
		return runErr
	}

	printReport(cmd, report)
	return nil
}

// Flags win over the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("scenario") {
		cfg.ScenarioPath = scenarioPath
	}
	if flags.Changed("render") {
		cfg.RenderMode = renderMode
	}
	if flags.Changed("no-color") {
		cfg.NoColor = noColor
	}
	if flags.Changed("analytics-dsn") {
		cfg.AnalyticsDsn = analyticsDsn
	}
	if flags.Changed("hold") {
		cfg.ScreenHold = screenHold
	}
}

func loadScenario(path string) (scenario.Scenario, error) {
	if path == "" {
		return scenario.Default()
	}
	return scenario.Load(path)
}

func printReport(cmd *cobra.Command, report mb.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	headerColor.Fprintf(out, "Ships (%d placed)\n", report.ShipsPlaced())
	for _, sh := range report.Ships {
		fmt.Fprintf(out, "  %-16s start (%d,%d)  cells %s\n", sh.Name, sh.Start.Row, sh.Start.Col, formatCells(sh.Cells))
	}

	headerColor.Fprintf(out, "Skills (%d applied)\n", len(report.Skills))
	for _, sk := range report.Skills {
		fmt.Fprintf(out, "  %-16s %-8s origin (%d,%d)  marked %d\n", sk.Name, sk.Kind, sk.Origin.Row, sk.Origin.Col, sk.CellsMarked)
	}

	successColor.Fprintf(out, "simulation %s: %d ship cells, %d skill cells, %d water cells\n",
		report.SimulationUuid, report.ShipCells, report.SkillCells, report.EmptyCells)
}

func formatCells(cells []mb.Coordinates) string {
	s := ""
	for i, c := range cells {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return s
}
