package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool

	headerColor  = color.New(color.FgBlue, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// rootCmd runs the simulation when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:     "battleship-sim",
	Version: "dev",
	Short:   "Place ships and skill masks on a battleship board",
	Long: `battleship-sim places fixed-size ships and area skills (cone, cross, diamond)
on a 10x10 board from a scenario file, checks bounds and overlaps, and prints
the resulting board.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSimulation,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output the run report in JSON format")

	addRunFlags(rootCmd)
	addRunFlags(runCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(masksCmd)
	rootCmd.AddCommand(validateCmd)
}
