// runner is Guacamole Runner: glide over a scrolling hex field in the
// terminal, grow crops on tilled ground and bump into planes to stay up.
//
// Usage:
//
//	runner                   - Start the mode picker menu
//	runner list              - List available modes
//	runner play              - Fly right away
//	runner menu              - Start the mode picker menu
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show best flights
//	runner map               - Print the generated terrain
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set the terrain seed (0 = config default)
//	--config <path>     - Load a custom runner config
//	--difficulty <name> - easy, normal, hard or fixed
//	--db <path>         - Set database path (default: ~/.guacamole/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/guacamole-runner/internal/config"
	"github.com/vovakirdan/guacamole-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Guacamole Runner - glide over a hex field in your terminal",
	Long: `Guacamole Runner is a terminal glider game. Steer over a scrolling
hexagonal field, turn tilled soil into crops and keep airborne by
bumping into passing planes.

Available commands:
  list     - Show all modes
  play     - Fly right away
  menu     - Interactive mode picker (default)
  serve    - Start SSH server for remote play
  scores   - View best flights
  map      - Print the generated terrain

Examples:
  runner
  runner play --difficulty hard
  runner play --editor
  runner serve --ssh :2222
  runner scores`,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) { closeLog() },
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Terrain seed (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: none while playing, stderr for serve)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapCmd)
}

// logger is shared by every command. It stays silent until setupLogging
// runs, since the TUI owns the terminal.
var (
	logger  = log.New(io.Discard)
	logSink *os.File
)

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logSink = f
		w = f
	case cmd.Name() == "serve":
		w = os.Stderr
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	runner.SetLogger(logger)
	return nil
}

func closeLog() {
	if logSink != nil {
		logSink.Close()
	}
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
