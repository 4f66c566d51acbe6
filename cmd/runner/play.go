package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/games/runner"
	"github.com/vovakirdan/guacamole-runner/internal/platform/tui"
	"github.com/vovakirdan/guacamole-runner/internal/registry"
	"github.com/vovakirdan/guacamole-runner/internal/storage"
)

var flagEditor bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Fly right away",
	Long: `Start a flight in the given mode (default: runner).

Controls:
  Up/W       - Climb
  Down/S     - Dive
  Left/A     - Brake
  Right/D    - Drift forward
  Mouse      - Left click lowers a tile, right click raises it (editor)
  P          - Pause
  Space/R    - Restart (after landing)
  Q/Esc      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  runner play
  runner play --difficulty hard
  runner play --editor
  runner play runner_editor --seed 7
  runner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEditor, "editor", false, "Enable the mouse tile editor")
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// configureRunner hands the command line settings to the runner modes
// before they are created.
func configureRunner() {
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	if flagSeed != 0 {
		runner.SetMapSeed(flagSeed)
	}
}

// openStore opens the score database. Flights still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := runner.ModeRunner
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagEditor {
		gameID = runner.ModeEditor
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available modes.")
		os.Exit(1)
	}

	configureRunner()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	logger.Info("flight started", "mode", gameID, "difficulty", flagDifficulty)

	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
