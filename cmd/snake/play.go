package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagMode  string
	flagWalls bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game directly",
	Long: `Start playing without going through the menu.

Controls:
  Arrows/WASD  - Steer
  Space        - Shoot (armed mode)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentle speed-up
  normal - Default curve
  hard   - Faster start, steep speed-up
  fixed  - No speed-up, stays at the starting speed

Examples:
  snake play
  snake play --mode armed
  snake play --walls=false --difficulty fixed
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: classic or armed (default: saved option)")
	playCmd.Flags().BoolVar(&flagWalls, "walls", true, "Walls end the run; false wraps around the board")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	// Flags override the saved options for this run only
	if cmd.Flags().Changed("mode") {
		mode, ok := engine.ParseMode(flagMode)
		if !ok {
			return fmt.Errorf("unknown mode %q (want classic or armed)", flagMode)
		}
		a.settings.Mode = string(mode)
	}
	if cmd.Flags().Changed("walls") {
		a.settings.Walls = flagWalls
	}

	sess := a.session(runtimeConfig())
	a.logger.Info("game started", "mode", sess.Settings.Mode, "walls", sess.Settings.Walls)

	if _, err := tui.Run(sess); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
