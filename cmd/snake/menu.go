package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the main menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  snake menu
  snake menu --difficulty easy
  snake menu --db ./snake.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	rt := runtimeConfig()
	a.logger.Info("menu started", "width", rt.ScreenW, "height", rt.ScreenH)

	// Menu loop
	for {
		res, err := tui.RunMenu(a.bestScore(), a.settings, rt)
		if err != nil {
			return err
		}
		rt = res.Config

		switch res.Choice {
		case tui.ChoicePlay:
			exit, err := tui.Run(a.session(rt))
			if err != nil {
				return err
			}
			if exit == tui.ExitQuit {
				return nil
			}

		case tui.ChoiceOptions:
			settings, quit, err := tui.RunOptions(a.store, a.settings, rt, a.logger)
			if err != nil {
				return err
			}
			a.settings = settings
			if quit {
				return nil
			}

		case tui.ChoiceScoreboard:
			goBack, err := tui.RunScoreboard(a.store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			a.logger.Info("bye")
			return nil
		}
	}
}
