package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagSaved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, as YAML.

The file is looked up in this order: --config, ~/.snake/configs/snake.yaml,
./configs/snake.yaml, then the built-in defaults. The difficulty preset is
applied on top. With --saved, options saved from the menu are applied too.

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config --difficulty hard
  snake config --saved`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagSaved, "saved", false, "Apply options saved in the database")
}

func runConfig(_ *cobra.Command, _ []string) error {
	a, err := newApp(flagSaved)
	if err != nil {
		return err
	}
	defer a.close()

	data, err := config.Marshal(a.effectiveConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
