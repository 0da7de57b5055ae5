package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/popup/internal/config"
	"github.com/marcus/popup/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and create the demo database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd, getBaseDir())
	},
}

func runInit(cmd *cobra.Command, dir string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := os.Stat(config.Path(dir)); os.IsNotExist(err) {
		if err := config.Save(dir, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.Path(dir))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config exists: %s\n", config.Path(dir))
	}

	dbPath := cfg.ResolveDBPath(dir)
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Database ready: %s\n", dbPath)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
