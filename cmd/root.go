package main

import (
	"database/sql"

	"heat_capacity_game/internal/config"
	"heat_capacity_game/internal/logger"
	"heat_capacity_game/internal/repository/db"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "heatgame",
		Short:         "Two-vessel heat capacity game",
		Long:          "heatgame heats one of two vessels with different heat capacities; bring both to the target temperature. Play in the terminal or serve the game over HTTP and WebSocket.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default configs/config.yml)")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newPlayCmd(opts),
		newHashPassphraseCmd(),
		newConfigCmd(opts),
	)
	return rootCmd
}

// loadConfig reads configs/config.yml (or --config) with env overrides.
func (o *rootOptions) loadConfig() (config.Config, error) {
	return config.Load(viper.New(), o.configFile)
}

// openDB initializes the SQLite journal using configuration.
func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	if path == "" {
		log.Infow("db.path not set in config; using in-memory journal", "default", db.MemoryPath)
		path = db.MemoryPath
	}
	return db.InitDB(path)
}
