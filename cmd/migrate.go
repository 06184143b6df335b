package cmd

import (
	"log"

	"blog-api/core/config"
	"blog-api/core/database"
	"blog-api/core/logger"
	"blog-api/core/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables",
	Long:  `Creates the posts, comments and users tables if they do not exist.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		conn, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		st, err := store.New(conn)
		if err != nil {
			logg.Fatal("Failed to initialize store adapter", zap.Error(err))
		}

		created, err := database.Migrate(cmd.Context(), st)
		if err != nil {
			logg.Fatal("Migration failed", zap.Error(err))
		}
		logg.Info("Migration complete", zap.Strings("tables", created))
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
