package cmd

import (
	"log"

	"blog-api/core/backup"
	"blog-api/core/config"
	"blog-api/core/database"
	"blog-api/core/logger"
	"blog-api/core/storage"
	"blog-api/core/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export a JSON snapshot of all tables to object storage",
	Long:  `Dumps the posts, comments and users tables as a single JSON snapshot object.`,
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

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		object, err := backup.Run(cmd.Context(), st, client, cfg.Storage.Bucket, logg)
		if err != nil {
			logg.Fatal("Backup failed", zap.Error(err))
		}
		logg.Info("Backup complete", zap.String("object", object))
	},
}

func init() {
	RootCmd.AddCommand(backupCmd)
}
