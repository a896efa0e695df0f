package cmd

import (
	"log"

	"github.com/spf13/cobra"

	config "todo-list.com/todo-list/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the todos table",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDotEnv()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		database, err := config.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}

		if err := config.Migrate(database); err != nil {
			return err
		}

		log.Println("todos table is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
