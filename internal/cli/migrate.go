package cli

import (
	"github.com/inventory-backend/stockroom/internal/config"
	"github.com/inventory-backend/stockroom/internal/infra/db"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the supplier and product tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			loadDotEnv(cmd)
			cfg, err := config.LoadForMigrate()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			gormDB, err := db.Connect(cfg)
			if err != nil {
				logger.Error("failed to connect database", zap.Error(err))
				return err
			}
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := db.Migrate(gormDB); err != nil {
				logger.Error("migration failed", zap.Error(err))
				return err
			}
			logger.Info("migration completed")
			return nil
		},
	}
}
