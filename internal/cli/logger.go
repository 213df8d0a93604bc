package cli

import (
	"fmt"

	"github.com/inventory-backend/stockroom/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// devは人が読む形式、それ以外はJSON
func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.IsDev() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}

func loadDotEnv(cmd *cobra.Command) {
	path, _ := cmd.Flags().GetString("env-file")
	config.LoadDotEnv(path)
}
