// Package factory constructs backend dependencies from configuration.
package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ayushi-devx/Virtual-Assistant/internal/config"
	storepkg "github.com/ayushi-devx/Virtual-Assistant/internal/store"
	storepg "github.com/ayushi-devx/Virtual-Assistant/internal/store/postgres"
	storesqlite "github.com/ayushi-devx/Virtual-Assistant/internal/store/sqlite"
)

// NewStore returns a store.Store for the configured driver. cfg must have
// passed ResolveDefaults, so DBDriver is either "postgres" or "sqlite".
func NewStore(cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("ASSISTANT_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
		s, err := storepg.New(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.DBDriver).Msg("store ready")
		return s, nil
	case "sqlite":
		s, err := storesqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("store ready")
		return s, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
