package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"hotelinv/config"
	"hotelinv/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

// Migration actions understood by Runner.
const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

func open(cfg *config.Config) (*migrate.Migrate, error) {
	pg := cfg.DB.Postgres
	dsn := postgres.DSN(pg.Write, pg.Prefix, url.Values{"x-migrations-table": {pg.MigrationTable}})

	mig, err := migrate.New(migrationsSource, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one migration action against the write database.
func Runner(cfg *config.Config, action string) error {
	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	var step func() error

	switch action {
	case ActionUp:
		step = mig.Up
	case ActionDown:
		step = func() error { return mig.Steps(-1) }
	case ActionStepUp:
		step = func() error { return mig.Steps(1) }
	case ActionDrop:
		step = mig.Down
	case ActionVersion:
		version, dirty, err := mig.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if err := step(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
