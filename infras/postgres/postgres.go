package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"hotelinv/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the write pool and, when a replica is configured, a separate read pool.
// Without a read host both fields share the write pool.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := connect("write", pg.Write, cfg)
	if pg.Read.Host == "" {
		return &Connection{Read: write, Write: write}
	}

	return &Connection{
		Read:  connect("read", pg.Read, cfg),
		Write: write,
	}
}

// DSN builds a postgres URL for the endpoint. Extra query values are appended as-is.
func DSN(endpoint config.PostgresEndpoint, prefix string, extra url.Values) string {
	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range extra {
		for _, v := range values {
			query.Add(key, v)
		}
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return u.String()
}

func connect(name string, endpoint config.PostgresEndpoint, cfg *config.Config) *sqlx.DB {
	pg := cfg.DB.Postgres
	dsn := DSN(endpoint, pg.Prefix, nil)

	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", pg.Prefix+endpoint.Name).
		Logger()

	var lastErr error

	for attempt := 1; attempt <= max(pg.MaxRetry, 1); attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetime) * time.Minute)

			logger.Info().Int("attempt", attempt).Msg("Connected to database")

			return db
		}

		lastErr = err
		logger.Warn().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Fatal().Err(lastErr).Msg("Giving up on database connection")

	return nil
}
