//go:build integration

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/2beens/gyminsights/internal/config"
	"github.com/2beens/gyminsights/internal/server"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	pgUser     = "postgres"
	pgPassword = "postgres"
	pgDBName   = "gymstats"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *server.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (*Suite, error) {
	var err error
	suite := &Suite{}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("new dockertest pool: %w", err)
	}
	suite.dockerPool.MaxWait = time.Minute

	if err = suite.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping docker: %w", err)
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		return nil, fmt.Errorf("setup postgres: %w", err)
	}

	suite.server, err = server.NewServer(ctx, server.NewServerParams{
		Config:                  testConfig(pgPort),
		VersionInfo:             "test-version-info",
		PostgresPassword:        pgPassword,
		HoneycombTracingEnabled: false,
	})
	if err != nil {
		suite.cleanup()
		return nil, fmt.Errorf("new server: %w", err)
	}

	suite.server.Serve(serverHost, serverPort)

	return suite, nil
}

func (s *Suite) cleanup() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func testConfig(postgresPort string) *config.Config {
	return &config.Config{
		Host:                  serverHost,
		Port:                  serverPort,
		Environment:           "development",
		AllowedOrigins:        []string{"http://localhost:8080"},
		LogLevel:              "debug",
		LogToStdout:           true,
		PostgresHost:          "localhost",
		PostgresPort:          postgresPort,
		PostgresDBName:        pgDBName,
		PostgresUser:          pgUser,
		PostgresMaxConns:      4,
		PrometheusMetricsHost: "localhost",
		PrometheusMetricsPort: "9002",
		Insights: config.Insights{
			TimeDirections: map[string]string{"2k Row": "lower"},
		},
	}
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return "", fmt.Errorf("run postgres: %w", err)
	}
	s.teardown = append(s.teardown, func() {
		if err := s.dockerPool.Purge(pgResource); err != nil {
			log.Errorf("purge postgres: %s", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", pgUser, pgPassword, pgPort, pgDBName)

	// the container accepts connections a bit after it starts
	if err := s.dockerPool.Retry(func() error {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return err
		}
		s.DB = db
		return nil
	}); err != nil {
		return "", fmt.Errorf("connect postgres: %w", err)
	}

	if _, err := s.DB.Exec(initSQL); err != nil {
		return "", fmt.Errorf("run init script: %w", err)
	}

	log.Debugf("postgres ready on port %s", pgPort)
	return pgPort, nil
}

// resetData replaces the seed of every test.
func (s *Suite) resetData(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `TRUNCATE gymstats_entry, gymstats_block;`)
	return err
}

func (s *Suite) addEntry(ctx context.Context, id, owner, date, name string, tracked bool, metrics string) error {
	_, err := s.DB.ExecContext(
		ctx,
		`INSERT INTO gymstats_entry (id, owner_id, date, created_at, name, tracked, metrics)
		VALUES ($1, $2, $3::date, $3::date + TIME '18:00', $4, $5, $6::jsonb);`,
		id, owner, date, name, tracked, metrics,
	)
	return err
}

func (s *Suite) addBlock(ctx context.Context, id, owner, name, startDate string, durationWeeks int) error {
	_, err := s.DB.ExecContext(
		ctx,
		`INSERT INTO gymstats_block (id, owner_id, name, start_date, duration_weeks)
		VALUES ($1, $2, $3, $4::date, $5);`,
		id, owner, name, startDate, durationWeeks,
	)
	return err
}

const initSQL = `
CREATE TABLE public.gymstats_entry
(
    id         VARCHAR PRIMARY KEY,
    owner_id   VARCHAR     NOT NULL,
    date       TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ,
    name       VARCHAR     NOT NULL,
    details    TEXT,
    tracked    BOOLEAN     NOT NULL DEFAULT TRUE,
    metrics    JSONB       NOT NULL DEFAULT '{}'
);

ALTER TABLE public.gymstats_entry OWNER TO postgres;
CREATE INDEX ix_gymstats_entry_owner_date ON public.gymstats_entry (owner_id, date, created_at);

CREATE TABLE public.gymstats_block
(
    id             VARCHAR PRIMARY KEY,
    owner_id       VARCHAR     NOT NULL,
    name           VARCHAR     NOT NULL,
    start_date     TIMESTAMPTZ NOT NULL,
    end_date       TIMESTAMPTZ,
    duration_weeks INTEGER,
    completed_date TIMESTAMPTZ
);

ALTER TABLE public.gymstats_block OWNER TO postgres;
CREATE INDEX ix_gymstats_block_owner ON public.gymstats_block (owner_id, start_date);
`
