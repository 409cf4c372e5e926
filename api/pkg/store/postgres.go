package store

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/types"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type PostgresStore struct {
	cfg config.Store

	gdb *gorm.DB
}

var _ Store = &PostgresStore{}

func NewPostgresStore(
	cfg config.Store,
) (*PostgresStore, error) {

	// Waiting for connection
	gormDB, err := connect(context.Background(), connectConfig{
		driver:          cfg.Driver,
		sqlitePath:      cfg.SqlitePath,
		host:            cfg.Host,
		port:            cfg.Port,
		schemaName:      cfg.Schema,
		database:        cfg.Database,
		username:        cfg.Username,
		password:        cfg.Password,
		ssl:             cfg.SSL,
		idleConns:       cfg.IdleConns,
		maxConns:        cfg.MaxConns,
		maxConnIdleTime: cfg.MaxConnIdleTime,
		maxConnLifetime: cfg.MaxConnLifetime,
		attempts:        cfg.ConnectAttempts,
		delay:           cfg.ConnectDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &PostgresStore{
		cfg: cfg,
		gdb: gormDB,
	}

	if cfg.AutoMigrate {
		err = store.autoMigrate()
		if err != nil {
			return nil, fmt.Errorf("there was an error doing the automigration: %s", err.Error())
		}
	}

	return store, nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStore) autoMigrate() error {
	err := s.gdb.WithContext(context.Background()).AutoMigrate(
		&types.User{},
		&types.Group{},
		&types.GroupUser{},
		&types.Role{},
		&types.Project{},
		&types.LinkedProject{},
		&types.MaintainedProject{},
		&types.Package{},
		&types.Architecture{},
		&types.Repository{},
		&types.RepositoryArchitecture{},
		&types.PathElement{},
		&types.ReleaseTarget{},
		&types.Flag{},
		&types.Relationship{},
		&types.WatchedProject{},
		&types.AttribType{},
		&types.Attrib{},
		&types.AttribValue{},
		&types.BsRequest{},
		&types.BsRequestAction{},
		&types.Distribution{},
	)
	if err != nil {
		return err
	}

	return s.seed(context.Background())
}

var defaultArchitectures = []string{"x86_64", "i586", "aarch64", "armv7l", "ppc64le", "s390x", "riscv64", "local"}

var defaultAttribTypes = [][2]string{
	{types.AttribNamespaceOBS, types.AttribFailComment},
	{types.AttribNamespaceOBS, types.AttribVeryImportant},
	{types.AttribNamespaceOBS, types.AttribMaintenanceProject},
	{types.AttribNamespaceOpenSUSE, types.AttribUpstreamVersion},
	{types.AttribNamespaceOpenSUSE, types.AttribUpstreamTarballURL},
}

// seed creates the rows every installation needs
func (s *PostgresStore) seed(ctx context.Context) error {
	db := s.gdb.WithContext(ctx)
	for _, title := range types.AllRoles {
		if err := db.Where(types.Role{Title: title}).FirstOrCreate(&types.Role{}).Error; err != nil {
			return fmt.Errorf("error seeding role %s: %w", title, err)
		}
	}
	for _, name := range defaultArchitectures {
		arch := types.Architecture{Name: name, Available: name != "local"}
		if err := db.Where(types.Architecture{Name: name}).Attrs(arch).FirstOrCreate(&types.Architecture{}).Error; err != nil {
			return fmt.Errorf("error seeding architecture %s: %w", name, err)
		}
	}
	for _, at := range defaultAttribTypes {
		if err := db.Where(types.AttribType{Namespace: at[0], Name: at[1]}).FirstOrCreate(&types.AttribType{}).Error; err != nil {
			return fmt.Errorf("error seeding attribute type %s:%s: %w", at[0], at[1], err)
		}
	}
	return nil
}

type connectConfig struct {
	driver          string
	sqlitePath      string
	host            string
	port            int
	schemaName      string
	database        string
	username        string
	password        string
	ssl             bool
	idleConns       int
	maxConns        int
	maxConnIdleTime time.Duration
	maxConnLifetime time.Duration
	attempts        uint
	delay           time.Duration
}

func (c connectConfig) dialector() (gorm.Dialector, error) {
	switch c.driver {
	case DriverSqlite:
		return sqlite.Open(c.sqlitePath), nil
	case DriverPostgres, "":
		sslMode := "disable"
		if c.ssl {
			sslMode = "require"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			c.host, c.username, c.password, c.database, c.port, sslMode)
		if c.schemaName != "" {
			dsn = fmt.Sprintf("%s search_path=%s", dsn, c.schemaName)
		}
		return postgres.New(postgres.Config{DSN: dsn}), nil
	default:
		return nil, fmt.Errorf("unknown database driver: %s", c.driver)
	}
}

func connect(ctx context.Context, cfg connectConfig) (*gorm.DB, error) {
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}

	attempts := cfg.attempts
	if attempts == 0 {
		attempts = 1
	}

	gormConfig := &gorm.Config{
		Logger: NewGormLogger(time.Second, true),
	}
	if cfg.schemaName != "" && cfg.driver != DriverSqlite {
		gormConfig.NamingStrategy = schema.NamingStrategy{
			TablePrefix: cfg.schemaName + ".",
		}
	}

	return retry.DoWithData(func() (*gorm.DB, error) {
		db, err := gorm.Open(dialector, gormConfig)
		if err != nil {
			return nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if cfg.driver == DriverSqlite {
			// a single writer avoids "database is locked"
			sqlDB.SetMaxOpenConns(1)
		} else {
			sqlDB.SetMaxIdleConns(cfg.idleConns)
			sqlDB.SetMaxOpenConns(cfg.maxConns)
			sqlDB.SetConnMaxIdleTime(cfg.maxConnIdleTime)
			sqlDB.SetConnMaxLifetime(cfg.maxConnLifetime)
		}

		return db, nil
	},
		retry.Attempts(attempts),
		retry.Delay(cfg.delay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Msg("failed to connect to database, retrying")
		}),
	)
}
