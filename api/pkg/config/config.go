package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type ServerConfig struct {
	WebServer WebServer
	Store     Store
	Backend   Backend
	Status    Status
	Diststats Diststats
	PubSub    PubSub
	Janitor   Janitor

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" description:"The log level (trace, debug, info, warn, error)."`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"true" description:"Write human readable logs instead of JSON."`
}

func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

type WebServer struct {
	URL  string `envconfig:"SERVER_URL" description:"The URL the api server is listening on."`
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0" description:"The host to bind the api server to."`
	Port int    `envconfig:"SERVER_PORT" default:"80" description:"The port to bind the api server to."`

	// the frontend proxy authenticates users and passes the login in this header
	AuthProxyHeader string `envconfig:"AUTH_PROXY_HEADER" default:"X-Username" description:"The header carrying the login of the authenticated user."`
	// logins that are always treated as admins
	// if '*' is included it means ALL users
	AdminIDs []string `envconfig:"ADMIN_USER_IDS" description:"Logins of admin users."`

	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s" description:"Maximum time to read request headers."`
}

type Store struct {
	// postgres or sqlite
	Driver     string `envconfig:"DATABASE_DRIVER" default:"postgres" description:"The database driver (postgres or sqlite)."`
	SqlitePath string `envconfig:"SQLITE_PATH" default:"obs.db" description:"The sqlite database file when the sqlite driver is used."`

	Host     string `envconfig:"POSTGRES_HOST" description:"The host to connect to the postgres server."`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432" description:"The port to connect to the postgres server."`
	Database string `envconfig:"POSTGRES_DATABASE" default:"obs" description:"The database to connect to the postgres server."`
	Username string `envconfig:"POSTGRES_USER" description:"The username to connect to the postgres server."`
	Password string `envconfig:"POSTGRES_PASSWORD" description:"The password to connect to the postgres server."`
	SSL      bool   `envconfig:"POSTGRES_SSL" default:"false"`
	Schema   string `envconfig:"POSTGRES_SCHEMA"` // Defaults to public

	AutoMigrate     bool          `envconfig:"DATABASE_AUTO_MIGRATE" default:"true" description:"Should we automatically run the migrations?"`
	MaxConns        int           `envconfig:"DATABASE_MAX_CONNS" default:"50"`
	IdleConns       int           `envconfig:"DATABASE_IDLE_CONNS" default:"25"`
	MaxConnLifetime time.Duration `envconfig:"DATABASE_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `envconfig:"DATABASE_MAX_CONN_IDLE_TIME" default:"1m"`

	ConnectAttempts uint          `envconfig:"DATABASE_CONNECT_ATTEMPTS" default:"10" description:"How many times to try connecting on startup."`
	ConnectDelay    time.Duration `envconfig:"DATABASE_CONNECT_DELAY" default:"2s" description:"Delay between connection attempts."`
}

type Backend struct {
	URL           string        `envconfig:"BACKEND_URL" default:"http://localhost:5352" description:"The URL of the source/build backend."`
	Token         string        `envconfig:"BACKEND_TOKEN" description:"Bearer token sent to the backend."`
	RetryMax      int           `envconfig:"BACKEND_RETRY_MAX" default:"3" description:"How many times to retry failed backend calls."`
	TLSSkipVerify bool          `envconfig:"BACKEND_TLS_SKIP_VERIFY" default:"false"`
	Timeout       time.Duration `envconfig:"BACKEND_TIMEOUT" default:"60s" description:"Timeout for a single backend call."`
}

type Status struct {
	CacheTTL    time.Duration `envconfig:"STATUS_CACHE_TTL" default:"5m" description:"How long a project status snapshot is reused."`
	RevCacheTTL time.Duration `envconfig:"STATUS_REV_CACHE_TTL" default:"1h" description:"How long devel package revisions are cached."`
	// parallel backend calls when building a snapshot
	Concurrency int `envconfig:"STATUS_CONCURRENCY" default:"8" description:"Parallel backend calls per snapshot."`

	PrewarmInterval time.Duration `envconfig:"STATUS_PREWARM_INTERVAL" default:"0s" description:"Recompute snapshots of the listed projects at this interval (0 disables)."`
	PrewarmProjects []string      `envconfig:"STATUS_PREWARM_PROJECTS" description:"Projects whose status snapshots are kept warm."`
}

type Diststats struct {
	Dir      string        `envconfig:"DISTSTATS_DIR" default:"vendor/diststats" description:"Directory containing the mkdiststats script."`
	Command  string        `envconfig:"DISTSTATS_COMMAND" default:"perl" description:"Interpreter used to run mkdiststats."`
	Script   string        `envconfig:"DISTSTATS_SCRIPT" default:"./mkdiststats" description:"The mkdiststats script, relative to the directory."`
	Width    int           `envconfig:"DISTSTATS_WIDTH" default:"910" description:"Width of the rendered rebuild image."`
	PNGTTL   time.Duration `envconfig:"DISTSTATS_PNG_TTL" default:"1h" description:"How long rendered rebuild images are kept."`
	TempRoot string        `envconfig:"DISTSTATS_TEMP_DIR" description:"Where to create the working directories (defaults to the system temp dir)."`
}

type PubSub struct {
	StoreDir string `envconfig:"NATS_STORE_DIR" default:"/var/lib/obs/nats" description:"The directory to store nats data."`
	Provider string `envconfig:"PUBSUB_PROVIDER" default:"nats" description:"The pubsub provider to use (nats or noop)."`
	Server   struct {
		EmbeddedNatsServerEnabled bool   `envconfig:"NATS_SERVER_EMBEDDED_ENABLED" default:"true" description:"Whether to enable the embedded NATS server."`
		URL                       string `envconfig:"NATS_URL" description:"The NATS server to connect to when the embedded server is disabled."`
		Token                     string `envconfig:"NATS_SERVER_TOKEN" description:"The authentication token for the NATS server."`
	}
}

type Janitor struct {
	SentryDsnAPI string `envconfig:"SENTRY_DSN_API" description:"The api sentry DSN."`
}
