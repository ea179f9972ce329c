package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Auth      AuthConfig      `yaml:"auth"`
	CORS      CORSConfig      `yaml:"cors"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Events    EventsConfig    `yaml:"events"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	ReleaseMode    bool          `yaml:"release_mode"`
	// TrustedProxies lists the proxies whose X-Forwarded-For is believed.
	// Empty means the socket peer is the client IP.
	TrustedProxies []string      `yaml:"trusted_proxies"`
}

// StoreConfig selects the repository backend.
// "mongo" (default) or "memory" for local runs without a database.
type StoreConfig struct {
	Driver string `yaml:"driver"`
}

// MongoConfig holds connection settings. URI and DBName can be overridden
// with MONGODB_URI and MONGODB_DB.
type MongoConfig struct {
	URI            string        `yaml:"uri"`
	DBName         string        `yaml:"db_name"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ConnectRetries int           `yaml:"connect_retries"`
	RetryBackoff   time.Duration `yaml:"retry_backoff"`
}

// AuthConfig configures the session gate and the sign-in flow.
// Secrets are read from the environment only: SESSION_SECRET, JWT_SECRET,
// GITHUB_OAUTH_CLIENT_ID/SECRET and GOOGLE_OAUTH_CLIENT_ID/SECRET.
type AuthConfig struct {
	BaseURL           string   `yaml:"base_url"`
	LoginPath         string   `yaml:"login_path"`
	DefaultCallback   string   `yaml:"default_callback"`
	ProtectedPrefixes []string `yaml:"protected_prefixes"`
	AllowedEmails     []string `yaml:"allowed_emails"`
	SessionMaxAge     int      `yaml:"session_max_age"`
	CookieSecure      bool     `yaml:"cookie_secure"`

	SessionSecret      string `yaml:"-"`
	GitHubClientID     string `yaml:"-"`
	GitHubClientSecret string `yaml:"-"`
	GoogleClientID     string `yaml:"-"`
	GoogleClientSecret string `yaml:"-"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DashboardConfig points at the built dashboard UI. Empty StaticDir means the
// dashboard routes answer with a JSON envelope instead of files.
type DashboardConfig struct {
	StaticDir string `yaml:"static_dir"`
}

// RateLimitConfig bounds anonymous write paths (contact form, sign-in) per client IP.
// Max <= 0 disables limiting.
type RateLimitConfig struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

// EventsConfig enables publishing content change events to Kafka.
// Empty Brokers (or KAFKA_BOOTSTRAP_SERVERS) disables publishing.
type EventsConfig struct {
	Brokers        string        `yaml:"brokers"`
	Topic          string        `yaml:"topic"`
	Partitions     int           `yaml:"partitions"`
	PublishTimeout time.Duration `yaml:"publish_timeout"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = c
}

// Load reads the yaml file at path, applies defaults and environment
// overrides. A missing file is not an error; defaults are used instead.
func Load(path string) (*AppConfig, error) {
	var c AppConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	c.applyEnv()
	c.setDefaults()
	return &c, nil
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("MONGODB_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGODB_DB"); v != "" {
		c.Mongo.DBName = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("AUTH_BASE_URL"); v != "" {
		c.Auth.BaseURL = v
	}
	if v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); v != "" {
		c.Events.Brokers = v
	}
	if v := os.Getenv("AUTH_ALLOWED_EMAILS"); v != "" {
		c.Auth.AllowedEmails = splitList(v)
	}

	c.Auth.SessionSecret = os.Getenv("SESSION_SECRET")
	c.Auth.GitHubClientID = os.Getenv("GITHUB_OAUTH_CLIENT_ID")
	c.Auth.GitHubClientSecret = os.Getenv("GITHUB_OAUTH_CLIENT_SECRET")
	c.Auth.GoogleClientID = os.Getenv("GOOGLE_OAUTH_CLIENT_ID")
	c.Auth.GoogleClientSecret = os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET")
}

func (c *AppConfig) setDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = 10 * time.Second
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "mongo"
	}
	if c.Mongo.URI == "" {
		// Fallback for a local mongod
		c.Mongo.URI = "mongodb://localhost:27017/portfolio-blog"
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "portfolio-blog"
	}
	if c.Mongo.ConnectTimeout <= 0 {
		c.Mongo.ConnectTimeout = 10 * time.Second
	}
	if c.Mongo.ConnectRetries <= 0 {
		c.Mongo.ConnectRetries = 3
	}
	if c.Mongo.RetryBackoff <= 0 {
		c.Mongo.RetryBackoff = 2 * time.Second
	}
	if c.Auth.BaseURL == "" {
		c.Auth.BaseURL = "http://localhost:8080"
	}
	c.Auth.BaseURL = strings.TrimRight(c.Auth.BaseURL, "/")
	if c.Auth.LoginPath == "" {
		c.Auth.LoginPath = "/login"
	}
	if c.Auth.DefaultCallback == "" {
		c.Auth.DefaultCallback = "/dashboard"
	}
	if len(c.Auth.ProtectedPrefixes) == 0 {
		c.Auth.ProtectedPrefixes = []string{"/dashboard"}
	}
	if c.Auth.SessionMaxAge <= 0 {
		c.Auth.SessionMaxAge = 60 * 60 * 12
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = time.Minute
	}
	if c.Events.Topic == "" {
		c.Events.Topic = "portfolio-blog.content.events"
	}
	if c.Events.Partitions <= 0 {
		c.Events.Partitions = 1
	}
	if c.Events.PublishTimeout <= 0 {
		c.Events.PublishTimeout = 5 * time.Second
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
