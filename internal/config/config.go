package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data backends
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMinIO    = "minio"
)

type ServerConfig struct {
	Port               string        `mapstructure:"port"`
	GinMode            string        `mapstructure:"gin_mode"`
	CORSAllowedOrigins string        `mapstructure:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	AnonKey    string `mapstructure:"anon_key"`
	DBPassword string `mapstructure:"db_password"`
}

type DatabaseConfig struct {
	Backend         string        `mapstructure:"backend"`
	URL             string        `mapstructure:"url"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	ConnectAttempts uint          `mapstructure:"connect_attempts"`
	ConnectDelay    time.Duration `mapstructure:"connect_delay"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

type StorageConfig struct {
	Backend        string `mapstructure:"backend"`
	Bucket         string `mapstructure:"bucket"`
	MinIOEndpoint  string `mapstructure:"minio_endpoint"`
	MinIOAccessKey string `mapstructure:"minio_access_key"`
	MinIOSecretKey string `mapstructure:"minio_secret_key"`
	MinIOUseSSL    bool   `mapstructure:"minio_use_ssl"`
	MinIOPublicURL string `mapstructure:"minio_public_url"`
}

type RoutingConfig struct {
	OSRMBaseURL        string        `mapstructure:"osrm_base_url"`
	CacheTTL           time.Duration `mapstructure:"cache_ttl"`
	FirestoreProjectID string        `mapstructure:"firestore_project_id"`
	CredentialsFile    string        `mapstructure:"credentials_file"`
}

type KafkaConfig struct {
	Broker       string `mapstructure:"broker"`
	ContactTopic string `mapstructure:"contact_topic"`
}

type AdminConfig struct {
	Password    string        `mapstructure:"password"`
	TokenSecret string        `mapstructure:"token_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
}

type DirectoryConfig struct {
	ListCacheTTL time.Duration `mapstructure:"list_cache_ttl"`
	Timezone     string        `mapstructure:"timezone"`
}

// Config wraps the entire configuration for the UMKM directory service.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Routing   RoutingConfig   `mapstructure:"routing"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Directory DirectoryConfig `mapstructure:"directory"`
}

var (
	// envBindings maps a config key to the environment variables that can provide its value.
	// The first entry is the preferred name; later entries are legacy names.
	envBindings = map[string][]string{
		"server.port":                  {"PORT"},
		"server.gin_mode":              {"GIN_MODE"},
		"server.cors_allowed_origins":  {"CORS_ALLOWED_ORIGINS"},
		"server.shutdown_timeout":      {"SHUTDOWN_TIMEOUT"},
		"log.level":                    {"LOG_LEVEL"},
		"log.format":                   {"LOG_FORMAT"},
		"supabase.url":                 {"SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL"},
		"supabase.anon_key":            {"SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY"},
		"supabase.db_password":         {"SUPABASE_DB_PASSWORD"},
		"database.backend":             {"DATA_BACKEND"},
		"database.url":                 {"DATABASE_URL"},
		"database.sqlite_path":         {"SQLITE_PATH"},
		"database.connect_attempts":    {"DB_CONNECT_ATTEMPTS"},
		"database.connect_delay":       {"DB_CONNECT_DELAY"},
		"database.auto_migrate":        {"DB_AUTO_MIGRATE"},
		"storage.backend":              {"IMAGE_BACKEND"},
		"storage.bucket":               {"IMAGE_BUCKET"},
		"storage.minio_endpoint":       {"MINIO_ENDPOINT"},
		"storage.minio_access_key":     {"MINIO_ACCESS_KEY"},
		"storage.minio_secret_key":     {"MINIO_SECRET_KEY"},
		"storage.minio_use_ssl":        {"MINIO_USE_SSL"},
		"storage.minio_public_url":     {"MINIO_PUBLIC_URL"},
		"routing.osrm_base_url":        {"OSRM_BASE_URL"},
		"routing.cache_ttl":            {"ROUTE_CACHE_TTL"},
		"routing.firestore_project_id": {"FIRESTORE_PROJECT_ID", "GOOGLE_CLOUD_PROJECT"},
		"routing.credentials_file":     {"GOOGLE_APPLICATION_CREDENTIALS"},
		"kafka.broker":                 {"KAFKA_BROKER"},
		"kafka.contact_topic":          {"KAFKA_CONTACT_TOPIC"},
		"admin.password":               {"ADMIN_PASSWORD", "NEXT_PUBLIC_ADMIN_PASSWORD"},
		"admin.token_secret":           {"ADMIN_TOKEN_SECRET"},
		"admin.token_ttl":              {"ADMIN_TOKEN_TTL"},
		"directory.list_cache_ttl":     {"LIST_CACHE_TTL"},
		"directory.timezone":           {"TIMEZONE", "TZ"},
	}

	defaults = map[string]any{
		"server.port":                 "8080",
		"server.gin_mode":             "release",
		"server.cors_allowed_origins": "*",
		"server.shutdown_timeout":     10 * time.Second,
		"log.level":                   "info",
		"log.format":                  "json",
		"database.backend":            BackendSupabase,
		"database.sqlite_path":        "umkm.db",
		"database.connect_attempts":   5,
		"database.connect_delay":      time.Second,
		"database.auto_migrate":       false,
		"storage.backend":             BackendSupabase,
		"storage.bucket":              "umkm-images",
		"routing.osrm_base_url":       "https://router.project-osrm.org",
		"routing.cache_ttl":           24 * time.Hour,
		"kafka.contact_topic":         "contact-messages",
		"admin.token_ttl":             12 * time.Hour,
		"directory.list_cache_ttl":    5 * time.Minute,
		"directory.timezone":          "Asia/Jakarta",
	}
)

// Load reads an optional .env file and then the environment. Environment variables
// always win over values from the .env file.
func Load(envFiles ...string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load(envFiles...)

	return LoadEnv()
}

// LoadEnv loads the config from the environment variables only.
func LoadEnv() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) normalize() {
	c.Database.Backend = strings.ToLower(strings.TrimSpace(c.Database.Backend))
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Routing.OSRMBaseURL = strings.TrimRight(c.Routing.OSRMBaseURL, "/")
	if c.Database.ConnectAttempts == 0 {
		c.Database.ConnectAttempts = 1
	}
}

// Validate reports missing keys for the selected backends.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Backend {
	case BackendSupabase:
		errs = append(errs, c.requireSupabase()...)
	case BackendPostgres:
		if c.Database.URL == "" && (c.Supabase.URL == "" || c.Supabase.DBPassword == "") {
			errs = append(errs, errors.New("DATABASE_URL or SUPABASE_URL with SUPABASE_DB_PASSWORD must be set"))
		}
	case BackendSQLite:
		if c.Database.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH must be set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DATA_BACKEND %q", c.Database.Backend))
	}

	switch c.Storage.Backend {
	case BackendSupabase:
		if c.Database.Backend != BackendSupabase {
			errs = append(errs, c.requireSupabase()...)
		}
	case BackendMinIO:
		if c.Storage.MinIOEndpoint == "" || c.Storage.MinIOAccessKey == "" || c.Storage.MinIOSecretKey == "" {
			errs = append(errs, errors.New("MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY must be set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown IMAGE_BACKEND %q", c.Storage.Backend))
	}

	if c.Admin.Password != "" && c.Admin.TokenSecret == "" {
		errs = append(errs, errors.New("ADMIN_TOKEN_SECRET must be set when ADMIN_PASSWORD is set"))
	}

	return errors.Join(errs...)
}

func (c *Config) requireSupabase() []error {
	var errs []error
	if c.Supabase.URL == "" {
		errs = append(errs, errors.New("SUPABASE_URL must be set"))
	}
	if c.Supabase.AnonKey == "" {
		errs = append(errs, errors.New("SUPABASE_ANON_KEY must be set"))
	}
	return errs
}

// AdminEnabled reports whether the admin login is available.
func (c *Config) AdminEnabled() bool {
	return c.Admin.Password != ""
}

// Location returns the configured timezone, falling back to UTC+7.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Directory.Timezone)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}
