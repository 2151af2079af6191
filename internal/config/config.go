package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	LogLevel string
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Backend  BackendConfig
	Identity IdentityConfig
	Mail     MailConfig
	Store    StoreConfig
	Leave    LeaveConfig
	Loan     LoanConfig
	Cron     CronConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// RedisConfig holds Redis configuration (used when STORE_DRIVER=redis)
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret       string
	SessionHours int
}

// CookieConfig holds the client workspace cookie configuration
type CookieConfig struct {
	Name       string
	Secure     bool
	SameSite   string
	Domain     string
	MaxAgeDays int
}

// BackendConfig holds the HR REST API configuration
type BackendConfig struct {
	URL            string
	ServiceToken   string
	TimeoutSeconds int
}

// IdentityConfig holds one-time code settings of the local identity provider
type IdentityConfig struct {
	CodeTTLMinutes int
	MaxAttempts    int
	SeedDev        bool
}

// MailConfig selects how one-time codes are delivered
type MailConfig struct {
	Driver        string // log, postmark, smtp
	From          string
	PostmarkToken string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
}

// StoreConfig selects where workspace auth/profile state is persisted
type StoreConfig struct {
	Driver    string // database, redis, memory
	Namespace string
	TTLHours  int
}

// LeaveConfig holds leave allowances
type LeaveConfig struct {
	TotalAllowance int
	ByType         map[string]int
	Policy         string
}

// LoanConfig holds loan defaults
type LoanConfig struct {
	DefaultRate float64
}

// CronConfig holds background job schedules
type CronConfig struct {
	EvictSchedule string
	PurgeSchedule string
	IdleMinutes   int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	// Build config based on APP_MODE
	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: loadDatabaseConfig(appMode),
		Redis:    loadRedisConfig(),
		JWT:      loadJWTConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Backend:  loadBackendConfig(appMode),
		Identity: loadIdentityConfig(appMode),
		Mail:     loadMailConfig(),
		Store:    loadStoreConfig(),
		Leave:    loadLeaveConfig(),
		Loan:     LoanConfig{DefaultRate: getFloat("LOAN_DEFAULT_RATE", 12)},
		Cron:     loadCronConfig(),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	// Set global config
	AppConfig = config

	log.Info().Str("mode", appMode).Msg("configuration loaded")
	return config, nil
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "hrdesk"),
	}
}

func loadRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getInt("REDIS_DB", 0),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	return JWTConfig{
		Secret:       getEnv(modePrefix(mode)+"JWT_SECRET", "default_secret"),
		SessionHours: getInt("SESSION_HOURS", 8),
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	secure, _ := strconv.ParseBool(getEnv(modePrefix(mode)+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Name:       getEnv("COOKIE_NAME", "hr_client"),
		Secure:     secure,
		SameSite:   getEnv("COOKIE_SAMESITE", "lax"),
		Domain:     getEnv("COOKIE_DOMAIN", ""),
		MaxAgeDays: getInt("COOKIE_MAX_AGE_DAYS", 30),
	}
}

func loadBackendConfig(mode string) BackendConfig {
	prefix := modePrefix(mode)
	return BackendConfig{
		URL:            getEnv(prefix+"BACKEND_URL", "http://localhost:8080/api"),
		ServiceToken:   getEnv(prefix+"BACKEND_SERVICE_TOKEN", ""),
		TimeoutSeconds: getInt("BACKEND_TIMEOUT_SECONDS", 10),
	}
}

func loadIdentityConfig(mode string) IdentityConfig {
	seed, _ := strconv.ParseBool(getEnv("SEED_DEV_CREDENTIALS", strconv.FormatBool(mode == "dev")))
	return IdentityConfig{
		CodeTTLMinutes: getInt("OTP_TTL_MINUTES", 5),
		MaxAttempts:    getInt("OTP_MAX_ATTEMPTS", 5),
		SeedDev:        seed,
	}
}

func loadMailConfig() MailConfig {
	return MailConfig{
		Driver:        strings.ToLower(getEnv("MAIL_DRIVER", "log")),
		From:          getEnv("MAIL_FROM", "no-reply@hrdesk.local"),
		PostmarkToken: getEnv("POSTMARK_SERVER_TOKEN", ""),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getInt("SMTP_PORT", 587),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
	}
}

func loadStoreConfig() StoreConfig {
	return StoreConfig{
		Driver:    strings.ToLower(getEnv("STORE_DRIVER", "database")),
		Namespace: getEnv("STORE_NAMESPACE", "hrdesk"),
		TTLHours:  getInt("STORE_TTL_HOURS", 24*30),
	}
}

func loadLeaveConfig() LeaveConfig {
	return LeaveConfig{
		TotalAllowance: getInt("LEAVE_TOTAL_ALLOWANCE", 20),
		ByType:         parseAllowances(getEnv("LEAVE_ALLOWANCES", "annual=15,sick=5")),
		Policy:         getEnv("LEAVE_POLICY", "count_all"),
	}
}

func loadCronConfig() CronConfig {
	return CronConfig{
		EvictSchedule: getEnv("CRON_EVICT_SCHEDULE", "@every 5m"),
		PurgeSchedule: getEnv("CRON_PURGE_SCHEDULE", "@hourly"),
		IdleMinutes:   getInt("WORKSPACE_IDLE_MINUTES", 60),
	}
}

// parseAllowances reads "annual=15,sick=5". Malformed pairs are skipped.
func parseAllowances(s string) map[string]int {
	out := map[string]int{}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		out[strings.TrimSpace(k)] = n
	}
	return out
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "database", "redis", "memory":
	default:
		return fmt.Errorf("invalid STORE_DRIVER: '%s' (must be database, redis or memory)", c.Store.Driver)
	}
	switch c.Mail.Driver {
	case "log", "postmark", "smtp":
	default:
		return fmt.Errorf("invalid MAIL_DRIVER: '%s' (must be log, postmark or smtp)", c.Mail.Driver)
	}
	if c.IsProd() && c.JWT.Secret == "default_secret" {
		return fmt.Errorf("PROD_JWT_SECRET must be set in production")
	}
	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

func getFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://hr.example.com"
	}
	return origins
}

// SessionTTL returns the lifetime of issued session tokens
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.JWT.SessionHours) * time.Hour
}

// BackendTimeout returns the per-request backend timeout
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

// StoreTTL returns how long persisted workspace state survives in Redis
func (c *Config) StoreTTL() time.Duration {
	return time.Duration(c.Store.TTLHours) * time.Hour
}

// IdleTTL returns how long an untouched workspace stays in memory
func (c *Config) IdleTTL() time.Duration {
	return time.Duration(c.Cron.IdleMinutes) * time.Minute
}

// CodeTTL returns the one-time code lifetime
func (c *Config) CodeTTL() time.Duration {
	return time.Duration(c.Identity.CodeTTLMinutes) * time.Minute
}
