package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
	"time"

	_ "github.com/joho/godotenv/autoload" // load .env into the process environment before Load runs
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Database credentials may also come from a JSON
// credentials file (see credentials.go); environment variables win.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	DBUser          string        // database username
	DBPass          string        // database password (optional)
	DBHost          string        // database host address
	DBPort          string        // database port number
	DBName          string        // database name
	DBAutomigrate   bool          // apply embedded schema migrations at startup
	DBQueryTimeout  time.Duration // upper bound for a single store round-trip; 0 disables
	ReportFile      string        // path of the static report page served at /report.html
	CORSAllowOrigin string        // value of Access-Control-Allow-Origin on preflight responses
	LogLevel        string        // zerolog level name
	HostJWTSecret   string        // when set, mutating routes require a HOST bearer token
	HostTokenTTLMin int           // lifetime of tokens printed by cmd/hosttoken
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	creds, err := LoadCredentials(os.Getenv("DB_CREDENTIALS_FILE"))
	if err != nil {
		log.Fatalf("read credentials: %v", err)
	}
	return Config{
		Env:             envStr("APP_ENV", "dev"),
		Port:            envStr("APP_PORT", "5000"),
		DBUser:          mustOr("DB_USER", creds.User),
		DBPass:          envStr("DB_PASS", creds.Password), // empty allowed
		DBHost:          mustOr("DB_HOST", creds.Host),
		DBPort:          envStr("DB_PORT", creds.portOr("3306")),
		DBName:          mustOr("DB_NAME", creds.Database),
		DBAutomigrate:   envBool("DB_AUTOMIGRATE", true),
		DBQueryTimeout:  envDur("DB_QUERY_TIMEOUT", 5*time.Second),
		ReportFile:      envStr("REPORT_FILE", "report.html"),
		CORSAllowOrigin: envStr("CORS_ALLOW_ORIGIN", "*"),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		HostJWTSecret:   os.Getenv("HOST_JWT_SECRET"),
		HostTokenTTLMin: HostTokenTTL(),
	}
}

// mustOr returns the environment value for key, falling back to def.  When
// both are empty the application logs a fatal error and exits.
func mustOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if def != "" {
		return def
	}
	log.Fatalf("missing required env var: %s", key)
	return ""
}

// HostTokenTTL is the lifetime in minutes of issued host tokens.
func HostTokenTTL() int {
	return envInt("HOST_TOKEN_TTL_MIN", 720)
}
