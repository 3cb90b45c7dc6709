package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Credentials mirrors the credentials.json file used by earlier deployments
// of the waitlist service.  All fields are optional; Load only falls back to
// them when the matching DB_* variable is unset.
type Credentials struct {
	Host     string          `json:"host"`
	Port     json.RawMessage `json:"port"` // number or string
	User     string          `json:"user"`
	Password string          `json:"password"`
	Database string          `json:"database"`
}

// LoadCredentials reads a credentials file.  An empty path yields zero
// Credentials and no error.
func LoadCredentials(path string) (Credentials, error) {
	var c Credentials
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// portOr returns the port as a string, accepting both 3306 and "3306".
func (c Credentials) portOr(def string) string {
	if len(c.Port) == 0 {
		return def
	}
	var n int
	if err := json.Unmarshal(c.Port, &n); err == nil && n > 0 {
		return strconv.Itoa(n)
	}
	var s string
	if err := json.Unmarshal(c.Port, &s); err == nil && s != "" {
		return s
	}
	return def
}
