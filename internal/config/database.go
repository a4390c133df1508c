// internal/config/database.go
package config

import (
	"net/url"
	"strings"
)

// Backend names the store implementation selected by the DATABASE_URL scheme.
type Backend string

const (
	BackendNone     Backend = ""
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

func (d *DatabaseConfig) Configured() bool {
	return d.URL != "" && d.Name != ""
}

func (d *DatabaseConfig) Backend() Backend {
	scheme, _, ok := strings.Cut(d.URL, "://")
	if !ok {
		return BackendNone
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo
	case "postgres", "postgresql":
		return BackendPostgres
	case "memory":
		return BackendMemory
	}
	return BackendNone
}

// RedactedURL hides credentials so the connection string can be logged.
func (d *DatabaseConfig) RedactedURL() string {
	u, err := url.Parse(d.URL)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}
