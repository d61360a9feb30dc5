package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var errNoCatalog = errors.New("host connection string names no catalog")

// dbnameKeyword matches an explicit dbname in a libpq keyword/value string.
var dbnameKeyword = regexp.MustCompile(`(?i)(^|\s)dbname\s*=`)

// Catalog returns the database name from the host's connection string.
// Semicolon-separated strings are read for an Initial Catalog or Database key;
// anything else is parsed as a Postgres URL or keyword/value string. A string
// that names no database is an error.
func (c *HostConfig) Catalog() (string, error) {
	connStr := strings.TrimSpace(c.ConnectionString)
	if connStr == "" {
		return "", nil
	}

	if strings.Contains(connStr, ";") {
		if catalog := scanCatalog(connStr); catalog != "" {
			return catalog, nil
		}
		return "", errNoCatalog
	}

	cfg, err := pgconn.ParseConfig(connStr)
	if err != nil {
		return "", fmt.Errorf("parsing host connection string: %w", err)
	}

	// pgconn falls back to PGDATABASE; only trust a name the string carries.
	if cfg.Database == "" || !namesDatabase(connStr) {
		return "", errNoCatalog
	}

	return cfg.Database, nil
}

func scanCatalog(connStr string) string {
	var database string
	for _, pair := range strings.Split(connStr, ";") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "initial catalog":
			if value != "" {
				return value
			}
		case "database":
			if database == "" {
				database = value
			}
		}
	}
	return database
}

func namesDatabase(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		return err == nil && strings.Trim(u.Path, "/") != ""
	}
	return dbnameKeyword.MatchString(connStr)
}
