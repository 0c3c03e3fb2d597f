package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidConnURL error = errors.New("invalid database connection url")

const (
	apiPortEnvKey   = "API_PORT"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"
)

// maintenanceDB is the database the provisioner connects to before the
// target database exists.
const maintenanceDB = "postgres"

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	Database        DatabaseTarget
}

// DatabaseTarget holds the parsed pieces of the connection URL needed by
// the provisioner: the role and database to ensure, and an admin DSN
// pointing at the maintenance database on the same server.
type DatabaseTarget struct {
	Role     string
	Password string
	Host     string
	Port     string
	Name     string
	AdminDSN string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	dbConn = normalizeConnURL(dbConn)

	target, err := parseConnURL(dbConn)
	if err != nil {
		return App{}, fmt.Errorf("parse connection url: %w", err)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		Database:        target,
	}, nil
}

// normalizeConnURL strips driver qualifiers from the URL scheme, so a
// connection string shared with the legacy deployment (for example
// postgresql+asyncpg://...) stays usable.
func normalizeConnURL(connURL string) string {
	scheme, rest, found := strings.Cut(connURL, "://")
	if !found {
		return connURL
	}
	scheme, _, _ = strings.Cut(scheme, "+")
	return scheme + "://" + rest
}

func parseConnURL(connURL string) (DatabaseTarget, error) {
	parsed, err := url.Parse(connURL)
	if err != nil {
		return DatabaseTarget{}, fmt.Errorf("%w: %w", errInvalidConnURL, err)
	}

	if parsed.User == nil {
		return DatabaseTarget{}, fmt.Errorf("%w: missing role credentials", errInvalidConnURL)
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return DatabaseTarget{}, fmt.Errorf("%w: missing database name", errInvalidConnURL)
	}

	password, _ := parsed.User.Password()

	admin := *parsed
	admin.Path = "/" + maintenanceDB

	return DatabaseTarget{
		Role:     parsed.User.Username(),
		Password: password,
		Host:     parsed.Hostname(),
		Port:     parsed.Port(),
		Name:     dbName,
		AdminDSN: admin.String(),
	}, nil
}
