package config

import (
	"fmt"
	"net/url"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "5000"

	// DefaultDBPort is the default PostgreSQL port used when the DSN
	// is assembled from discrete DB_* settings.
	DefaultDBPort = "5432"
)

// DatabaseURL resolves the connection string. An explicit URL wins;
// otherwise one is assembled from the discrete host/user/password/
// database/port settings. Returns an error when neither form is
// usable.
func DatabaseURL(explicit, host, user, password, database, port string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if host == "" || database == "" {
		return "", fmt.Errorf("database connection not configured: set DATABASE_URL or DB_HOST and DB_DATABASE")
	}
	if port == "" {
		port = DefaultDBPort
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%s", host, port),
		Path:   "/" + database,
	}
	if user != "" {
		if password != "" {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
	}
	return u.String(), nil
}
