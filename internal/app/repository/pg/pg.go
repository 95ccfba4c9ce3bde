package pg

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DSNOptions adjusts a user supplied connection string.
type DSNOptions struct {
	// RequireSSL sets sslmode=require unless the DSN already names a mode.
	RequireSSL bool
	// ConnectTimeout sets connect_timeout unless the DSN already has one.
	ConnectTimeout time.Duration
}

// BuildDSN applies opts to a postgres URL or key=value connection string.
func BuildDSN(dsn string, opts DSNOptions) (string, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return "", fmt.Errorf("postgres connection string is empty")
	}

	params := map[string]string{}
	if opts.RequireSSL {
		params["sslmode"] = "require"
	}
	if opts.ConnectTimeout > 0 {
		secs := int(opts.ConnectTimeout.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		params["connect_timeout"] = strconv.Itoa(secs)
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse postgres url: %w", err)
		}
		q := u.Query()
		for k, v := range params {
			if q.Get(k) == "" {
				q.Set(k, v)
			}
		}
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	for k, v := range params {
		if !strings.Contains(dsn, k+"=") {
			dsn = fmt.Sprintf("%s %s=%s", dsn, k, v)
		}
	}
	return dsn, nil
}
