package postgres

import (
	"net/url"
	"strings"
)

const preparedBinaryResultParam = "disable_prepared_binary_result"

// DSN is a connection string ready for lib/pq together with the database
// name it targets.
type DSN struct {
	URL  string
	Name string
}

// ParseDSN accepts URL and key/value connection strings. Pooler options are
// only applied to the URL form; an explicit value in raw always wins.
func ParseDSN(raw string, disablePreparedBinaryResult bool) DSN {
	raw = strings.TrimSpace(raw)

	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "postgres" && parsed.Scheme != "postgresql") {
		return DSN{URL: raw, Name: keyValueDBName(raw)}
	}

	dsn := DSN{URL: raw, Name: strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))}
	if !disablePreparedBinaryResult {
		return dsn
	}

	query := parsed.Query()
	if query.Get(preparedBinaryResultParam) == "" {
		query.Set(preparedBinaryResultParam, "yes")
		parsed.RawQuery = query.Encode()
		dsn.URL = parsed.String()
	}

	return dsn
}

func keyValueDBName(raw string) string {
	for _, token := range strings.Fields(raw) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(name, `"'`); name != "" {
			return name
		}
	}
	return ""
}
