package app

import (
	"net/url"
	"strings"
)

const dbApplicationName = "tennis-tracker"

type dsnSetting struct {
	key   string
	value string
}

// NormalizeDBURL fills the lib/pq settings the service relies on: the
// application_name shown in pg_stat_activity and, when requested, the flag
// that stops poolers from receiving binary results for prepared statements.
// URL and keyword/value connection strings are both accepted and values the
// operator set explicitly are kept.
func NormalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}

	defaults := []dsnSetting{{key: "application_name", value: dbApplicationName}}
	if disablePreparedBinaryResult {
		defaults = append(defaults, dsnSetting{key: "disable_prepared_binary_result", value: "yes"})
	}

	if isURLDSN(raw) {
		return withURLDefaults(raw, defaults)
	}
	return withKeywordDefaults(raw, defaults)
}

func isURLDSN(raw string) bool {
	return strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://")
}

func withURLDefaults(raw string, defaults []dsnSetting) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	query := parsed.Query()
	changed := false
	for _, setting := range defaults {
		if query.Get(setting.key) != "" {
			continue
		}
		query.Set(setting.key, setting.value)
		changed = true
	}
	if !changed {
		return raw
	}

	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func withKeywordDefaults(raw string, defaults []dsnSetting) string {
	var b strings.Builder
	b.WriteString(raw)
	for _, setting := range defaults {
		if _, ok := keywordValue(raw, setting.key); ok {
			continue
		}
		b.WriteString(" ")
		b.WriteString(setting.key)
		b.WriteString("=")
		b.WriteString(setting.value)
	}
	return b.String()
}

func keywordValue(raw, key string) (string, bool) {
	prefix := key + "="
	for _, token := range strings.Fields(raw) {
		if strings.HasPrefix(token, prefix) {
			return strings.Trim(strings.TrimPrefix(token, prefix), `"'`), true
		}
	}
	return "", false
}

// dbNameFromURL feeds the db.name span attribute.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if isURLDSN(raw) {
		parsed, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	name, _ := keywordValue(raw, "dbname")
	return strings.TrimSpace(name)
}
