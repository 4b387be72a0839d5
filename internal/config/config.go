package config

import (
	"os"
	"strconv"
)

const DefaultRoot = "~/memories"

// Reserved artifact names kept under the store root. Names starting with
// '_' or '.' are invisible to the tools, so these never leak to callers.
const (
	CovisIndexName = "_covis.json"
	HistoryDBName  = "_history.db"
)

// Root returns the store root from MNEMO_ROOT, falling back to DefaultRoot.
func Root() string {
	if env := os.Getenv("MNEMO_ROOT"); env != "" {
		return env
	}
	return DefaultRoot
}

// MaxReadChars caps how much of a single file a view returns.
func MaxReadChars() int {
	return intEnv("MNEMO_MAX_READ_CHARS", 20000)
}

// MaxResponseChars caps the size of any tool response.
func MaxResponseChars() int {
	return intEnv("MNEMO_MAX_RESPONSE_CHARS", 50000)
}

// LargeFileThreshold is the size above which write tools warn and suggest
// line-ranged views.
func LargeFileThreshold() int {
	return intEnv("MNEMO_LARGE_FILE_THRESHOLD", 10000)
}

// MaxRecommendations is the default number of related files returned per
// lookup.
func MaxRecommendations() int {
	return intEnv("MNEMO_MAX_RECOMMENDATIONS", 3)
}

// LogFile returns the optional rotating log file path. Empty means
// stderr only.
func LogFile() string {
	return os.Getenv("MNEMO_LOG_FILE")
}

// LogLevel returns the log level name, defaulting to "info".
func LogLevel() string {
	if env := os.Getenv("MNEMO_LOG_LEVEL"); env != "" {
		return env
	}
	return "info"
}

// HistoryEnabled reports whether the SQLite access log is active.
// Set MNEMO_HISTORY=0 to disable.
func HistoryEnabled() bool {
	return os.Getenv("MNEMO_HISTORY") != "0"
}

func intEnv(key string, fallback int) int {
	env := os.Getenv(key)
	if env == "" {
		return fallback
	}
	n, err := strconv.Atoi(env)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
