package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort      int
	ErgastBaseURL   string
	UpstreamTimeout time.Duration
	CacheDir        string
	CacheTTL        time.Duration // current-season entries
	ArchiveTTL      time.Duration // completed-season entries
	CORSOrigins     []string
	ChampionsDepth  int // how many past seasons the champions view covers
	RecentWinners   int // how many completed races the winners view covers

	// Status classification is configuration, not logic: the upstream
	// status vocabulary drifts and the defaults below track it.
	FinishedStatusPrefixes []string
	LappedStatusSubstring  string
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	portStr := getEnv("SERVER_PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	upstreamTimeout, err := getDuration("UPSTREAM_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	archiveTTL, err := getDuration("CACHE_ARCHIVE_TTL", 365*24*time.Hour)
	if err != nil {
		return nil, err
	}

	championsDepth, err := getInt("CHAMPIONS_DEPTH", 3)
	if err != nil {
		return nil, err
	}
	recentWinners, err := getInt("RECENT_WINNERS", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:      port,
		ErgastBaseURL:   strings.TrimRight(getEnv("ERGAST_BASE_URL", "https://api.jolpi.ca/ergast/f1"), "/"),
		UpstreamTimeout: upstreamTimeout,
		CacheDir:        getEnv("CACHE_DIR", "./cache"),
		CacheTTL:        cacheTTL,
		ArchiveTTL:      archiveTTL,
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		ChampionsDepth:  championsDepth,
		RecentWinners:   recentWinners,

		FinishedStatusPrefixes: splitList(getEnv("FINISHED_STATUS_PREFIXES", "finished")),
		LappedStatusSubstring:  getEnv("LAPPED_STATUS_SUBSTRING", "lap"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, v)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
