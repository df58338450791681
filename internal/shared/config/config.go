package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	UploadDir    string
	ScoreLogPath string

	ScorerCommand     []string
	ScorerJobPath     string
	ScorerKeywords    string
	ScorerSpeed       string
	ScorerOCR         bool
	ScorerExtractMode string
	ScorerTimeoutSecs int

	ScoringMode    string
	ScoringWorkers int

	AWSRegion string
	S3Bucket  string
	S3Prefix  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),

		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		ScoreLogPath: getEnv("SCORE_LOG_PATH", "./uploads/score_log.jsonl"),

		ScorerCommand:     strings.Fields(getEnv("SCORER_CMD", "")),
		ScorerJobPath:     getEnv("SCORER_JOB_PATH", "./job.txt"),
		ScorerKeywords:    getEnv("SCORER_KEYWORDS", ""),
		ScorerSpeed:       normalizeSpeed(getEnv("SCORER_SPEED", "fast")),
		ScorerOCR:         getBool("SCORER_OCR", false),
		ScorerExtractMode: normalizeExtractMode(getEnv("SCORER_EXTRACT_MODE", "quick")),
		ScorerTimeoutSecs: getInt("SCORER_TIMEOUT_SECONDS", 120),

		ScoringMode:    normalizeScoringMode(getEnv("SCORING_MODE", "sync")),
		ScoringWorkers: getInt("SCORING_WORKERS", 2),

		AWSRegion: getEnv("AWS_REGION", ""),
		S3Bucket:  getEnv("S3_BUCKET", ""),
		S3Prefix:  getEnv("S3_PREFIX", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func getBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeSpeed(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "balanced":
		return "balanced"
	case "max":
		return "max"
	default:
		return "fast"
	}
}

func normalizeExtractMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "structured":
		return "structured"
	default:
		return "quick"
	}
}

func normalizeScoringMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "async", "background":
		return "async"
	default:
		return "sync"
	}
}
