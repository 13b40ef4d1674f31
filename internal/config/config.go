package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration. It is built once in main and
// passed by reference into the components that need it; nothing else in
// the codebase reads the environment directly.
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
	RateLimitPerSecond float64
	RateLimitBurst     int

	// Google Sheets sink. Credentials come either inline as JSON or from a
	// key file on disk; both empty is a configuration error at write time.
	GoogleCredentialsJSON string
	GoogleCredentialsFile string
	SheetID               string
	SheetTab              string
	// SheetsValueInput selects USER_ENTERED (the sheet re-types
	// numeric-looking strings, so "0044" can lose its leading zeros) or RAW
	// (literal storage).
	SheetsValueInput string
	SheetsTimeout    time.Duration

	// Itinerary planner LLMs. OpenAI is the primary provider; Gemini, when
	// configured, serves as fallback.
	OpenAIAPIKey     string
	OpenAIModel      string
	GeminiAPIKey     string
	GeminiModel      string
	PlannerMaxTokens int

	// SendGrid notifications for new leads
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	LeadNotifyEmails  []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),

		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		SheetID:               getEnv("GOOGLE_SHEET_ID", ""),
		SheetTab:              getEnv("GOOGLE_SHEET_TAB", ""),
		SheetsValueInput:      getEnv("SHEETS_VALUE_INPUT", "USER_ENTERED"),
		SheetsTimeout:         getEnvAsDuration("SHEETS_TIMEOUT", 30*time.Second),

		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		PlannerMaxTokens: getEnvAsInt("PLANNER_MAX_TOKENS", 1200),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "HKE Backend"),
		LeadNotifyEmails:  getEnvAsSlice("LEAD_NOTIFY_EMAILS", nil),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable as a slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
