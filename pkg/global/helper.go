package global

import (
	"os"
	"strings"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBackendURL() string {
	return strings.TrimRight(GetEnvOrDefault("BACKEND_API_URL", "http://localhost:3333"), "/")
}

func GetCORSOrigins() []string {
	raw := GetEnvOrDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
