package config

import (
	"os"
)

// Config holds everything the server reads from the environment. The values
// come from a .env file in development (loaded by godotenv in main) or from
// real environment variables in deployment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	OpenAIKey   string
	GeminiKey   string
	AdminEmail  string
	AdminPass   string
	ClientBuild string
	GeminiModel string
	OpenAIModel string
	VisionModel string
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "5001"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		AdminEmail:  os.Getenv("ADMIN_ID"),
		AdminPass:   os.Getenv("ADMIN_PASSWORD"),
		ClientBuild: os.Getenv("CLIENT_BUILD_DIR"),
		GeminiModel: getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIModel: getenv("OPENAI_MODEL", "gpt-3.5-turbo"),
		VisionModel: getenv("GEMINI_VISION_MODEL", "gemini-2.5-flash"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
