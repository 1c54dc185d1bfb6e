package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures everything the server needs from its environment: where to
// listen, how to reach the document store, and which origins may call the API.
type Config struct {
	Addr        string
	MongoURL    string
	DBName      string
	CORSOrigins []string
}

// FromEnv builds a Config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present, matching
// how the service is run in development.
//
// MONGO_URL and DB_NAME are required; there is no sensible default for a
// durable store, and starting without one would only defer the failure to the
// first request.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	addr := os.Getenv("SHP_API_ADDR")
	if addr == "" {
		addr = ":8001"
	}

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return Config{}, fmt.Errorf("MONGO_URL is required")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return Config{}, fmt.Errorf("DB_NAME is required")
	}

	return Config{
		Addr:        addr,
		MongoURL:    mongoURL,
		DBName:      dbName,
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
	}, nil
}

// splitOrigins parses the comma-separated CORS_ORIGINS value. Empty or unset
// means every origin is allowed; this is a public form API.
func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
