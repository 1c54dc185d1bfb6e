package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "shp")
	t.Setenv("SHP_API_ADDR", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8001", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestFromEnvRequiresMongo(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "shp")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestFromEnvRequiresDBName(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, splitOrigins(""))
	assert.Equal(t, []string{"https://a.in", "https://b.in"}, splitOrigins("https://a.in, https://b.in"))
	assert.Equal(t, []string{"*"}, splitOrigins(" , "))
}
