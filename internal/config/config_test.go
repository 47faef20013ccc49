package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseIntWithDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		def   int
		want  int
	}{
		{"blank returns default", "", 7, 7},
		{"invalid returns default", "abc", 3, 3},
		{"valid parses value", "42", 0, 42},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseIntWithDefault(tt.value, tt.def))
		})
	}
}

func TestParseDurationWithDefault(t *testing.T) {
	t.Parallel()

	def := 5 * time.Second
	assert.Equal(t, def, parseDurationWithDefault("", def))
	assert.Equal(t, def, parseDurationWithDefault("nonsense", def))
	assert.Equal(t, 2*time.Minute, parseDurationWithDefault("2m", def))
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, splitList(" http://a.test, ,http://b.test "))
	assert.Nil(t, splitList(""))
}

func TestLoadDefaultMode(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("TEST_DATABASE_URL", "file:ignored")

	cfg := Load()

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://example", cfg.DBUrl)
	assert.Equal(t, ":3333", cfg.Addr())
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "cocktails:audit", cfg.AuditChannel)
	assert.False(t, cfg.IsProduction())
}

func TestLoadTestModeSelectsTestStore(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("TEST_DATABASE_URL", "file:unit?mode=memory")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:4200")

	cfg := Load()

	assert.Equal(t, EnvTest, cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "file:unit?mode=memory", cfg.DBUrl)
	assert.Equal(t, 3, cfg.DBMaxOpenConns)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.CORSAllowedOrigins)
}
