// filepath: internal/cli/root_test.go
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"portfolio/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to reset the global config and flags between tests
func resetGlobals() {
	cfg = nil
	password = ""
	port = 0
	logLevel = ""
	resetPassword = false
	uploadDir = ""
	publicDir = ""
	dbPath = ""
	maxUpload = ""
	cfgFile = "config.toml" // Default
}

func TestConfigPrecedence(t *testing.T) {
	// RootCmd.Execute() starts the server, so the loading and override
	// logic is tested directly.

	t.Run("Defaults", func(t *testing.T) {
		resetGlobals()
		cfgFile = "nonexistent.toml"

		cmd := &cobra.Command{}
		err := initializeConfig(cmd)
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "uploads", cfg.Storage.UploadDir)
		assert.Equal(t, "public", cfg.Storage.PublicDir)
		assert.Equal(t, 24, cfg.Session.TTLHours)
		assert.Equal(t, int64(10<<20), cfg.MaxUploadSizeBytes)
	})

	t.Run("Environment Overrides Defaults", func(t *testing.T) {
		resetGlobals()
		cfgFile = "nonexistent.toml"

		os.Setenv("PF_PORT", "9090")
		os.Setenv("PF_LOG_LEVEL", "warn")
		os.Setenv("PF_UPLOAD_DIR", "/srv/uploads")
		defer os.Unsetenv("PF_PORT")
		defer os.Unsetenv("PF_LOG_LEVEL")
		defer os.Unsetenv("PF_UPLOAD_DIR")

		cmd := &cobra.Command{}
		err := initializeConfig(cmd)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "/srv/uploads", cfg.Storage.UploadDir)
	})

	t.Run("Flags Override Environment", func(t *testing.T) {
		resetGlobals()
		cfgFile = "nonexistent.toml"

		os.Setenv("PF_PORT", "9090")
		defer os.Unsetenv("PF_PORT")

		// Simulate parsed flags
		port = 7070

		cmd := &cobra.Command{}
		err := initializeConfig(cmd)
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.Server.Port)
	})

	t.Run("Config File Loading", func(t *testing.T) {
		resetGlobals()

		content := []byte(`
[server]
port = 6060
max_upload_size = "2MB"
[logging]
level = "error"
[session]
ttl_hours = 8
`)
		tmpFile := filepath.Join(t.TempDir(), "test_config.toml")
		require.NoError(t, os.WriteFile(tmpFile, content, 0644))

		cfgFile = tmpFile

		cmd := &cobra.Command{}
		err := initializeConfig(cmd)
		require.NoError(t, err)

		assert.Equal(t, 6060, cfg.Server.Port)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, 8, cfg.Session.TTLHours)
		assert.Equal(t, int64(2<<20), cfg.MaxUploadSizeBytes)
	})
}

func TestApplyOverrides(t *testing.T) {
	resetGlobals()
	c := &config.Config{
		Server:  config.ServerConfig{Port: 8080},
		Logging: config.LoggingConfig{Level: "info"},
	}

	port = 9999
	logLevel = "debug"
	dbPath = "elsewhere.db"

	cmd := &cobra.Command{}
	applyOverrides(c, cmd)

	assert.Equal(t, 9999, c.Server.Port)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "elsewhere.db", c.Database.Path)
}
