package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primext/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestLoad_Defaults returns DefaultConfig when nothing overrides it.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)
}

// TestLoad_Files reads settings from YAML and CUE files.
func TestLoad_Files(t *testing.T) {
	for name, body := range map[string]string{
		"primext.yaml": "output: yaml\nindent: 4\nlog_level: debug\n",
		"primext.cue":  "output: \"yaml\"\nindent: 4\nlog_level: \"debug\"\n",
		"primext.toml": "output = \"yaml\"\nindent = 4\nlog_level = \"debug\"\n",
	} {
		cfg, err := config.Load(config.New(), writeFile(t, name, body))
		require.NoError(t, err, name)
		assert.Equal(t, "yaml", cfg.Output, name)
		assert.Equal(t, 4, cfg.Indent, name)
		assert.Equal(t, "debug", cfg.LogLevel, name)
	}
}

// TestLoad_Precedence applies env over file and flags over env.
func TestLoad_Precedence(t *testing.T) {
	t.Setenv("PRIMEXT_OUTPUT", "toml")
	t.Setenv("PRIMEXT_INDENT", "8")
	path := writeFile(t, "c.json", `{"output": "yaml", "indent": 4, "format": "hcl"}`)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level=error"}))

	v := config.New()
	require.NoError(t, config.BindFlags(v, flags))
	cfg, err := config.Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, "toml", cfg.Output, "env beats file; unset flag does not count")
	assert.Equal(t, 8, cfg.Indent)
	assert.Equal(t, "hcl", cfg.Format, "file beats default")
	assert.Equal(t, "error", cfg.LogLevel, "flag beats default")
}

// TestLoad_Invalid rejects bad values, unknown keys and unreadable files.
func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"out.yaml":     "output: xml\n",
		"level.yaml":   "log_level: loud\n",
		"indent.yaml":  "indent: -1\n",
		"unknown.yaml": "colour: red\n",
		"broken.json":  "{",
		"conf.ini":     "a=1",
	} {
		_, err := config.Load(config.New(), writeFile(t, name, body))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
