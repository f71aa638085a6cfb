package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primext/internal/cli"
)

const doc = `{"db": {"host": "h", "port": 5432, "replicas": [{"host": "r0"}]}, "flat.key": 1}`

// run executes the CLI with args and stdin and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeDoc(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestGet reads single and batch keys from stdin.
func TestGet(t *testing.T) {
	out, _, err := run(t, doc, "get", "db.replicas.0.host", "--format", "json", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "r0\n", out)

	out, _, err = run(t, doc, "get", "db.host", "db.user", "--default", "anon", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.JSONEq(t, `{"db.host": "h", "db.user": "anon"}`, out)

	out, _, err = run(t, doc, "get", "missing", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

// TestGet_FileDetection picks the input format from the extension.
func TestGet_FileDetection(t *testing.T) {
	path := writeDoc(t, "app.yaml", "server:\n  port: 8080\n")
	out, _, err := run(t, "", "get", "server.port", "-f", path, "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)

	path = writeDoc(t, "app.hcl", "server = { port = 8080 }\n")
	out, _, err = run(t, "", "get", "server.port", "-f", path, "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)
}

// TestSet parses values as YAML and applies pairs in order.
func TestSet(t *testing.T) {
	out, _, err := run(t, `{"a": 1}`, "set", "a.b", "5", "tags", "[x, y]", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": {"b": 5}, "tags": ["x", "y"]}`, out)

	out, _, err = run(t, `{}`, "set", "n", "5", "--raw", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": "5"}`, out)

	_, _, err = run(t, `{}`, "set", "odd", "--format", "json")
	assert.Error(t, err)
}

// TestDelete removes paths and warns about missing ones.
func TestDelete(t *testing.T) {
	out, stderr, err := run(t, doc, "delete", "db.replicas", "nope", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.JSONEq(t, `{"db": {"host": "h", "port": 5432}, "flat.key": 1}`, out)
	assert.Contains(t, stderr, "path not found")
	assert.Contains(t, stderr, "nope")
}

// TestDelete_RepeatedKey does not warn about a key given twice.
func TestDelete_RepeatedKey(t *testing.T) {
	out, stderr, err := run(t, `{"a": 1, "b": 2}`, "delete", "a", "a", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.JSONEq(t, `{"b": 2}`, out)
	assert.NotContains(t, stderr, "path not found")
}

// TestHasMatches reports presence and resolving prefixes.
func TestHasMatches(t *testing.T) {
	out, _, err := run(t, doc, "has", "db.host", "db.nope", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, _, err = run(t, doc, "has", "db.host", "db.nope", "--any", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = run(t, doc, "matches", "db.replicas.0.port", "--format", "json", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "db\ndb.replicas\ndb.replicas.0\n", out)
}

// TestConvertFlattenIs round-trips through the converters.
func TestConvertFlattenIs(t *testing.T) {
	out, _, err := run(t, doc, "is", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, _, err = run(t, doc, "convert", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.JSONEq(t, `{"db": {"host": "h", "port": 5432, "replicas": [{"host": "r0"}]}, "flat": {"key": 1}}`, out)

	out, _, err = run(t, `{"a": {"b": 1, "e": {}}}`, "flatten", "--skip-empty", "--prefix", "x/", "--separator", "/", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.JSONEq(t, `{"x/a/b": 1}`, out)
}

// TestPaths lists paths depth first.
func TestPaths(t *testing.T) {
	out, _, err := run(t, `{"a": {"b": 1}, "c": [2]}`, "paths", "--format", "json", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "a\na.b\nc\nc.0\n", out)

	out, _, err = run(t, `{"a": {"b": 1}, "c": [2]}`, "paths", "--leaves", "--format", "json", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "a.b\nc.0\n", out)
}

// TestOutputFormats writes YAML and TOML.
func TestOutputFormats(t *testing.T) {
	out, _, err := run(t, `{"a": {"b": "c"}}`, "convert", "--format", "json", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "a:\n  b: c\n", out)

	out, _, err = run(t, `{"a": "b"}`, "convert", "--format", "json", "-o", "toml")
	require.NoError(t, err)
	assert.Regexp(t, `^a = ['"]b['"]\n$`, out)
}

// TestErrors covers missing formats and bad configuration.
func TestErrors(t *testing.T) {
	_, _, err := run(t, doc, "get", "db")
	assert.ErrorIs(t, err, cli.ErrFormatRequired)

	_, _, err = run(t, doc, "get", "db", "--format", "json", "-o", "xml")
	assert.Error(t, err)

	_, _, err = run(t, "", "get", "db", "-f", filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}

// TestConfigFile applies settings from --config.
func TestConfigFile(t *testing.T) {
	cfg := writeDoc(t, "primext.cue", "format: \"json\"\noutput: \"text\"\n")
	out, _, err := run(t, doc, "get", "db.host", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "h\n", out)
}
