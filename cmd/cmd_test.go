package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
bind_address: "127.0.0.1:8080"
public_address: "localhost:8080"
default_route: "g"
groups:
  - name: "Search"
    routes:
      g: "https://google.com/search?q={{query}}"
      secret:
        path: "https://hidden.example"
        hidden: true
  - name: "Ops"
    hidden: true
    routes:
      dash: "https://dash.example"
`

func writeTestConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValidateCommand(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	out, err := execute(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "2 groups")
	assert.Contains(t, out, "3 routes")
}

func TestValidateCommand_InvalidConfig(t *testing.T) {
	path := writeTestConfig(t, "{{{{ not yaml")

	_, err := execute(t, "validate", "--config", path)
	assert.Error(t, err)
}

func TestValidateCommand_MissingConfig(t *testing.T) {
	_, err := execute(t, "validate", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	out, err := execute(t, "list", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "g")
	assert.Contains(t, out, "(default)")
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "dash")
}

func TestListCommand_All(t *testing.T) {
	path := writeTestConfig(t, testConfig)
	t.Cleanup(func() { listAll = false })

	out, err := execute(t, "list", "--config", path, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "secret")
	assert.Contains(t, out, "dash")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hop")
}
