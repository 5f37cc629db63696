package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/getmockd/seedgen/pkg/cliconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInit_Defaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	var out bytes.Buffer

	require.NoError(t, runInit(initOptions{Path: path}, &out))
	assert.Contains(t, out.String(), "Created "+path)
	assert.Contains(t, out.String(), cliconfig.KeyGoogleAPIKey)

	cfg, err := cliconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)

	_, err = cfg.Credential()
	assert.ErrorIs(t, err, cliconfig.ErrConfigKeyMissing)
}

func TestRunInit_WithAPIKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, runInit(initOptions{Path: path, Provider: "OpenAI", APIKey: "sk-test"}, &bytes.Buffer{}))

	cred, err := cliconfig.LoadCredential(path)
	require.NoError(t, err)
	assert.Equal(t, cliconfig.Credential("sk-test"), cred)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("GOOGLE_API_KEY: keep\n"), 0600))

	err := runInit(initOptions{Path: path}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GOOGLE_API_KEY: keep\n", string(data))

	require.NoError(t, runInit(initOptions{Path: path, APIKey: "new", Force: true}, &bytes.Buffer{}))
	cred, err := cliconfig.LoadCredential(path)
	require.NoError(t, err)
	assert.Equal(t, cliconfig.Credential("new"), cred)
}

func TestRunInit_UnknownProvider(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := runInit(initOptions{Path: path, Provider: "bard"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bard")
	assert.NoFileExists(t, path)
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedgen.yaml")

	_, stderr, err := runRootCommandForTest(t, []string{"init", "-c", path, "--provider", "ollama"}, "")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Created "+path)
	assert.NotContains(t, stderr, "Edit it")

	cred, err := cliconfig.LoadCredential(path)
	require.NoError(t, err)
	assert.Empty(t, cred)
}
