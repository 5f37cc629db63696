package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getmockd/seedgen/pkg/ai"
	"github.com/getmockd/seedgen/pkg/cliconfig"
	"github.com/getmockd/seedgen/pkg/logging"
	"github.com/getmockd/seedgen/pkg/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoUsers = `[{"nome":"Ana","idade":30},{"nome":"Bruno","idade":25}]`

func runGenerateForTest(t *testing.T, opts generateOptions, src InputSource) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := runGenerate(context.Background(), opts, src, &stdout, &stderr, logging.Nop())
	return stdout.String(), stderr.String(), err
}

func TestRunGenerate_Stdout(t *testing.T) {
	stub := &stubProvider{response: "```json\n" + twoUsers + "\n```"}
	seen := useProvider(t, stub)
	path := writeTestConfig(t, "GOOGLE_API_KEY: abc\n")

	stdout, stderr, err := runGenerateForTest(t,
		generateOptions{ConfigPath: path},
		FlagInput{Quantity: "2", Fields: "nome, idade"},
	)
	require.NoError(t, err)

	assert.Equal(t, twoUsers+"\n", stdout)
	assert.Contains(t, stderr, "Generated 2 records in ")
	assert.NotContains(t, stderr, "Warning")

	assert.Equal(t, ai.ProviderGemini, seen.Provider)
	assert.Equal(t, "abc", seen.APIKey)
	assert.Equal(t, ai.DefaultGeminiModel, seen.Model)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "2")
	assert.Contains(t, stub.prompts[0], "nome")
	assert.Contains(t, stub.prompts[0], "idade")
}

func TestRunGenerate_OutputFile(t *testing.T) {
	useProvider(t, &stubProvider{response: "```json\n" + twoUsers + "\n```"})
	path := writeTestConfig(t, "GOOGLE_API_KEY: abc\n")
	out := filepath.Join(t.TempDir(), "users.json")

	stdout, stderr, err := runGenerateForTest(t,
		generateOptions{ConfigPath: path, OutputPath: out},
		FlagInput{Quantity: "2", Fields: "nome, idade"},
	)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Saved to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := `[
  {
    "nome": "Ana",
    "idade": 30
  },
  {
    "nome": "Bruno",
    "idade": 25
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestRunGenerate_CountMismatchWarns(t *testing.T) {
	useProvider(t, &stubProvider{response: `[{"a":1}]`})
	path := writeTestConfig(t, "GOOGLE_API_KEY: abc\n")

	stdout, stderr, err := runGenerateForTest(t,
		generateOptions{ConfigPath: path},
		FlagInput{Quantity: "3", Fields: "a"},
	)
	require.NoError(t, err)
	assert.Equal(t, "[{\"a\":1}]\n", stdout)
	assert.Contains(t, stderr, "Warning: asked for 3 records but the model returned 1")
	assert.Contains(t, stderr, "Generated 1 record in ")
}

func TestRunGenerate_MalformedPrintsPayload(t *testing.T) {
	useProvider(t, &stubProvider{response: "```json\nSorry, I can't do that\n```"})
	path := writeTestConfig(t, "GOOGLE_API_KEY: abc\n")

	stdout, stderr, err := runGenerateForTest(t,
		generateOptions{ConfigPath: path},
		FlagInput{Quantity: "1", Fields: "a"},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, seed.ErrMalformedResponse)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Sorry, I can't do that")
	assert.NotContains(t, stderr, "```")
}

func TestRunGenerate_UnexpectedShape(t *testing.T) {
	useProvider(t, &stubProvider{response: `{"records":[]}`})
	path := writeTestConfig(t, "GOOGLE_API_KEY: abc\n")
	out := filepath.Join(t.TempDir(), "out.json")

	stdout, _, err := runGenerateForTest(t,
		generateOptions{ConfigPath: path, OutputPath: out},
		FlagInput{Quantity: "1", Fields: "a"},
	)
	require.Error(t, err)

	var shapeErr *seed.UnexpectedShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "object", shapeErr.Kind)
	assert.Empty(t, stdout)
	assert.NoFileExists(t, out)
}

func TestRunGenerate_ModelError(t *testing.T) {
	useProvider(t, &stubProvider{err: ai.ErrRateLimited})
	path := writeTestConfig(t, "GOOGLE_API_KEY: abc\n")

	stdout, _, err := runGenerateForTest(t,
		generateOptions{ConfigPath: path},
		FlagInput{Quantity: "1", Fields: "a"},
	)
	assert.ErrorIs(t, err, ai.ErrRateLimited)
	assert.Empty(t, stdout)
}

func TestRunGenerate_ConfigErrors(t *testing.T) {
	stub := &stubProvider{response: "[]"}
	useProvider(t, stub)

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing", filepath.Join(t.TempDir(), "none.yaml"), cliconfig.ErrConfigMissing},
		{"empty", writeTestConfig(t, ""), cliconfig.ErrConfigEmpty},
		{"key missing", writeTestConfig(t, "API_KEY: x\n"), cliconfig.ErrConfigKeyMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runGenerateForTest(t,
				generateOptions{ConfigPath: tt.path},
				FlagInput{Quantity: "1", Fields: "a"},
			)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, stub.prompts, "model is never called when config fails")
}

func TestRunGenerate_InputErrors(t *testing.T) {
	stub := &stubProvider{response: "[]"}
	useProvider(t, stub)
	path := writeTestConfig(t, "GOOGLE_API_KEY: abc\n")

	_, _, err := runGenerateForTest(t, generateOptions{ConfigPath: path}, FlagInput{Quantity: "-1", Fields: "a"})
	assert.ErrorIs(t, err, seed.ErrInvalidQuantity)

	_, _, err = runGenerateForTest(t, generateOptions{ConfigPath: path}, FlagInput{Quantity: "1", Fields: ","})
	assert.ErrorIs(t, err, seed.ErrNoFields)

	assert.Empty(t, stub.prompts)
}

func TestRunGenerate_Overrides(t *testing.T) {
	seen := useProvider(t, &stubProvider{response: "[]"})
	path := writeTestConfig(t, "provider: gemini\nGOOGLE_API_KEY: g\nOPENAI_API_KEY: o\n")

	_, _, err := runGenerateForTest(t,
		generateOptions{ConfigPath: path, Overrides: cliconfig.Overrides{Provider: "openai", Model: "gpt-4o"}},
		FlagInput{Quantity: "1", Fields: "a"},
	)
	require.NoError(t, err)
	assert.Equal(t, ai.ProviderOpenAI, seen.Provider)
	assert.Equal(t, "o", seen.APIKey)
	assert.Equal(t, "gpt-4o", seen.Model)
}

func TestGenerateCmd_Flags(t *testing.T) {
	useProvider(t, &stubProvider{response: twoUsers})
	path := writeTestConfig(t, "GOOGLE_API_KEY: abc\n")

	stdout, stderr, err := runRootCommandForTest(t,
		[]string{"generate", "-c", path, "--quantity", "2", "--fields", "nome, idade"}, "")
	require.NoError(t, err)
	assert.Equal(t, twoUsers+"\n", stdout)
	assert.Contains(t, stderr, "Generated 2 records")
}

func TestGenerateCmd_Interactive(t *testing.T) {
	stub := &stubProvider{response: twoUsers}
	useProvider(t, stub)
	path := writeTestConfig(t, "GOOGLE_API_KEY: abc\n")

	stdout, stderr, err := runRootCommandForTest(t,
		[]string{"generate", "-c", path, "--interactive"}, "2\nnome, idade\n")
	require.NoError(t, err)
	assert.Equal(t, twoUsers+"\n", stdout)
	assert.Contains(t, stderr, "How many records")
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "nome, idade")
}

func TestGenerateCmd_MissingArgument(t *testing.T) {
	stub := &stubProvider{response: "[]"}
	useProvider(t, stub)

	tests := []struct {
		name string
		args []string
		flag string
	}{
		{"no flags", []string{"generate"}, "quantity"},
		{"no fields", []string{"generate", "--quantity", "3"}, "fields"},
		{"no quantity", []string{"generate", "--fields", "a"}, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runRootCommandForTest(t, tt.args, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingArgument)

			var missing *MissingArgumentError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.flag, missing.Flag)
			assert.True(t, strings.Contains(missing.Usage, "--quantity"), "usage lists the flags")
		})
	}

	assert.Empty(t, stub.prompts)
}
