package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel returns a canned response, recording the prompt it was given.
type stubModel struct {
	response string
	err      error
	prompt   string
	calls    int
}

func (m *stubModel) Complete(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.prompt = prompt
	return m.response, m.err
}

func TestGenerate(t *testing.T) {
	t.Run("strips fences and parses array", func(t *testing.T) {
		model := &stubModel{response: "```json\n[{\"name\":\"a\"}]\n```"}

		records, cleaned, err := Generate(context.Background(), model, "prompt")
		require.NoError(t, err)

		assert.Equal(t, 1, model.calls)
		assert.Equal(t, "prompt", model.prompt)
		assert.Equal(t, `[{"name":"a"}]`, cleaned)
		assert.Equal(t, []interface{}{map[string]interface{}{"name": "a"}}, records.Records)
		assert.Equal(t, 1, records.Len())
	})

	t.Run("object is unexpected shape", func(t *testing.T) {
		model := &stubModel{response: `{"name":"a"}`}

		records, cleaned, err := Generate(context.Background(), model, "prompt")
		require.ErrorIs(t, err, ErrUnexpectedShape)
		assert.Nil(t, records)
		assert.Equal(t, `{"name":"a"}`, cleaned)

		var se *UnexpectedShapeError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "object", se.Kind)
	})

	t.Run("not json is malformed and surfaces trimmed text", func(t *testing.T) {
		model := &stubModel{response: "  not json \n"}

		_, cleaned, err := Generate(context.Background(), model, "prompt")
		require.ErrorIs(t, err, ErrMalformedResponse)
		assert.Equal(t, "not json", cleaned)

		var me *MalformedResponseError
		require.True(t, errors.As(err, &me))
		assert.Equal(t, "not json", me.Payload)
		assert.Error(t, me.Cause)
	})

	t.Run("model failure is wrapped", func(t *testing.T) {
		boom := errors.New("connection refused")
		model := &stubModel{err: boom}

		_, _, err := Generate(context.Background(), model, "prompt")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("count mismatch is not an error", func(t *testing.T) {
		model := &stubModel{response: `[{"a":1},{"a":2},{"a":3}]`}

		records, _, err := Generate(context.Background(), model, BuildPrompt(Request{Count: 1, Fields: []string{"a"}}))
		require.NoError(t, err)
		assert.Equal(t, 3, records.Len())
	})
}

func TestParse_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  string
	}{
		{`{"a":1}`, "object"},
		{`"text"`, "string"},
		{`42`, "number"},
		{`true`, "boolean"},
		{`null`, "null"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.kind, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			var se *UnexpectedShapeError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.kind, se.Kind)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	arrays := [][]interface{}{
		{},
		{map[string]interface{}{"name": "Ana", "age": 31.0}},
		{
			map[string]interface{}{"id": "1", "tags": []interface{}{"x", "y"}, "active": true},
			map[string]interface{}{"id": "2", "tags": []interface{}{}, "active": false, "note": nil},
		},
		{"plain", 1.5, false, nil},
	}

	for _, arr := range arrays {
		data, err := json.MarshalIndent(arr, "", "  ")
		require.NoError(t, err)

		fenced := "```json\n" + string(data) + "\n```"
		records, err := Parse(StripFences(fenced))
		require.NoError(t, err)
		assert.Equal(t, arr, records.Records)
	}
}

func TestWriteFile(t *testing.T) {
	records, err := Parse(`[{"zeta":"z","alpha":"a"},{"zeta":"y","alpha":"b"}]`)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, json.Valid(data))

	var got []interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, records.Records, got)

	want := "[\n  {\n    \"zeta\": \"z\",\n    \"alpha\": \"a\"\n  },\n  {\n    \"zeta\": \"y\",\n    \"alpha\": \"b\"\n  }\n]\n"
	assert.Equal(t, want, string(data), "keys keep model order, two-space indent")
}

func TestWriteFile_BadPath(t *testing.T) {
	records, err := Parse(`[]`)
	require.NoError(t, err)

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "out.json"), records)
	assert.Error(t, err)
}

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, `[{"name":"a"}]`))
	assert.Equal(t, "[{\"name\":\"a\"}]\n", buf.String())
}
