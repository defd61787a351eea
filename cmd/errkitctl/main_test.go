package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func fastConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "errkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debounceMillis: 20\n"), 0o600))
	return path
}

const validationBody = `{"body":{"message":"Validation failed","output":{"errors":[],"fieldErrors":{"Email":[{"field":"Email","fieldLabel":"Email","message":"Invalid email","errorCode":"INVALID_EMAIL_ADDRESS"}]}}}}`

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		shape string
	}{
		{name: "string", input: `"boom"`, shape: "string"},
		{name: "exception", input: `{"message":"boom","stack":"at line 1"}`, shape: "exception"},
		{name: "body", input: validationBody, shape: "structured_body"},
		{name: "opaque", input: `42`, shape: "opaque"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runCLI(t, "", "classify", tc.input)
			require.NoError(t, err)
			var got map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tc.shape, got["shape"])
		})
	}
}

func TestClassify_ReadsStdin(t *testing.T) {
	out, _, err := runCLI(t, `"from stdin"`, "classify")
	require.NoError(t, err)
	assert.Contains(t, out, `"message": "from stdin"`)
}

func TestClassify_InvalidInput(t *testing.T) {
	_, _, err := runCLI(t, "", "classify", "{nope")
	var exitErr exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitCodeUsage, exitErr.code)

	_, _, err = runCLI(t, "   ", "classify")
	require.ErrorAs(t, err, &exitErr)
}

func TestFormat_JSON(t *testing.T) {
	out, _, err := runCLI(t, "", "format", "--host", "c-form", validationBody)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Validation failed", got["message"])
	assert.Equal(t, "", got["payload"])
	assert.Equal(t, "c-form", got["hostName"])
	fieldErrors, ok := got["fieldErrors"].([]any)
	require.True(t, ok)
	require.Len(t, fieldErrors, 1)
}

func TestFormat_SomethingWentWrongYAML(t *testing.T) {
	out, _, err := runCLI(t, "", "format", "-o", "yaml", "--something-went-wrong", "--message", "Oops", `"secret detail"`)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Oops", got["message"])
	assert.Equal(t, `"secret detail"`, got["payload"])
	assert.Equal(t, "somethingWentWrong", got["handlerMethod"])
}

func TestRootRejectsUnknownOutput(t *testing.T) {
	_, _, err := runCLI(t, "", "-o", "xml", "format", `"boom"`)
	var exitErr exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.message, "--output")
}

func TestReplay_DebouncedBurst(t *testing.T) {
	out, _, err := runCLI(t, "\"first\"\n\"second\"\n\"third\"\n", "--config", fastConfig(t), "replay", "--metrics")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "[toast]"))
	assert.Contains(t, out, "[toast] third")
	assert.Contains(t, out, `errkit_errors_handled_total{method="handleError",shape="string"} 3`)
	assert.NotContains(t, out, "go_goroutines")
}

func TestReplay_DisableDebounce(t *testing.T) {
	out, _, err := runCLI(t, `"first" "second"`, "--config", fastConfig(t), "replay", "--disable-debounce", "--host", "c-form")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "[toast] (c-form)"))
}

func TestReplay_ModalForFieldErrors(t *testing.T) {
	out, _, err := runCLI(t, validationBody, "--config", fastConfig(t), "replay")
	require.NoError(t, err)
	assert.Contains(t, out, "[modal] Validation failed")
	assert.Contains(t, out, "  - Email: Invalid email")
}

func TestReplay_InvalidType(t *testing.T) {
	_, _, err := runCLI(t, `"boom"`, "replay", "--type", "banner")
	var exitErr exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitCodeUsage, exitErr.code)
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "dev"`)
}

func TestServe_ReportsUntilEOF(t *testing.T) {
	out, _, err := runCLI(t, "\"first\"\n\"second\"\n", "--config", fastConfig(t), "serve", "--watch=false")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "[toast]"))
	assert.Contains(t, out, "[toast] second")
}

func TestServe_InvalidInput(t *testing.T) {
	_, _, err := runCLI(t, "\"first\"\n{bad", "--config", fastConfig(t), "serve", "--watch=false")
	var exitErr exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitCodeUsage, exitErr.code)
}
