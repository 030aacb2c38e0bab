package batch

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		ID:         "0b5c3a5e-8c1d-4a5e-9f10-3d2c1b0a9e8f",
		Parser:     "id",
		StartedAt:  time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
		DurationMs: 3,
		Passed:     1,
		Failed:     1,
		Results: []Outcome{
			{Line: 1, Input: "A123456(7)x", OK: true, Value: "A123456(7)", Remaining: "x"},
			{Line: 2, Input: "123456(7)", Error: "Unexpected '1': did not satisfy the condition", Kind: "unexpected"},
		},
	}
}

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestRenderText(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), FormatText))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ok"))
	assert.Contains(t, lines[0], "A123456(7)x")
	assert.Contains(t, lines[0], `(remaining "x")`)
	assert.True(t, strings.HasPrefix(lines[1], "FAIL"))
	assert.Contains(t, lines[1], "Unexpected '1': did not satisfy the condition")
	assert.Equal(t, "id: 1 passed, 1 failed (3ms)", lines[2])
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "id", decoded["parser"])
	assert.Equal(t, float64(1), decoded["failed"])

	results, ok := decoded["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)
	second := results[1].(map[string]any)
	assert.Equal(t, "unexpected", second["kind"])
	assert.NotContains(t, second, "value")
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), "YAML"))

	var decoded struct {
		Parser  string `yaml:"parser"`
		Passed  int    `yaml:"passed"`
		Results []struct {
			Line  int    `yaml:"line"`
			Error string `yaml:"error"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "id", decoded.Parser)
	assert.Equal(t, 1, decoded.Passed)
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, "Unexpected '1': did not satisfy the condition", decoded.Results[1].Error)
}

func TestRenderUnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, sampleReport(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}
