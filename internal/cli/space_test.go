package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execSpace(t *testing.T, format, configPath string, verbose bool) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewSpaceCommand(&RootOptions{Format: format, Verbose: verbose})
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"--config", configPath})
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSpaceText(t *testing.T) {
	out, _, err := execSpace(t, "text", filepath.Join("testdata", "valid.yaml"), false)
	require.NoError(t, err)

	assert.Contains(t, out, "sizes:\n")
	assert.Contains(t, out, "  s: clamp(1rem, 0.8261rem + 0.8696vi, 1.5rem)")
	assert.Contains(t, out, "one-up pairs:\n")
	assert.Contains(t, out, "  s-m: clamp(1rem, 0.5652rem + 2.1739vi, 2.25rem)")
	assert.Contains(t, out, "custom pairs:\n")
	assert.Contains(t, out, "  s-l: clamp(1rem, 0.3043rem + 3.4783vi, 3rem)")
}

func TestSpaceMissingSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "type_only.yaml")
	writeFile(t, path, `type:
  min_width: 320
  max_width: 1240
  min_font_size: 18
  max_font_size: 20
  min_type_scale: 1.2
  max_type_scale: 1.25
`)

	_, _, err := execSpace(t, "text", path, false)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSpaceVerboseReportsDroppedCustomSizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dropped.yaml")
	writeFile(t, path, `space:
  min_width: 320
  max_width: 1240
  min_size: 16
  max_size: 24
  positive_steps: [1.5]
  custom_sizes: ["s-xl"]
`)

	out, errOut, err := execSpace(t, "text", path, true)
	require.NoError(t, err)
	assert.NotContains(t, out, "custom pairs:")
	assert.Contains(t, errOut, `custom size "s-xl" did not resolve`)
}
