package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"github.com/VantageDataChat/pitchdeck/content"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func countSlides(t *testing.T, path string) int {
	t.Helper()

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	n := 0
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			n++
		}
	}
	return n
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2026-10-01"

	out, _, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pitchdeck 1.2.3")
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "2026-10-01")
}

func TestBuildWritesBothThemes(t *testing.T) {
	dir := t.TempDir()

	out, logs, err := executeRoot(t, "build", "--out-dir", dir)
	require.NoError(t, err)

	for _, name := range []string{"Telephony_Manager_Demo.pptx", "Telephony_Manager_Demo_Light.pptx"} {
		path := filepath.Join(dir, name)
		assert.Equal(t, 10, countSlides(t, path), name)
		assert.Contains(t, out, path)
	}
	assert.Contains(t, logs, `"message":"deck saved"`)
}

func TestBuildSingleTheme(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeRoot(t, "build", "--out-dir", dir, "--theme", "light")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Telephony_Manager_Demo_Light.pptx", entries[0].Name())
}

func TestBuildNoClobber(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeRoot(t, "build", "--out-dir", dir, "--theme", "dark")
	require.NoError(t, err)

	_, _, err = executeRoot(t, "build", "--out-dir", dir, "--theme", "dark", "--no-clobber")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestBuildMissingOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, _, err := executeRoot(t, "build", "--out-dir", dir, "--theme", "dark")
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "Telephony_Manager_Demo.pptx"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestBuildRejectsUnknownTheme(t *testing.T) {
	_, _, err := executeRoot(t, "build", "--out-dir", t.TempDir(), "--theme", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "sepia"`)
}

func TestBuildRejectsBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("meta:\n  title: only\n"), 0o644))

	_, _, err := executeRoot(t, "build", "--out-dir", t.TempDir(), "--content", path)
	require.Error(t, err)
}

func TestRootRejectsBadLogLevel(t *testing.T) {
	_, _, err := executeRoot(t, "--log-level", "loud", "version")
	require.Error(t, err)
}

func TestThemesListsPalettes(t *testing.T) {
	out, _, err := executeRoot(t, "themes")
	require.NoError(t, err)

	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "light")
	assert.Contains(t, out, "#0F111A")
	assert.Contains(t, out, "text_body on background")
}

func TestThemesUnknown(t *testing.T) {
	_, _, err := executeRoot(t, "themes", "sepia")
	require.Error(t, err)
}

func TestLintReports(t *testing.T) {
	out, _, err := executeRoot(t, "lint", "--theme", "dark")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.NotContains(t, out, "off-canvas")
}

func TestLintStrictPassesWhenClean(t *testing.T) {
	_, _, err := executeRoot(t, "lint", "--theme", "light", "--strict", "--tolerance", "100")
	require.NoError(t, err)
}

func TestLintStrictFailsOnOverflow(t *testing.T) {
	deck, err := content.Default()
	require.NoError(t, err)
	deck.Features.Items[0].Description = strings.Repeat("overflowing description ", 200)
	data, err := yaml.Marshal(deck)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, _, err := executeRoot(t, "lint", "--theme", "dark", "--content", path, "--strict")
	require.Error(t, err)
	assert.ErrorIs(t, err, errLintFindings)
	assert.Contains(t, out, "text-overflow")

	_, _, err = executeRoot(t, "lint", "--theme", "dark", "--content", path)
	assert.NoError(t, err)
}

func TestPreviewWritesImages(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	dir := t.TempDir()

	out, _, err := executeRoot(t, "preview", "--theme", "dark", "--out-dir", dir, "--width", "320")
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "Telephony_Manager_Demo_slide*.png"))
	require.NoError(t, err)
	assert.Len(t, matches, 10)
	assert.Equal(t, 10, strings.Count(out, "\n"))
}

func TestPreviewRejectsFormat(t *testing.T) {
	_, _, err := executeRoot(t, "preview", "--format", "gif", "--out-dir", t.TempDir())
	require.Error(t, err)
}

func TestWatchRequiresContent(t *testing.T) {
	_, _, err := executeRoot(t, "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--content")
}
