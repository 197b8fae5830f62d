package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckerrors "github.com/VantageDataChat/pitchdeck/pkg/errors"
	"github.com/VantageDataChat/pitchdeck/theme"
)

func TestDefaultDeck(t *testing.T) {
	t.Parallel()

	d, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Telephony_Manager_Demo", d.Meta.FileBase)
	assert.Equal(t, "Telephony_Manager_Demo.pptx", d.FileName(""))
	assert.Equal(t, "Telephony_Manager_Demo_Light.pptx", d.FileName("_Light"))

	assert.Equal(t, "TELEPHONY MANAGER", d.Title.Heading)
	assert.Len(t, d.Problem.Current.Items, 11)
	assert.Len(t, d.Problem.Proposed.Items, 11)
	assert.Len(t, d.Features.Items, 8)
	assert.Len(t, d.TechStack.Columns, 3)
	assert.Len(t, d.Architecture.Clients, 3)
	assert.Len(t, d.Architecture.Server, 4)
	assert.Len(t, d.Architecture.Devices, 2)
	assert.Len(t, d.Bridge.Headers, 5)
	assert.Len(t, d.Bridge.Rows, 3)
	assert.Len(t, d.Notifications.Steps, 4)
	assert.Len(t, d.Notifications.Kinds, 3)
	assert.Len(t, d.Models.Items, 6)
	assert.Len(t, d.Regression.Features.Items, 10)
	assert.Len(t, d.Closing.Impact.Stats, 5)

	assert.Equal(t, theme.TagHighlight, d.Features.Items[1].Tag)
	assert.Equal(t, "Device B\ntcp:3490", d.Bridge.Rows[1].Stages[3])
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)

	a.Features.Items[0].Title = "changed"
	assert.Equal(t, "Live Device Dashboard", b.Features.Items[0].Title)
}

func TestLoadRoundTripsDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	want, err := Default()
	require.NoError(t, err)

	if diff := cmp.Diff(want, loaded); diff != "" {
		t.Fatalf("loaded deck differs (-want +got):\n%s", diff)
	}
}

func TestParseNormalizesToNFC(t *testing.T) {
	t.Parallel()

	decomposed := "Cafe\u0301"
	body := strings.Replace(string(defaultYAML), `title: "KEY FEATURES"`, `title: "`+decomposed+`"`, 1)

	d, err := Parse("deck.yaml", []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", d.Features.Title)
}

func TestParseRejectsUnknownTag(t *testing.T) {
	t.Parallel()

	body := strings.Replace(string(defaultYAML), "tag: highlight", "tag: teal", 1)
	_, err := Parse("deck.yaml", []byte(body))

	var validationErr *deckerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "features.items[1].tag", validationErr.Field)
	assert.Contains(t, validationErr.Message, "colortag")
}

func TestParseRejectsOversizedGrid(t *testing.T) {
	t.Parallel()

	d, err := Default()
	require.NoError(t, err)
	d.Models.Items = append(d.Models.Items, d.Models.Items[0])

	var validationErr *deckerrors.ValidationError
	require.ErrorAs(t, d.Validate(), &validationErr)
	assert.Equal(t, "models.items", validationErr.Field)
}

func TestParseRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := Parse("deck.yaml", []byte("meta:\n  file_base: x\n  colour: red\n"))

	var parseErr *deckerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, "deck.yaml", parseErr.Path)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	_, err := Parse("deck.yaml", nil)
	var parseErr *deckerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "empty")
}

func TestParseRejectsPathInFileBase(t *testing.T) {
	t.Parallel()

	d, err := Default()
	require.NoError(t, err)
	d.Meta.FileBase = "../escape"

	var validationErr *deckerrors.ValidationError
	require.ErrorAs(t, d.Validate(), &validationErr)
	assert.Equal(t, "meta.filebase", validationErr.Field)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
