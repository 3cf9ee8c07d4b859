package faq

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `entries:
  - id: hours
    keywords: [hours, open]
    content: We are open 9 to 5.
  - id: parking
    keywords: [parking]
    content: Free parking behind the clinic.
  - id: other
    catch_all: true
    content: Please call the front desk.
`

func TestDecode(t *testing.T) {
	entries, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "hours", entries[0].ID)
	assert.Equal(t, []string{"hours", "open"}, entries[0].Keywords)
	assert.True(t, entries[2].CatchAll)
	assert.Empty(t, entries[2].Keywords)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("entries:\n  - id: a\n    keyword: [x]\n"))
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	entries, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEncode_ReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, DefaultEntries()))

	entries, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultEntries(), entries)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	kb, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, kb.Len())

	r := NewResponder(kb)
	assert.Equal(t, "Free parking behind the clinic.", r.Respond("Is there parking?"))
}

func TestLoadFile_InvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	body := "entries:\n  - id: a\n    keywords: [x]\n    content: one\n  - id: a\n    keywords: [y]\n    content: two\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestTokenSet(t *testing.T) {
	got := tokenSet(strings.ToLower("Hello, WORLD! hello_there 42 café hello don't"))
	want := map[string]struct{}{
		"hello": {}, "world": {}, "hello_there": {}, "42": {}, "café": {}, "don": {}, "t": {},
	}
	assert.Equal(t, want, got)
	assert.Empty(t, tokenSet("  ...  "))
}
