package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	page := []byte("<div class=\"lc-grid\">\n</div>\n")
	require.Empty(t, Unified(page, page, "old.html", "new.html"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	expected := []byte("<div>\n<p>one</p>\n</div>\n")
	actual := []byte("<div>\n<p>two</p>\n</div>\n")

	result := Unified(expected, actual, "old.html", "new.html")
	require.True(t, strings.HasPrefix(result, "--- old.html\n+++ new.html\n@@ -1,3 +1,3 @@\n"))
	require.Contains(t, result, " <div>\n")
	require.Contains(t, result, "-<p>one</p>\n")
	require.Contains(t, result, "+<p>two</p>\n")
	require.Contains(t, result, " </div>\n")
}

func TestUnifiedWholeLines(t *testing.T) {
	t.Parallel()

	result := Unified([]byte("span:12\n"), []byte("span:16\n"), "a", "b")
	require.Contains(t, result, "-span:12\n")
	require.Contains(t, result, "+span:16\n")
	require.NotContains(t, result, " span:1")
}

func TestUnifiedEmptySides(t *testing.T) {
	t.Parallel()

	added := Unified(nil, []byte("a\nb\n"), "a", "b")
	require.Contains(t, added, "@@ -1,0 +1,2 @@")
	require.Contains(t, added, "+a\n+b\n")

	removed := Unified([]byte("a\n"), nil, "a", "b")
	require.Contains(t, removed, "-a\n")
}

func TestUnifiedTruncatesLongOutput(t *testing.T) {
	t.Parallel()

	var actual strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		actual.WriteString("line\n")
	}

	result := Unified(nil, []byte(actual.String()), "a", "b")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}

func TestChanged(t *testing.T) {
	t.Parallel()

	added, removed := Changed([]byte("a\nb\nc\n"), []byte("a\nx\ny\nc\n"))
	require.Equal(t, 2, added)
	require.Equal(t, 1, removed)

	added, removed = Changed([]byte("same\n"), []byte("same\n"))
	require.Zero(t, added)
	require.Zero(t, removed)
}
