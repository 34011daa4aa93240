package combine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLanguageFor(t *testing.T) {
	require.Equal(t, "python", LanguageFor("example.py"))
	require.Equal(t, "javascript", LanguageFor("src/example.js"))
	require.Equal(t, "typescript", LanguageFor("App.tsx"))
	require.Equal(t, "", LanguageFor("example.txt"))
	require.Equal(t, "", LanguageFor("file.ext"))
	require.Equal(t, "", LanguageFor("Makefile"))
}

func TestWriteDocument(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.py":      "print('hi')",
		"lib/util.js":  "export const x = 1;\n",
		"data.ext":     "raw",
		"empty.py":     "",
		"nested/a.css": "a { color: red; }",
	})
	files := []MatchedFile{
		newMatchedFile(root, "main.py"),
		newMatchedFile(root, "lib/util.js"),
		newMatchedFile(root, "data.ext"),
	}

	var buf bytes.Buffer
	skipped, err := WriteDocument(&buf, files, DocumentOptions{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Empty(t, skipped)

	slash := filepath.ToSlash(root)
	expected := "## " + slash + "/main.py\n\n```python\nprint('hi')\n```\n\n" +
		"## " + slash + "/lib/util.js\n\n```javascript\nexport const x = 1;\n\n```\n\n" +
		"## " + slash + "/data.ext\n\n```\nraw\n```\n\n"
	require.Equal(t, expected, buf.String())
}

func TestWriteDocumentSkipsUndecodableFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"good.py":  "x = 1",
		"bad.py":   string([]byte{0xff, 0xfe, 0x00, 'x'}),
		"other.py": "y = 2",
	})
	files := []MatchedFile{
		newMatchedFile(root, "good.py"),
		newMatchedFile(root, "bad.py"),
		newMatchedFile(root, "other.py"),
	}

	var buf bytes.Buffer
	skipped, err := WriteDocument(&buf, files, DocumentOptions{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "bad.py")}, skipped)

	doc := buf.String()
	require.Contains(t, doc, "```python\nx = 1\n```")
	require.Contains(t, doc, "```python\ny = 2\n```")
	require.Contains(t, doc, "/bad.py\n\n```python\n\n```\n\n")
	require.NotContains(t, doc, "\xff")
	require.Equal(t, 3, strings.Count(doc, "## "))
}

func TestWriteDocumentSkipsUnreadableFiles(t *testing.T) {
	root := t.TempDir()
	files := []MatchedFile{newMatchedFile(root, "gone.py")}

	var buf bytes.Buffer
	skipped, err := WriteDocument(&buf, files, DocumentOptions{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, skipped, 1)
	require.Contains(t, buf.String(), "gone.py")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteDocumentWriteErrorIsFatal(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.py": "a"})

	_, err := WriteDocument(failingWriter{}, []MatchedFile{newMatchedFile(root, "a.py")}, DocumentOptions{}, zaptest.NewLogger(t))
	require.Error(t, err)
}

func TestWriteDocumentWithTree(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.py": "a", "pkg/b.py": "b"})
	files := []MatchedFile{newMatchedFile(root, "a.py"), newMatchedFile(root, "pkg/b.py")}

	var buf bytes.Buffer
	_, err := WriteDocument(&buf, files, DocumentOptions{Tree: true}, zaptest.NewLogger(t))
	require.NoError(t, err)

	doc := buf.String()
	require.True(t, strings.HasPrefix(doc, "## Project tree\n\n```\n"))
	require.Less(t, strings.Index(doc, "## Project tree"), strings.Index(doc, "a.py\n\n```python"))
}

func TestWriteDocumentFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.py": "a"})
	out := filepath.Join(t.TempDir(), "nested", "context.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))
	require.NoError(t, os.WriteFile(out, []byte("stale content that is longer than the new document ..........................................."), 0o644))

	skipped, err := WriteDocumentFile(out, []MatchedFile{newMatchedFile(root, "a.py")}, DocumentOptions{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Empty(t, skipped)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "## "+filepath.ToSlash(filepath.Join(root, "a.py"))+"\n\n```python\na\n```\n\n", string(data))
}

func TestWriteDocumentFileCreatesDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "a", "b", "context.md")
	_, err := WriteDocumentFile(out, nil, DocumentOptions{}, zaptest.NewLogger(t))
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Empty(t, data)
}
