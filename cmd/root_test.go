package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gcont/pkg/version"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubChanges struct {
	files []string
	err   error
}

func (s stubChanges) ChangedFiles(string) ([]string, error) {
	return s.files, s.err
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func run(t *testing.T, changes stubChanges, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(zaptest.NewLogger(t), changes)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGatherCommand(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"package.json":        "{}",
		"index.js":            "console.log(1)",
		"lib/util.ts":         "export {}",
		"lib/util.test.js":    "test()",
		"node_modules/dep.js": "dep",
		"README.md":           "# hi",
	})
	output := filepath.Join(t.TempDir(), "context.md")

	stdout, err := run(t, stubChanges{}, "--root", root, "--output", output, "--verbose")
	require.NoError(t, err)
	require.Contains(t, stdout, "Detected project type: nodejs")
	require.Contains(t, stdout, "Gathered files:")
	require.Contains(t, stdout, "- "+filepath.Join(root, "lib", "util.ts"))
	require.Contains(t, stdout, output+" has been generated with 2 files.")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc := string(data)
	require.Contains(t, doc, "```javascript\nconsole.log(1)\n```")
	require.Contains(t, doc, "```typescript\nexport {}\n```")
	require.NotContains(t, doc, "dep.js")
	require.NotContains(t, doc, "util.test.js")
}

func TestGatherCommandExtraPatternsAndProject(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"app.py":       "print(1)",
		"index.html":   "<p>hi</p>",
		"debug.log.py": "x",
	})
	output := filepath.Join(t.TempDir(), "out.md")

	stdout, err := run(t, stubChanges{}, "-r", root, "-o", output, "-p", "FLASK", "-i", "*.html", "-e", "*.log.py", "--tree")
	require.NoError(t, err)
	require.Contains(t, stdout, "Detected project type: flask")
	require.Contains(t, stdout, "generated with 2 files.")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc := string(data)
	require.True(t, strings.HasPrefix(doc, "## Project tree"))
	require.Contains(t, doc, "```html\n<p>hi</p>\n```")
	require.NotContains(t, doc, "debug.log.py")
}

func TestGatherCommandConfigFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"main.java":        "class Main {}",
		"notes.txt":        "n",
		"config.gcont.yml": "project: generic\ninclude: ['*.txt']\n",
	})
	output := filepath.Join(t.TempDir(), "context.md")

	stdout, err := run(t, stubChanges{}, "--root", root, "--output", output, "--project", "django", "--include", "*.java")
	require.NoError(t, err)
	require.Contains(t, stdout, "Detected project type: generic")
	require.Contains(t, stdout, "generated with 2 files.")
}

func TestGatherCommandMalformedConfig(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"config.gcont.yml": "include: [oops\n"})
	output := filepath.Join(t.TempDir(), "context.md")

	_, err := run(t, stubChanges{}, "--root", root, "--output", output)
	require.Error(t, err)
	_, statErr := os.Stat(output)
	require.True(t, os.IsNotExist(statErr))
}

func TestGatherCommandGitDiff(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.py": "a", "b.py": "b", "setup.py": "setup()"})
	output := filepath.Join(t.TempDir(), "context.md")

	stdout, err := run(t, stubChanges{files: []string{"b.py", "notes.md"}}, "-r", root, "-o", output, "--git-diff")
	require.NoError(t, err)
	require.Contains(t, stdout, "Detected project type: python_package")
	require.Contains(t, stdout, "generated with 1 files.")

	stdout, err = run(t, stubChanges{err: errors.New("not a git repository")}, "-r", root, "-o", output, "-g")
	require.NoError(t, err)
	require.Contains(t, stdout, "generated with 0 files.")
}

func TestGatherCommandRejectsArgs(t *testing.T) {
	_, err := run(t, stubChanges{}, "unexpected")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	stdout, err := run(t, stubChanges{}, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, version.Version+"\n", stdout)

	stdout, err = run(t, stubChanges{}, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "gcont version "+version.Version))
}
