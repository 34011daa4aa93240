package combine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// extensionLanguages maps file extensions to fence language tags.
var extensionLanguages = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".jsx":  "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".java": "java",
	".html": "html",
	".css":  "css",
	".json": "json",
	".xml":  "xml",
	".go":   "go",
	".yml":  "yaml",
	".yaml": "yaml",
	".sh":   "bash",
	".sql":  "sql",
	".md":   "markdown",
	".toml": "toml",
	".kt":   "kotlin",
	".rb":   "ruby",
	".rs":   "rust",
}

// LanguageFor returns the fence tag for path's extension, or "" if unknown.
func LanguageFor(path string) string {
	return extensionLanguages[filepath.Ext(path)]
}

// errUndecodable marks content that is not valid UTF-8 text.
var errUndecodable = errors.New("content is not valid UTF-8")

// readText returns the file's content when it decodes as UTF-8.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, errUndecodable)
	}
	return string(data), nil
}

// formatSection renders a heading and a fenced block for one file.
func formatSection(f MatchedFile, content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", filepath.ToSlash(f.Path))
	fmt.Fprintf(&b, "```%s\n", f.Language)
	b.WriteString(content)
	b.WriteString("\n```\n\n")
	return b.String()
}
