// Package pattern matches slash-separated paths against shell-style globs.
//
// Globs follow fnmatch rules rather than filepath.Match: '*' also crosses
// directory separators, so "*.py" matches "a/b/c.py" and "venv/*" matches
// everything below venv.
package pattern

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern is a compiled glob together with the line it came from.
type Pattern struct {
	Regexp *regexp.Regexp // Anchored regular expression equivalent of Line.
	Line   string         // Original glob.
}

// Set is an ordered collection of compiled globs.
type Set struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// NewSet compiles lines into a Set. Invalid or blank lines are skipped.
func NewSet(logger *zap.Logger, lines ...string) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Set{logger: logger}
	s.Add(lines...)
	return s
}

// Add compiles and appends lines to the set.
func (s *Set) Add(lines ...string) {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := Compile(line)
		if err != nil {
			s.logger.Warn("Skipping invalid pattern", zap.String("pattern", line), zap.Error(err))
			continue
		}
		s.patterns = append(s.patterns, p)
	}
}

// Len returns the number of compiled patterns.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Lines returns the source globs in order.
func (s *Set) Lines() []string {
	lines := make([]string, 0, len(s.patterns))
	for _, p := range s.patterns {
		lines = append(lines, p.Line)
	}
	return lines
}

// Matches reports whether path or its final segment matches any pattern.
func (s *Set) Matches(p string) bool {
	matched, _ := s.MatchesWithPattern(p)
	return matched
}

// MatchesWithPattern is Matches but also returns the first pattern that fired.
// A trailing slash marks p as a directory and is kept on the final segment.
func (s *Set) MatchesWithPattern(p string) (bool, *Pattern) {
	full, base := candidates(p)
	for _, pat := range s.patterns {
		if pat.Regexp.MatchString(full) || pat.Regexp.MatchString(base) {
			return true, pat
		}
	}
	return false, nil
}

// Matches reports whether p matches any of the given globs.
func Matches(p string, patterns []string) bool {
	full, base := candidates(p)
	for _, line := range patterns {
		pat, err := Compile(line)
		if err != nil {
			continue
		}
		if pat.Regexp.MatchString(full) || pat.Regexp.MatchString(base) {
			return true
		}
	}
	return false
}

// Compile translates a glob into an anchored regular expression.
func Compile(glob string) (*Pattern, error) {
	re, err := regexp.Compile(translate(glob))
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", glob, err)
	}
	return &Pattern{Regexp: re, Line: glob}, nil
}

// candidates returns the normalized full path and its final segment.
func candidates(p string) (string, string) {
	full := filepath.ToSlash(p)
	full = strings.TrimPrefix(full, "./")
	if strings.HasSuffix(full, "/") {
		return full, path.Base(strings.TrimSuffix(full, "/")) + "/"
	}
	return full, path.Base(full)
}

// translate converts '*', '?' and bracket classes; everything else is literal.
func translate(glob string) string {
	var b strings.Builder
	b.WriteString(`(?s)^`)

	runes := []rune(glob)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			class, next, ok := bracketClass(runes, i)
			if !ok {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(class)
			i = next
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString(`$`)
	return b.String()
}

// bracketClass parses a class starting at runes[start] == '['. It returns the
// regex class, the index of the closing ']' and false when the class is unterminated.
func bracketClass(runes []rune, start int) (string, int, bool) {
	j := start + 1
	if j < len(runes) && runes[j] == '!' {
		j++
	}
	if j < len(runes) && runes[j] == ']' {
		j++
	}
	for j < len(runes) && runes[j] != ']' {
		j++
	}
	if j >= len(runes) {
		return "", start, false
	}

	body := runes[start+1 : j]
	var b strings.Builder
	b.WriteString("[")
	if len(body) > 0 && body[0] == '!' {
		b.WriteString("^")
		body = body[1:]
	}
	for _, r := range body {
		if r == '\\' || r == '[' || r == ']' || r == '^' {
			b.WriteString(`\`)
		}
		b.WriteRune(r)
	}
	b.WriteString("]")
	return b.String(), j, true
}
