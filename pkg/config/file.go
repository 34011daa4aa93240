package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the first root directory.
const FileName = "config.gcont.yml"

// File mirrors config.gcont.yml. A nil field means the key was absent or
// null; Has tells the two apart.
type File struct {
	Project       *string   `yaml:"project"`
	Root          *Roots    `yaml:"root"`
	Include       *[]string `yaml:"include"`
	Exclude       *[]string `yaml:"exclude"`
	GitDiff       *bool     `yaml:"git_diff"`
	Verbose       *bool     `yaml:"verbose"`
	Output        *string   `yaml:"output"`
	MaxFileSizeKB *int      `yaml:"max_file_size_kb"`
	Tree          *bool     `yaml:"tree"`

	keys map[string]bool
}

// Has reports whether key appears in the file, even with a null value.
func (f *File) Has(key string) bool {
	return f != nil && f.keys[key]
}

// Roots accepts either a single path or a list of paths.
type Roots []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Roots) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*r = Roots{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*r = Roots(many)
		return nil
	default:
		return fmt.Errorf("line %d: root must be a path or a list of paths", value.Line)
	}
}

// Load reads and parses the config file at path. A missing file yields
// (nil, nil); a malformed one is an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	f.keys = make(map[string]bool, len(raw))
	for key := range raw {
		f.keys[key] = true
	}
	return &f, nil
}

// ReadPatternFile reads globs one per line, skipping blanks and '#' comments.
func ReadPatternFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern file: %w", err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}
	return patterns, nil
}
