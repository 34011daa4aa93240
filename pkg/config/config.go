// Package config resolves the effective run settings from built-in defaults,
// command-line flags and the optional config.gcont.yml file.
package config

import (
	"fmt"
	"path/filepath"

	"gcont/pkg/project"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// DefaultOutput is the document written to the working directory.
const DefaultOutput = "context.md"

// Flags holds the raw command-line values.
type Flags struct {
	Project       string   // Project type override; empty means detect.
	Roots         []string // Root directories to gather from.
	Include       []string // Extra include globs.
	Exclude       []string // Extra exclude globs.
	ExcludeFrom   string   // File with extra exclude globs, one per line.
	GitDiff       bool     // Only gather files changed since HEAD.
	Verbose       bool     // Debug logging and a listing of gathered files.
	Output        string   // Destination of the combined document.
	MaxFileSizeKB int      // Files larger than this are skipped; 0 disables the limit.
	Tree          bool     // Prepend a tree of the gathered files.
}

// Settings is the resolved, read-only configuration for one run.
type Settings struct {
	Roots         []string
	Project       project.Type
	Detected      bool // Project was classified from marker files.
	Include       []string
	Exclude       []string
	ChangedOnly   bool
	Verbose       bool
	Output        string
	MaxFileSizeKB int
	Tree          bool
	ConfigFile    string // Path of the config file that was applied, if any.
}

// Defaults returns the built-in flag values.
func Defaults() Flags {
	return Flags{
		Roots:  []string{"."},
		Output: DefaultOutput,
	}
}

// BindFlags registers the command-line flags on fs, writing into f.
func BindFlags(fs *pflag.FlagSet, f *Flags) {
	d := Defaults()
	fs.StringVarP(&f.Project, "project", "p", d.Project, "Project type (django, flask, nodejs, react, nextjs, spring_boot, python_package, generic)")
	fs.StringSliceVarP(&f.Roots, "root", "r", d.Roots, "Root directories to search for files")
	fs.StringSliceVarP(&f.Include, "include", "i", nil, "Additional include patterns, comma-separated (e.g. '*.html,*.css')")
	fs.StringSliceVarP(&f.Exclude, "exclude", "e", nil, "Additional exclude patterns, comma-separated (e.g. '*.log,*.tmp')")
	fs.StringVar(&f.ExcludeFrom, "exclude-from", "", "Read additional exclude patterns from a file")
	fs.BoolVarP(&f.GitDiff, "git-diff", "g", d.GitDiff, "Only include files that have changed since the last commit")
	fs.BoolVarP(&f.Verbose, "verbose", "v", d.Verbose, "Enable verbose output and list gathered files")
	fs.StringVarP(&f.Output, "output", "o", d.Output, "Output file for the combined document")
	fs.IntVar(&f.MaxFileSizeKB, "max-size", d.MaxFileSizeKB, "Skip files larger than this many KB (0 for no limit)")
	fs.BoolVar(&f.Tree, "tree", d.Tree, "Prepend a tree of the gathered files to the document")
}

// Resolve overlays the config file found in the first root on top of flags,
// classifies the project when no type was given and prepends the type's
// default patterns to the user patterns.
func Resolve(flags Flags, logger *zap.Logger) (*Settings, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Settings{
		Roots:         append([]string(nil), flags.Roots...),
		Include:       append([]string(nil), flags.Include...),
		Exclude:       append([]string(nil), flags.Exclude...),
		ChangedOnly:   flags.GitDiff,
		Verbose:       flags.Verbose,
		Output:        flags.Output,
		MaxFileSizeKB: flags.MaxFileSizeKB,
		Tree:          flags.Tree,
	}
	if len(s.Roots) == 0 {
		s.Roots = Defaults().Roots
	}
	if s.Output == "" {
		s.Output = DefaultOutput
	}
	projectName := flags.Project

	if flags.ExcludeFrom != "" {
		extra, err := ReadPatternFile(flags.ExcludeFrom)
		if err != nil {
			return nil, err
		}
		s.Exclude = append(s.Exclude, extra...)
		logger.Debug("Loaded exclude patterns from file",
			zap.String("file", flags.ExcludeFrom),
			zap.Int("count", len(extra)))
	}

	configPath := filepath.Join(s.Roots[0], FileName)
	file, err := Load(configPath)
	if err != nil {
		logger.Error("Failed to load config file", zap.String("file", configPath), zap.Error(err))
		return nil, err
	}
	if file != nil {
		logger.Debug("Applying config file", zap.String("file", configPath))
		s.ConfigFile = configPath
		if file.Has("project") {
			projectName = deref(file.Project)
		}
		overlay(s, file)
	}
	if len(s.Roots) == 0 {
		return nil, fmt.Errorf("config file %s: root list is empty", configPath)
	}

	if projectName == "" {
		s.Project = project.Detect(s.Roots[0])
		s.Detected = true
	} else {
		t, err := project.Parse(projectName)
		if err != nil {
			logger.Warn("Unknown project type, using generic patterns", zap.String("project", projectName))
		}
		s.Project = t
	}

	defaults := project.PatternsFor(s.Project)
	s.Include = append(defaults.Include, s.Include...)
	s.Exclude = append(defaults.Exclude, s.Exclude...)

	logger.Debug("Resolved settings",
		zap.Strings("roots", s.Roots),
		zap.String("project", string(s.Project)),
		zap.Strings("include", s.Include),
		zap.Strings("exclude", s.Exclude),
		zap.Bool("changedOnly", s.ChangedOnly))
	return s, nil
}

// overlay replaces every setting whose key is present in the file. A null
// value clears the setting: lists become empty and switches turn off. A null
// root or output leaves the current value in place.
func overlay(s *Settings, f *File) {
	if f.Root != nil {
		s.Roots = append([]string(nil), (*f.Root)...)
	}
	if f.Has("include") {
		s.Include = append([]string(nil), deref(f.Include)...)
	}
	if f.Has("exclude") {
		s.Exclude = append([]string(nil), deref(f.Exclude)...)
	}
	if f.Has("git_diff") {
		s.ChangedOnly = deref(f.GitDiff)
	}
	if f.Has("verbose") {
		s.Verbose = deref(f.Verbose)
	}
	if f.Output != nil && *f.Output != "" {
		s.Output = *f.Output
	}
	if f.Has("max_file_size_kb") {
		s.MaxFileSizeKB = deref(f.MaxFileSizeKB)
	}
	if f.Has("tree") {
		s.Tree = deref(f.Tree)
	}
}

// deref returns *p, or the zero value when p is nil.
func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
