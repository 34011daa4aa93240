package project

// BaselineExcludes are appended to every project type's excludes: VCS
// metadata, bytecode caches, packaging metadata, dependencies and build output.
var BaselineExcludes = []string{
	".git/*",
	"*__pycache__/*",
	"*.egg-info/*",
	"node_modules/*",
	"build/*",
	"dist/*",
}

// Patterns holds the default include and exclude globs for a project type.
type Patterns struct {
	Include []string
	Exclude []string
}

var defaults = map[Type]Patterns{
	Django: {
		Include: []string{"*.py"},
		Exclude: []string{"test_*.py", "*.md", "migrations/*"},
	},
	Flask: {
		Include: []string{"*.py"},
		Exclude: []string{"test_*.py", "*.md"},
	},
	NodeJS: {
		Include: []string{"*.js", "*.ts"},
		Exclude: []string{"*.test.js", "*.md"},
	},
	React: {
		Include: []string{"*.js", "*.jsx", "*.ts", "*.tsx"},
		Exclude: []string{"*.test.js", "*.test.jsx", "*.md"},
	},
	NextJS: {
		Include: []string{"*.js", "*.jsx", "*.ts", "*.tsx"},
		Exclude: []string{"*.test.js", "*.test.jsx", "*.test.ts", "*.test.tsx", "*.md"},
	},
	SpringBoot: {
		Include: []string{"*.java", "*.xml"},
		Exclude: []string{"*.md", "target/*"},
	},
	PythonPackage: {
		Include: []string{"*.py"},
		Exclude: []string{"test_*.py", "*.md", "build/*", "dist/*"},
	},
	Generic: {
		Include: []string{"*.py", "*.js", "*.java", "*.html", "*.css"},
		Exclude: []string{"test_*.py", "*.test.js", "*.md"},
	},
}

// PatternsFor returns a fresh copy of the defaults for t with the baseline
// excludes appended. Unknown types get the generic set.
func PatternsFor(t Type) Patterns {
	p, ok := defaults[t]
	if !ok {
		p = defaults[Generic]
	}

	include := append([]string(nil), p.Include...)
	exclude := make([]string, 0, len(p.Exclude)+len(BaselineExcludes))
	exclude = append(exclude, p.Exclude...)
	exclude = append(exclude, BaselineExcludes...)

	return Patterns{Include: include, Exclude: exclude}
}
