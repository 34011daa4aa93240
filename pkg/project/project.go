// Package project guesses a project's type from marker files and maps each
// type to its default include and exclude globs.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Type is a coarse project classification used to pick default patterns.
type Type string

const (
	Django        Type = "django"
	Flask         Type = "flask"
	NodeJS        Type = "nodejs"
	React         Type = "react"
	NextJS        Type = "nextjs"
	SpringBoot    Type = "spring_boot"
	PythonPackage Type = "python_package"
	Generic       Type = "generic"
)

// Types lists every known project type.
func Types() []Type {
	return []Type{Django, Flask, NodeJS, React, NextJS, SpringBoot, PythonPackage, Generic}
}

// Parse converts a user-supplied name into a Type, case-insensitively.
func Parse(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Types() {
		if t == known {
			return t, nil
		}
	}
	return Generic, fmt.Errorf("unknown project type %q", name)
}

// rule is one step of the detection chain.
type rule struct {
	typ   Type
	match func(root string) bool
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{Django, allExist("manage.py", "requirements.txt")},
	{Flask, allExist("app.py", "requirements.txt")},
	{NextJS, allExist("package.json", "pages", "next.config.js")},
	{React, func(root string) bool {
		return exists(root, "package.json") && anyExist("src/App.js", "src/App.tsx")(root)
	}},
	{NodeJS, allExist("package.json")},
	{SpringBoot, allExist("pom.xml")},
	{PythonPackage, anyExist("setup.py", "pyproject.toml")},
}

// Detect classifies the project rooted at root. Missing or unreadable marker
// files simply fail their rule.
func Detect(root string) Type {
	for _, r := range rules {
		if r.match(root) {
			return r.typ
		}
	}
	return Generic
}

func exists(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(name)))
	return err == nil
}

func allExist(names ...string) func(string) bool {
	return func(root string) bool {
		for _, name := range names {
			if !exists(root, name) {
				return false
			}
		}
		return true
	}
}

func anyExist(names ...string) func(string) bool {
	return func(root string) bool {
		for _, name := range names {
			if exists(root, name) {
				return true
			}
		}
		return false
	}
}
