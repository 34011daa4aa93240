// File: pkg/combine/tree.go
package combine

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// treeNode is a directory or file in the rendered tree.
type treeNode struct {
	name     string
	children map[string]*treeNode // nil for files
}

func newDirNode(name string) *treeNode {
	return &treeNode{name: name, children: make(map[string]*treeNode)}
}

func (n *treeNode) isDir() bool {
	return n.children != nil
}

// add inserts a slash-separated relative path below n.
func (n *treeNode) add(relPath string) {
	parts := strings.Split(relPath, "/")
	cur := n
	for i, part := range parts {
		if part == "" || part == "." {
			continue
		}
		child, ok := cur.children[part]
		if !ok {
			if i == len(parts)-1 {
				child = &treeNode{name: part}
			} else {
				child = newDirNode(part)
			}
			cur.children[part] = child
		} else if i < len(parts)-1 && !child.isDir() {
			child.children = make(map[string]*treeNode)
		}
		cur = child
	}
}

// BuildTree renders the matched files as one tree per root, roots in the
// order they first appear.
func BuildTree(files []MatchedFile) string {
	var treeBuilder strings.Builder

	var order []string
	roots := make(map[string]*treeNode)
	for _, f := range files {
		node, ok := roots[f.Root]
		if !ok {
			node = newDirNode(f.Root)
			roots[f.Root] = node
			order = append(order, f.Root)
		}
		node.add(f.RelPath)
	}

	for _, root := range order {
		treeBuilder.WriteString(fmt.Sprintf("%s/\n", strings.TrimSuffix(filepath.ToSlash(root), "/")))
		writeTreeRecursively(&treeBuilder, roots[root], "")
	}
	return treeBuilder.String()
}

// writeTreeRecursively writes n's children, directories first then files,
// each group sorted case-insensitively.
func writeTreeRecursively(b *strings.Builder, n *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(n.children))
	for _, child := range n.children {
		entries = append(entries, child)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir() != entries[j].isDir() {
			return entries[i].isDir()
		}
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].name < entries[j].name
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir() {
			b.WriteString(fmt.Sprintf("%s%s%s/\n", prefix, connector, entry.name))
			writeTreeRecursively(b, entry, prefix+extension)
		} else {
			b.WriteString(fmt.Sprintf("%s%s%s\n", prefix, connector, entry.name))
		}
	}
}
