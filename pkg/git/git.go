// Package git lists files that differ from the last commit.
package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ChangeLister reports paths, relative to root, that changed since HEAD.
type ChangeLister interface {
	ChangedFiles(root string) ([]string, error)
}

// Client shells out to the git binary.
type Client struct {
	Binary string // Defaults to "git" when empty.
}

// NewClient returns a Client using the git found on PATH.
func NewClient() *Client {
	return &Client{Binary: "git"}
}

// ChangedFiles runs `git diff --name-only HEAD` inside root. Paths are made
// relative to root and deleted files are left out. The call blocks until git exits.
func (c *Client) ChangedFiles(root string) ([]string, error) {
	bin := c.Binary
	if bin == "" {
		bin = "git"
	}

	cmd := exec.Command(bin, "diff", "--name-only", "--relative", "--diff-filter=d", "HEAD")
	cmd.Dir = root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("git diff in %s: %w: %s", root, err, msg)
		}
		return nil, fmt.Errorf("git diff in %s: %w", root, err)
	}
	return ParseNameOnly(out), nil
}

// ParseNameOnly splits `--name-only` output into paths, dropping blank lines.
func ParseNameOnly(out []byte) []string {
	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		files = append(files, line)
	}
	return files
}
