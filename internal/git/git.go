package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// LsFiles returns the set of tracked files (relative paths) when root is a
// git work tree, or nil when it is not or the command fails. Callers fall
// back to a plain directory walk on nil.
func LsFiles(root string) map[string]struct{} {
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "-C", root, "ls-files", "-z")
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	files := make(map[string]struct{})
	for _, entry := range strings.Split(string(out), "\x00") {
		if entry == "" {
			continue
		}
		files[filepath.ToSlash(entry)] = struct{}{}
	}
	return files
}
