// Package git shells out to the git binary to locate files that carry
// merge conflicts in a working tree.
package git

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

type GitRepo struct {
	WorkDir string
}

func New(workDir string) *GitRepo {
	return &GitRepo{WorkDir: workDir}
}

// ConflictedFiles returns the paths with unmerged status, in the order
// git reports them. A clean tree yields an empty slice.
func (repo *GitRepo) ConflictedFiles() ([]string, error) {
	cmd := exec.Command("git", "status", "--porcelain=v1")
	cmd.Dir = repo.WorkDir

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git status failed: %w", err)
	}

	return parsePorcelain(output), nil
}

// parsePorcelain picks the unmerged paths out of `git status --porcelain=v1`
// output.
func parsePorcelain(output []byte) []string {
	var files []string
	scanner := bufio.NewScanner(bytes.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}

		if !isUnmerged(line[0], line[1]) {
			continue
		}

		filePath := strings.TrimSpace(line[3:])

		// Git quotes filenames with special characters - remove the quotes
		if strings.HasPrefix(filePath, "\"") && strings.HasSuffix(filePath, "\"") {
			filePath = filePath[1 : len(filePath)-1]
		}

		files = append(files, filePath)
	}

	return files
}

// isUnmerged matches the porcelain status pairs git uses for conflicts:
// both-sides U, plus the AA and DD combinations.
func isUnmerged(staged, workTree byte) bool {
	if staged == 'U' || workTree == 'U' {
		return true
	}
	return (staged == 'A' && workTree == 'A') || (staged == 'D' && workTree == 'D')
}

// IsRepo reports whether WorkDir sits inside a git working tree.
func (repo *GitRepo) IsRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = repo.WorkDir
	return cmd.Run() == nil
}
