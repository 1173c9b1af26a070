package review

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

// Sentinel errors for review input extraction.
var (
	// ErrGitNotFound indicates the git binary is not installed or not in PATH.
	ErrGitNotFound = errors.New("git not found")

	// ErrDiff indicates git diff failed or timed out.
	ErrDiff = errors.New("git diff failed")

	// ErrInput indicates the review input file is missing or unreadable.
	ErrInput = errors.New("unreadable review input")
)

// diffTimeout bounds the git subprocess.
const diffTimeout = 30 * time.Second

// StagedDiff returns the staged git diff (git diff --cached).
func StagedDiff(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, diffTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", "diff", "--cached").Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: timed out after %s", ErrDiff, diffTimeout)
		}
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", fmt.Errorf("%w: ensure git is installed", ErrGitNotFound)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s", ErrDiff, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%w: %v", ErrDiff, err)
	}
	return string(out), nil
}

// FileContent reads a file's content for review.
func FileContent(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: file not found: %s", ErrInput, path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: not a file: %s", ErrInput, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: could not read %s: %v", ErrInput, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: cannot read binary file: %s", ErrInput, path)
	}
	return string(data), nil
}
