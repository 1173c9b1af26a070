package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/randalmurphal/promptctl/config"
	"github.com/randalmurphal/promptctl/license"
)

// Version identifies one immutable snapshot of a prompt template.
type Version struct {
	Version int    `json:"version"`
	Path    string `json:"path"`
}

var versionFileRe = regexp.MustCompile(`^v(\d+)\.yaml$`)

func promptsDir() string {
	return filepath.Join(config.Dir(), "prompts")
}

// SaveVersion snapshots a template file as the next numbered version under
// the prompt directory derived from the file's stem. Returns the assigned
// version number and the snapshot path.
//
// The free-tier ceiling is checked before anything is written, so a denied
// save has no side effect. Concurrent saves against the same template name
// race on the next-version computation; the snapshot directory is not locked.
func SaveVersion(templatePath string) (int, string, error) {
	src, err := os.Stat(templatePath)
	if err != nil {
		return 0, "", fmt.Errorf("%w: template file not found: %s", ErrNotFound, templatePath)
	}

	name := strings.TrimSuffix(filepath.Base(templatePath), filepath.Ext(templatePath))
	dir := filepath.Join(promptsDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, "", fmt.Errorf("creating prompt dir: %w", err)
	}

	next := maxVersion(dir) + 1

	if !license.Current().IsPro() && next > license.MaxFreeVersions {
		return 0, "", fmt.Errorf("%w: free tier limited to %d versions per prompt; upgrade to Pro for unlimited versions",
			ErrQuota, license.MaxFreeVersions)
	}

	data, err := os.ReadFile(templatePath)
	if err != nil {
		return 0, "", fmt.Errorf("reading template: %w", err)
	}
	dest := filepath.Join(dir, fmt.Sprintf("v%d.yaml", next))
	if err := os.WriteFile(dest, data, src.Mode().Perm()); err != nil {
		return 0, "", fmt.Errorf("writing snapshot: %w", err)
	}
	// Snapshots carry the source's timestamp, like a metadata-preserving copy.
	_ = os.Chtimes(dest, src.ModTime(), src.ModTime())

	return next, dest, nil
}

// ListVersions returns all snapshots for a named prompt, sorted ascending by
// version number. A missing prompt directory yields an empty list.
func ListVersions(name string) []Version {
	dir := filepath.Join(promptsDir(), name)
	numbers := versionNumbers(dir)
	sort.Ints(numbers)

	versions := make([]Version, 0, len(numbers))
	for _, n := range numbers {
		versions = append(versions, Version{
			Version: n,
			Path:    filepath.Join(dir, fmt.Sprintf("v%d.yaml", n)),
		})
	}
	return versions
}

// LoadVersion returns the path of a specific snapshot.
func LoadVersion(name string, version int) (string, error) {
	path := filepath.Join(promptsDir(), name, fmt.Sprintf("v%d.yaml", version))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: version v%d not found for prompt %q", ErrNotFound, version, name)
	}
	return path, nil
}

func maxVersion(dir string) int {
	maxN := 0
	for _, n := range versionNumbers(dir) {
		if n > maxN {
			maxN = n
		}
	}
	return maxN
}

func versionNumbers(dir string) []int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var numbers []int
	for _, e := range entries {
		m := versionFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}
