package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for document input.
var (
	// ErrUnsupported indicates the file's extension is not in the allowlist.
	ErrUnsupported = errors.New("unsupported file type")

	// ErrInput indicates the file is missing, a directory, or not valid text.
	ErrInput = errors.New("unreadable document")
)

// supportedExtensions is the allowlist of readable document types.
var supportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".py":   true,
	".json": true,
	".yaml": true,
	".yml":  true,
	".csv":  true,
}

// Read loads a document file and returns its content and word count.
func Read(path string) (string, int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("%w: file not found: %s", ErrInput, path)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("%w: not a file: %s", ErrInput, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		exts := make([]string, 0, len(supportedExtensions))
		for e := range supportedExtensions {
			exts = append(exts, e)
		}
		sort.Strings(exts)
		return "", 0, fmt.Errorf("%w: %s. Supported: %s", ErrUnsupported, ext, strings.Join(exts, ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("%w: could not read %s: %v", ErrInput, path, err)
	}
	if !utf8.Valid(data) {
		return "", 0, fmt.Errorf("%w: cannot read binary file: %s", ErrInput, path)
	}

	content := string(data)
	return content, len(strings.Fields(content)), nil
}

// Analysis is a structured breakdown of a document.
type Analysis struct {
	Summary       string   `json:"summary"`
	KeyPoints     []string `json:"key_points"`
	Entities      []string `json:"entities"`
	Themes        []string `json:"themes"`
	WordCount     int      `json:"word_count"`
	TokenEstimate int      `json:"token_estimate"`
	Model         string   `json:"model"`
	InputTokens   int      `json:"input_tokens"`
	OutputTokens  int      `json:"output_tokens"`
	CostUSD       float64  `json:"cost_usd"`
}

// Answer is a response to a question about a document.
type Answer struct {
	Answer       string   `json:"answer"`
	Confidence   string   `json:"confidence"`
	SourceQuotes []string `json:"source_quotes"`
	Model        string   `json:"model"`
	InputTokens  int      `json:"input_tokens"`
	OutputTokens int      `json:"output_tokens"`
	CostUSD      float64  `json:"cost_usd"`
}

// Summary is an executive summary of a document. ChunksProcessed is 1 for
// documents summarized in a single call and the chunk count for the
// map-reduce path.
type Summary struct {
	ExecutiveSummary string   `json:"executive_summary"`
	Sections         []string `json:"sections"`
	WordCount        int      `json:"word_count"`
	Model            string   `json:"model"`
	InputTokens      int      `json:"input_tokens"`
	OutputTokens     int      `json:"output_tokens"`
	CostUSD          float64  `json:"cost_usd"`
	ChunksProcessed  int      `json:"chunks_processed"`
}
