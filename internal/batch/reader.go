package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one line of a batch file: a text with an optional known
// translation.
type Entry struct {
	Text        string
	Translation string
}

// ReadBatchFile reads entries from a file, one per line.
// Supports formats:
// - Text only: "寿司" (will be translated)
// - With translation: "寿司 = sushi" (seeds the translation cache)
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return ParseBatch(string(content)), nil
}

// ParseBatch parses batch file content.
func ParseBatch(content string) []Entry {
	var entries []Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		text, translation, found := strings.Cut(line, "=")
		if !found {
			entries = append(entries, Entry{Text: line})
			continue
		}

		text = strings.TrimSpace(text)
		translation = strings.TrimSpace(translation)
		if text == "" {
			// Nothing to translate from
			continue
		}
		entries = append(entries, Entry{Text: text, Translation: translation})
	}

	return entries
}

// Texts returns the text of every entry.
func Texts(entries []Entry) []string {
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	return texts
}
