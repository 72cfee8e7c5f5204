package terminal

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Completer completes the command word from fixed names and the executables
// found on the search path.
type Completer struct {
	words    []string
	sources  []func() []string
	pathDirs []string
}

func NewCompleter(pathList string) *Completer {
	var dirs []string

	if pathList != "" {
		dirs = strings.Split(pathList, string(os.PathListSeparator))
	}

	return &Completer{pathDirs: dirs}
}

func (c *Completer) AddWords(words ...string) {
	c.words = append(c.words, words...)
}

// AddSource registers names that are looked up on every completion.
func (c *Completer) AddSource(source func() []string) {
	c.sources = append(c.sources, source)
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])

	// only the command word is completed
	if strings.Contains(prefix, " ") {
		return nil, 0
	}

	matches := c.Matches(prefix)
	if len(matches) == 0 {
		return nil, 0
	}

	suffixes := make([][]rune, 0, len(matches))
	for _, m := range matches {
		suffix := m[len(prefix):]
		if len(matches) == 1 {
			suffix += " "
		}
		suffixes = append(suffixes, []rune(suffix))
	}

	return suffixes, len([]rune(prefix))
}

// Matches returns the sorted, de-duplicated candidates starting with prefix.
func (c *Completer) Matches(prefix string) []string {
	var matches []string

	words := c.words
	for _, source := range c.sources {
		words = append(slices.Clip(words), source()...)
	}

	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}

	for _, dir := range c.pathDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, prefix) {
				continue
			}

			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			if info.Mode().IsRegular() && info.Mode()&0111 != 0 {
				matches = append(matches, name)
			}
		}
	}

	slices.Sort(matches)
	return slices.Compact(matches)
}
