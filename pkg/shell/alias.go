package shell

import (
	"maps"
	"slices"
)

// AliasTable maps whole command lines to their replacement lines.
type AliasTable struct {
	aliases map[string]string
	history *History
}

func NewAliasTable(aliases map[string]string, history *History) *AliasTable {
	return &AliasTable{
		aliases: maps.Clone(aliases),
		history: history,
	}
}

// Expand records line into the history and returns its replacement. The
// lookup key is the entire raw line, so "ls" matches an alias for "ls" but
// "ls -la" does not.
func (a *AliasTable) Expand(line string, historyCap int) string {
	a.history.Record(line, historyCap)

	if replacement, ok := a.aliases[line]; ok {
		return replacement
	}

	return line
}

// Names returns the alias keys in sorted order.
func (a *AliasTable) Names() []string {
	return slices.Sorted(maps.Keys(a.aliases))
}
