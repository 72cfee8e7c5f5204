package shell

import (
	"strings"
)

const delimiter = " "

// Tokenize splits line into a command word and its arguments.
//
// Splitting is literal: every single space is a delimiter, with no quoting,
// escaping or collapsing of consecutive spaces, so "a  b" yields the empty
// argument between the two spaces. A line made only of whitespace yields an
// empty command and no arguments.
func Tokenize(line string) (string, []string) {
	args := []string{}

	if strings.TrimSpace(line) == "" {
		return "", args
	}

	fields := strings.Split(line, delimiter)
	args = append(args, fields[1:]...)

	return fields[0], args
}
