// Package parse splits free-form input into note tokens or scale degrees.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// Notes splits text on runs of whitespace and commas, dropping empty
// tokens. Notes("  ") is empty but never nil.
func Notes(text string) []string {
	res := strings.FieldsFunc(text, isSeparator)
	if res == nil {
		res = []string{}
	}
	return res
}

// NumericNotes splits like Notes and parses each token as a signed integer.
// A trailing '#' or 'b' accidental is tolerated but has no effect on the
// resulting degree. Range checking happens later, during translation.
func NumericNotes(text string) ([]int, error) {
	tokens := Notes(text)
	res := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		trimmed := strings.TrimRight(tok, "#b")
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid scale degree token: %q", tok)
		}
		res = append(res, n)
	}
	return res, nil
}
