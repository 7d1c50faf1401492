package play

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	filteredChars    = "!+/\""
	punctuationChars = "-.():{}"
)

var charRef = regexp.MustCompile(`&#\d+;`)

type Scanner struct {
}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan splits a raw play description into tokens. It never fails; blank
// input yields an empty list.
func (*Scanner) Scan(data string) TokenList {
	sb := strings.Builder{}
	sb.Grow(len(data) + len(data)/4)

	for _, r := range data {
		switch {
		case strings.ContainsRune(filteredChars, r):
			continue
		case strings.ContainsRune(punctuationChars, r):
			sb.WriteRune(' ')
			sb.WriteRune(r)
			sb.WriteRune(' ')
		default:
			sb.WriteRune(r)
		}
	}

	cleaned := charRef.ReplaceAllString(sb.String(), "")

	var tokens TokenList
	for _, field := range strings.FieldsFunc(cleaned, unicode.IsSpace) {
		if lower := strings.ToLower(field); Keywords[lower] {
			field = lower
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// Tokenize is a convenience wrapper around a zero Scanner.
func Tokenize(data string) TokenList {
	return (&Scanner{}).Scan(data)
}
