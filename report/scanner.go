package report

import (
	"errors"
	"strings"
	"unicode"
)

// SeriesScanner splits a series selector such as
// nflplay_parse{season="2012",source="pbp"} into tokens.
type SeriesScanner struct {
}

func NewSeriesScanner() *SeriesScanner {
	return &SeriesScanner{}
}

func (*SeriesScanner) Scan(data string) (TokenList, error) {
	var tokens TokenList
	runes := []rune(data)
	index := 0
	quoted := false

	next := func() rune {
		current := runes[index]
		index = index + 1
		return current
	}

	peek := func() rune {
		return runes[index]
	}

	// label values are taken verbatim up to the closing quote; \" and \\
	// escape a quote and a backslash
	value := func(start int) Token {
		sb := strings.Builder{}
		for index < len(runes) && peek() != '"' {
			r := next()
			if r == '\\' && index < len(runes) && (peek() == '"' || peek() == '\\') {
				r = next()
			}
			sb.WriteRune(r)
		}
		return Token{
			TokenType: TokenTypeName,
			StringVal: sb.String(),
			Pos:       start,
		}
	}

	name := func(t rune, start int) Token {
		sb := strings.Builder{}
		sb.WriteRune(t)
		for index < len(runes) {
			r := peek()
			if r == '{' || r == '}' || r == '=' || r == ',' || r == '"' || unicode.IsSpace(r) {
				break
			}
			sb.WriteRune(next())
		}
		return Token{
			TokenType: TokenTypeName,
			StringVal: sb.String(),
			Pos:       start,
		}
	}

	punct := map[rune]TokenType{
		'{': TokenTypeLBrace,
		'}': TokenTypeRBrace,
		'=': TokenTypeEquals,
		',': TokenTypeComma,
	}

	for index < len(runes) {
		start := index
		if quoted {
			if peek() != '"' {
				tokens = append(tokens, value(start))
				continue
			}
		}

		r := next()
		if unicode.IsSpace(r) {
			continue
		}
		if r == '"' {
			quoted = !quoted
			tokens = append(tokens, Token{TokenType: TokenTypeQuote, Pos: start})
			continue
		}
		if t, ok := punct[r]; ok {
			tokens = append(tokens, Token{TokenType: t, Pos: start})
			continue
		}
		tokens = append(tokens, name(r, start))
	}

	if quoted {
		return nil, errors.New("unterminated label value")
	}
	return tokens, nil
}
