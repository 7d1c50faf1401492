package play

import (
	"strings"
)

// Cursor reads a token list front to back. Lookahead (Peek, at) never
// fails: positions past the end read as the empty string. Only consuming
// past the end is an error.
type Cursor struct {
	index  int
	tokens TokenList
}

func NewCursor(tokens TokenList) *Cursor {
	return &Cursor{
		index:  0,
		tokens: tokens,
	}
}

func (c *Cursor) Reset(tokens TokenList) {
	c.index = 0
	c.tokens = tokens
}

func (c *Cursor) hasTokens() bool {
	return c.index < len(c.tokens)
}

// Empty reports whether every token has been consumed.
func (c *Cursor) Empty() bool {
	return !c.hasTokens()
}

// Len returns the number of unconsumed tokens.
func (c *Cursor) Len() int {
	return len(c.tokens) - c.index
}

// Peek returns the token n positions ahead of the cursor.
func (c *Cursor) Peek(n int) (string, bool) {
	if n < 0 || n >= c.Len() {
		return "", false
	}
	return c.tokens[c.index+n], true
}

func (c *Cursor) at(n int) string {
	tok, _ := c.Peek(n)
	return tok
}

func (c *Cursor) window(n int) []string {
	if n > c.Len() {
		n = c.Len()
	}
	return c.tokens[c.index : c.index+n]
}

// Remaining returns the unconsumed tokens without advancing.
func (c *Cursor) Remaining() TokenList {
	return c.tokens[c.index:]
}

// Next consumes and returns the front token.
func (c *Cursor) Next() (string, error) {
	if !c.hasTokens() {
		return "", ErrPrematureEnd
	}
	current := c.index
	c.index = c.index + 1
	return c.tokens.at(current), nil
}

func (c *Cursor) skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := c.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Push puts tok back at the front of the stream.
func (c *Cursor) Push(tok string) {
	if c.index > 0 && c.tokens[c.index-1] == tok {
		c.index = c.index - 1
		return
	}
	rest := make(TokenList, 0, c.Len()+1)
	rest = append(rest, tok)
	rest = append(rest, c.Remaining()...)
	c.Reset(rest)
}

// expect consumes one token per argument and fails on the first mismatch.
func (c *Cursor) expect(tokens ...string) error {
	for _, want := range tokens {
		tok, err := c.Next()
		if err != nil {
			return err
		}
		if tok != want {
			return errorf("received unexpected token %v, expected %v", tok, want)
		}
	}
	return nil
}

// skipPast consumes tokens up to and including the first occurrence of tok.
func (c *Cursor) skipPast(tok string) error {
	for {
		next, err := c.Next()
		if err != nil {
			return err
		}
		if next == tok {
			return nil
		}
	}
}

func (c *Cursor) String() string {
	return strings.Join(c.Remaining(), " ")
}
