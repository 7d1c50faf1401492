package report

import (
	"errors"
	"fmt"
	"regexp"

	"go.buf.build/protocolbuffers/go/prometheus/prometheus"
)

const nameLabel = "__name__"

var validName = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

// SeriesParser turns selector tokens into a series with no samples. The
// metric name becomes the __name__ label.
type SeriesParser struct {
	index  int
	tokens TokenList
}

func NewSeriesParser(tokens TokenList) *SeriesParser {
	return &SeriesParser{
		index:  0,
		tokens: tokens,
	}
}

func (p *SeriesParser) hasTokens() bool {
	return p.index < len(p.tokens)
}

func (p *SeriesParser) consume() {
	p.index = p.index + 1
}

func (p *SeriesParser) next() (*Token, error) {
	if !p.hasTokens() {
		return nil, errors.New("unexpected end of series")
	}
	current := p.index
	p.index = p.index + 1
	return p.tokens.at(current), nil
}

func (p *SeriesParser) peek() *Token {
	return p.tokens.at(p.index)
}

func (p *SeriesParser) expect(t TokenType) (*Token, error) {
	token, err := p.next()
	if err != nil {
		return nil, err
	}
	if token.TokenType == t {
		return token, nil
	}
	return nil, fmt.Errorf("unexpected token, expected %v but got %v at %v", TokenMapping[t], token, token.Pos)
}

// label parses <name>="<value>"; the value may be empty.
func (p *SeriesParser) label() (*prometheus.Label, error) {
	name, err := p.expect(TokenTypeName)
	if err != nil {
		return nil, err
	}
	if !validName.MatchString(name.StringVal) || name.StringVal == nameLabel {
		return nil, fmt.Errorf("invalid label name %q", name.StringVal)
	}
	if _, err := p.expect(TokenTypeEquals); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenTypeQuote); err != nil {
		return nil, err
	}

	labelValue := ""
	if la := p.peek(); la != nil && la.TokenType == TokenTypeName {
		p.consume()
		labelValue = la.StringVal
	}
	if _, err := p.expect(TokenTypeQuote); err != nil {
		return nil, err
	}

	return &prometheus.Label{
		Name:  name.StringVal,
		Value: labelValue,
	}, nil
}

func (p *SeriesParser) labels() ([]*prometheus.Label, error) {
	var labels []*prometheus.Label
	seen := map[string]bool{}
	for {
		la := p.peek()
		if la == nil || la.TokenType == TokenTypeRBrace {
			return labels, nil
		}

		label, err := p.label()
		if err != nil {
			return nil, err
		}
		if seen[label.Name] {
			return nil, fmt.Errorf("duplicate label %q", label.Name)
		}
		seen[label.Name] = true
		labels = append(labels, label)

		la = p.peek()
		switch {
		case la == nil:
			return labels, nil
		case la.TokenType == TokenTypeComma:
			p.consume()
		case la.TokenType == TokenTypeRBrace:
			return labels, nil
		default:
			return nil, fmt.Errorf("unexpected token: expected , or } but got %v at %v", la, la.Pos)
		}
	}
}

func (p *SeriesParser) Parse() (*prometheus.TimeSeries, error) {
	// <metric>{<label>="<value>", ...}
	token, err := p.expect(TokenTypeName)
	if err != nil {
		return nil, err
	}
	if !validName.MatchString(token.StringVal) {
		return nil, fmt.Errorf("invalid metric name %q", token.StringVal)
	}

	labels := []*prometheus.Label{{
		Name:  nameLabel,
		Value: token.StringVal,
	}}

	if la := p.peek(); la != nil && la.TokenType == TokenTypeLBrace {
		p.consume()
		parsed, err := p.labels()
		if err != nil {
			return nil, err
		}
		labels = append(labels, parsed...)
		if _, err := p.expect(TokenTypeRBrace); err != nil {
			return nil, err
		}
	}

	if la := p.peek(); la != nil {
		return nil, fmt.Errorf("unexpected trailing %v at %v", la, la.Pos)
	}

	return &prometheus.TimeSeries{
		Labels: labels,
	}, nil
}

// ParseSeries scans and parses a series selector.
func ParseSeries(series string) (*prometheus.TimeSeries, error) {
	tokens, err := NewSeriesScanner().Scan(series)
	if err != nil {
		return nil, err
	}
	return NewSeriesParser(tokens).Parse()
}
