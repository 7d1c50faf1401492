package play

// Keywords are folded to lower case by the scanner. Every other token keeps
// its original case, since case separates names, team codes and boilerplate.
var Keywords = map[string]bool{
	"touchdown":   true,
	"safety":      true,
	"touchback":   true,
	"fumble":      true,
	"fumbles":     true,
	"muffs":       true,
	"recovered":   true,
	"intercepted": true,
	"aborted":     true,
	"challenged":  true,
	"upheld":      true,
	"reversed":    true,
	"end":         true,
	"zone":        true,
	"team":        true,
}

// TokenList is the flat output of the scanner. Tokens carry no type; they
// are classified by the recognition helpers relative to a cursor position.
type TokenList []string

func (in TokenList) at(index int) string {
	if index >= 0 && index < len(in) {
		return in[index]
	}
	return ""
}
