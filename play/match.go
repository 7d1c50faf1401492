package play

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	firstInitial = regexp.MustCompile(`^[A-Z][a-z]{0,2}$`)
	lastName     = regexp.MustCompile(`^[A-Z][a-z']`)
	teamCode     = regexp.MustCompile(`^[A-Z]{2,3}$`)
	zeroTo99     = regexp.MustCompile(`^\d\d?$`)
	twoDigits    = regexp.MustCompile(`^\d\d$`)
	digits       = regexp.MustCompile(`^\d+$`)
)

func isDigits(tok string) bool {
	return digits.MatchString(tok)
}

func startsWithDigit(tok string) bool {
	return tok != "" && tok[0] >= '0' && tok[0] <= '9'
}

func isBasicName(c *Cursor) bool {
	return firstInitial.MatchString(c.at(0)) &&
		c.at(1) == "." &&
		lastName.MatchString(c.at(2))
}

// IsName reports whether a player name starts at the cursor. The exception
// table is consulted before the "<initial> . <surname>" pattern.
func IsName(c *Cursor) bool {
	if _, _, ok := nameException(c); ok {
		return true
	}
	return isBasicName(c)
}

// PopName consumes a player name and returns its canonical form, e.g.
// "J.Smith", "A.Randle_El" or "J.Smith-_Jones".
func PopName(c *Cursor) (string, error) {
	if k, name, ok := nameException(c); ok {
		return name, c.skip(k)
	}
	if !isBasicName(c) {
		return "", errorf("attempt to pop name where no name found")
	}

	sb := strings.Builder{}
	for _, tok := range c.window(3) {
		sb.WriteString(tok)
	}
	if err := c.skip(3); err != nil {
		return "", err
	}

	// hyphenated and multi-word surnames
	for c.hasTokens() {
		tok := c.at(0)
		if penaltyWords[tok] {
			break
		}
		if tok == "-" {
			sb.WriteString(tok)
		} else if lastName.MatchString(tok) {
			sb.WriteString("_")
			sb.WriteString(tok)
		} else {
			break
		}
		c.index = c.index + 1
	}
	return sb.String(), nil
}

// IsTeam reports whether the front token is a team code.
func IsTeam(c *Cursor) bool {
	return teamCode.MatchString(c.at(0))
}

// IsTeamAndName matches "<TEAM> <any> <name>", e.g. "SEA - J . Smith".
func IsTeamAndName(c *Cursor) bool {
	if !IsTeam(c) || c.Len() < 3 {
		return false
	}
	return IsName(NewCursor(c.Remaining()[2:]))
}

// IsYardline matches "50", "<TEAM> <0-99>" or "<TEAM> - <0-99>".
func IsYardline(c *Cursor) bool {
	if c.at(0) == "50" {
		return true
	}
	if !IsTeam(c) {
		return false
	}
	return zeroTo99.MatchString(c.at(1)) ||
		(c.at(1) == "-" && zeroTo99.MatchString(c.at(2)))
}

// PopYardline consumes a yardline. Team-relative yardlines are returned
// unresolved; "<TEAM> - <n>" yields a negative number.
func PopYardline(c *Cursor) (Yardline, error) {
	if c.at(0) == "50" {
		return Midfield, c.skip(1)
	}
	if !IsYardline(c) {
		return Yardline{}, errorf("unable to pop yardline")
	}
	team := c.at(0)
	if c.at(1) != "-" {
		n, _ := strconv.Atoi(c.at(1))
		return TeamYardline(team, n), c.skip(2)
	}
	n, _ := strconv.Atoi(c.at(2))
	return TeamYardline(team, -n), c.skip(3)
}

func isTimeGE1Min(c *Cursor) bool {
	return zeroTo99.MatchString(c.at(0)) &&
		c.at(1) == ":" &&
		twoDigits.MatchString(c.at(2)) &&
		c.at(3) == ")"
}

func isTimeLT1Min(c *Cursor) bool {
	return c.at(0) == ":" &&
		twoDigits.MatchString(c.at(1)) &&
		c.at(2) == ")"
}

// IsTime matches a game clock closed by a parenthesis: "12 : 34 )" or ": 09 )".
func IsTime(c *Cursor) bool {
	return isTimeGE1Min(c) || isTimeLT1Min(c)
}

// PopTime consumes a game clock including the closing parenthesis.
func PopTime(c *Cursor) (Clock, error) {
	switch {
	case isTimeGE1Min(c):
		minutes, _ := strconv.Atoi(c.at(0))
		seconds, _ := strconv.Atoi(c.at(2))
		return Clock{Minutes: minutes, Seconds: seconds}, c.skip(4)
	case isTimeLT1Min(c):
		seconds, _ := strconv.Atoi(c.at(1))
		return Clock{Minutes: 0, Seconds: seconds}, c.skip(3)
	}
	return Clock{}, errorf("attempt to pop time where no time found")
}

// IsNullPlay reports whether the remaining text carries no usable
// description: blank, an in-progress review marker, or a stray HTML fragment.
func IsNullPlay(c *Cursor) bool {
	rest := c.Remaining()
	if strings.Join(rest, "") == "" {
		return true
	}
	text := strings.Join(rest, " ")
	return strings.Contains(text, "*** play under review ***") ||
		strings.Contains(text, "align=center")
}
