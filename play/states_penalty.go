package play

import (
	"strconv"
	"strings"
)

// stateProcessPenalty reads "on <TEAM>-<name>" or "on <TEAM>" after
// "PENALTY". Any other sentence starting with "Penalty" is commentary.
func stateProcessPenalty(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	tok, err := c.Next()
	if err != nil {
		return StateNone, err
	}

	switch {
	case tok == "on" && IsTeamAndName(c):
		team, _ := c.Next()
		c.Next()
		player, err := PopName(c)
		if err != nil {
			return StateNone, err
		}
		seg.PenaltyTeam = &team
		seg.PenaltyPlayer = &player
	case tok == "on" && IsTeam(c):
		team, _ := c.Next()
		seg.PenaltyTeam = &team
		seg.PenaltyPlayer = ptr("NA")
	default:
		seg.Type = TypeNull
		seg.Done = true
		return StateSkipToNextSegment, nil
	}
	return StatePenaltyDescription, nil
}

func atPenaltySentinel(c *Cursor) bool {
	switch c.at(0) {
	case "declined", "offsetting", "superseded":
		return true
	}
	return isDigits(c.at(0)) && strings.HasPrefix(c.at(1), "yard")
}

// statePenaltyDescription collects the free-text penalty name up to
// "<n> yards", "declined", "offsetting" or "superseded".
func statePenaltyDescription(p *parseContext, c *Cursor) (State, error) {
	var words []string
	for !atPenaltySentinel(c) {
		tok, err := c.Next()
		if err != nil {
			return StateNone, err
		}
		words = append(words, tok)
	}
	p.current.PenaltyDescription = ptr(strings.Join(words, " "))
	return StatePenaltyResult, nil
}

// statePenaltyResult records whether the penalty was accepted and, if so,
// the yards and where it was enforced.
func statePenaltyResult(p *parseContext, c *Cursor) (State, error) {
	seg := p.current
	seg.Done = true

	tok, err := c.Next()
	if err != nil {
		return StateNone, err
	}

	switch tok {
	case "declined":
		seg.PenaltyAccepted = ptr(false)
		return StateSkipToNextSegment, nil
	case "superseded":
		seg.PenaltyAccepted = ptr(false)
		seg.Notes = ptr("SUPERSEDED")
		return StateSkipToNextSegment, nil
	case "offsetting":
		seg.PenaltyAccepted = ptr(false)
		seg.NoPlay = true
		seg.Notes = ptr("OFFSET")
		return StateSkipToNextSegment, nil
	}

	yards, err := strconv.Atoi(tok)
	if err != nil {
		return StateNone, errorf("invalid penalty yardage %v", tok)
	}
	seg.PenaltyAccepted = ptr(true)
	seg.PenaltyYards = &yards

	// "yards enforced"
	if err := c.skip(2); err != nil {
		return StateNone, err
	}
	tok, err = c.Next()
	if err != nil {
		return StateNone, err
	}
	switch {
	case tok == "at" && IsYardline(c):
		yl, err := PopYardline(c)
		if err != nil {
			return StateNone, err
		}
		seg.PenaltyYardline = &yl
	case tok == "between":
		if err := c.expect("downs"); err != nil {
			return StateNone, err
		}
		seg.Notes = ptr("ENFORCED_BETWEEN_DOWNS")
	}

	if c.Empty() {
		return StateParseComplete, nil
	}
	tok, _ = c.Next()
	switch {
	case tok == ".":
		return StateWaitPlaySegment, nil
	case tok == "-" && c.at(0) == "No":
		// "- No Play"
		c.Next()
		seg.NoPlay = true
	}
	return StateSkipToNextSegment, nil
}
