package play

import (
	"strconv"
	"strings"
)

// stateProcessKick finds "<n> yards" after "kicks" or "punts".
func stateProcessKick(p *parseContext, c *Cursor) (State, error) {
	for !(isDigits(c.at(0)) && strings.HasPrefix(c.at(1), "yard")) {
		if _, err := c.Next(); err != nil {
			return StateNone, err
		}
	}
	tok, _ := c.Next()
	yards, err := strconv.Atoi(tok)
	if err != nil {
		return StateNone, errorf("invalid kick distance %v", tok)
	}
	p.current.Yardage = &yards
	c.Next()
	return StateKickResult, nil
}

// stateKickResult reads up to the end of the kick: the sentence end, a
// fair catch, a touchback, a downed ball or the ball going out of bounds.
// Names without a preceding keyword are skipped.
func stateKickResult(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	for {
		if IsName(c) {
			if _, err := PopName(c); err != nil {
				return StateNone, err
			}
			continue
		}
		tok, err := c.Next()
		if err != nil {
			return StateNone, err
		}

		switch {
		case tok == ".":
			seg.Done = true
			return StateWaitPlaySegment, nil
		case tok == "fair":
			if err := c.expect("catch", "by"); err != nil {
				return StateNone, err
			}
			if !IsName(c) {
				return StateNone, errorf("fair catch without returner")
			}
			returner, err := PopName(c)
			if err != nil {
				return StateNone, err
			}
			seg.Returner = &returner
			seg.Done = true
			return StateSkipToNextSegment, nil
		case strings.ToLower(tok) == "touchback":
			seg.EndZoneResult = ptr(Touchback)
			seg.Done = true
			return StateSkipToNextSegment, nil
		case tok == "downed" || tok == "out":
			seg.Done = true
			return StateSkipToNextSegment, nil
		}
	}
}

// stateProcessKickBlock follows a blocked punt or kick to its outcome.
func stateProcessKickBlock(p *parseContext, c *Cursor) (State, error) {
	seg := p.current
	seg.KickBlocked = ptr(true)

	for {
		if IsName(c) {
			if _, err := PopName(c); err != nil {
				return StateNone, err
			}
			continue
		}
		tok, err := c.Next()
		if err != nil {
			return StateNone, err
		}

		switch {
		case strings.ToLower(tok) == "recovered":
			return StateProcessRecovery, nil
		case tok == "ball":
			// "ball out of bounds at <yardline>"
			return StateGetEndYardage, nil
		case tok == "declared":
			// "declared dead in end zone"
			seg.Safety = ptr(true)
			seg.Done = true
			return StateSkipToNextSegment, nil
		case tok == ".":
			seg.Done = true
			return StateWaitPlaySegment, nil
		}
	}
}

// stateProcessFieldGoal reads "is GOOD|NO GOOD|BLOCKED|Aborted" after a
// field goal or extra point.
func stateProcessFieldGoal(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	if err := c.expect("is"); err != nil {
		return StateNone, err
	}
	tok, err := c.Next()
	if err != nil {
		return StateNone, err
	}

	switch tok = strings.ToLower(tok); {
	case tok == "good":
		seg.FieldGoalMade = ptr(true)
		seg.Done = true
		return StateSkipToNextSegment, nil
	case tok == "no" && strings.ToLower(c.at(0)) == "good":
		seg.FieldGoalMade = ptr(false)
		seg.Done = true
		return StateSkipToNextSegment, nil
	case tok == "blocked":
		seg.FieldGoalMade = ptr(false)
		return StateProcessKickBlock, nil
	case tok == "aborted":
		// left open: the next sentence describes what happened to the snap
		seg.FieldGoalMade = ptr(false)
		return StateSkipToNextSegment, nil
	}
	return StateNone, errorf("unrecognized field goal result %v", tok)
}

// stateProcessRecovery reads "by <TEAM>-<name> [at <yardline>]" after
// "recovered". A recovery without a team and player is commentary.
func stateProcessRecovery(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	tok, err := c.Next()
	if err != nil {
		return StateNone, err
	}
	if tok != "by" || !IsTeamAndName(c) {
		seg.reset()
		seg.Type = TypeNull
		seg.Done = true
		return StateSkipToNextSegment, nil
	}
	team, _ := c.Next()
	c.Next()
	player, err := PopName(c)
	if err != nil {
		return StateNone, err
	}
	seg.RecoverTeam = &team
	seg.RecoverPlayer = &player
	seg.Done = true

	// onside kick recoveries often have no yardline
	tok, err = c.Next()
	if err != nil || tok == "." {
		return StateWaitPlaySegment, nil
	}
	if tok == "at" && IsYardline(c) {
		yl, err := PopYardline(c)
		if err != nil {
			return StateNone, err
		}
		seg.RecoverYardline = &yl
	}
	for c.hasTokens() {
		if tok, _ := c.Next(); tok == "." {
			break
		}
	}
	return StateWaitPlaySegment, nil
}
