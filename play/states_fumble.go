package play

// stateProcessFumble reads the optional parenthetical after "FUMBLES":
// the aborted-snap marker, the team, or the player(s) forcing the fumble.
func stateProcessFumble(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	if c.at(0) != "(" {
		return StateFumbleOutcome, nil
	}
	c.Next()

	switch c.at(0) {
	case "aborted":
		seg.FumbleForcedBy = ptr("ABORTED_SNAP")
		return StateFumbleOutcome, c.skip(2)
	case "team":
		seg.FumbleForcedBy = ptr("TEAM")
		return StateFumbleOutcome, c.skip(2)
	}

	for c.at(0) != ")" {
		if !IsName(c) {
			return StateNone, errorf("failed to get name of player forcing fumble where expected")
		}
		name, err := PopName(c)
		if err != nil {
			return StateNone, err
		}
		if seg.FumbleForcedBy == nil {
			seg.FumbleForcedBy = &name
		} else {
			seg.FumbleForcedBy = ptr(*seg.FumbleForcedBy + ";" + name)
		}
	}
	c.Next()
	return StateFumbleOutcome, nil
}

// stateFumbleOutcome skips to one of the fumble endings:
//
//	recovered by <TEAM>[-<name>] at <yardline>
//	and recovers at <yardline>
//	ball out of bounds at <yardline> | in end zone touchback|safety
//	declared dead at <yardline>
//
// "at <yardline>" before the ending is where the ball came loose.
func stateFumbleOutcome(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	for done := false; !done; {
		tok, err := c.Next()
		if err != nil {
			return StateNone, err
		}

		switch {
		case tok == "touched" && c.at(0) == "at":
			continue
		case tok == "at":
			if !IsYardline(c) {
				return StateNone, errorf("failed to get fumble yardline where expected")
			}
			yl, err := PopYardline(c)
			if err != nil {
				return StateNone, err
			}
			seg.FumbleYardline = &yl
		case tok == "recovered":
			if err := fumbleRecoveredBy(seg, c); err != nil {
				return StateNone, err
			}
			done = true
		case tok == "and" && c.at(0) == "recovers":
			if err := c.expect("recovers", "at"); err != nil {
				return StateNone, err
			}
			if !IsYardline(c) {
				return StateNone, errorf("did not obtain expected recovery yardline")
			}
			yl, err := PopYardline(c)
			if err != nil {
				return StateNone, err
			}
			seg.RecoverYardline = &yl
			seg.Turnover = false
			// the fumbling player kept the ball
			seg.RecoverTeam = ptr("LAST_TEAM")
			if seg.PrimaryName != nil {
				seg.RecoverPlayer = ptr(*seg.PrimaryName)
			} else {
				seg.RecoverPlayer = ptr("LAST_PRIMARY")
			}
			done = true
		case tok == "ball" && c.at(0) == "out":
			if err := fumbleOutOfBounds(seg, c); err != nil {
				return StateNone, err
			}
			done = true
		case tok == "declared":
			if err := c.expect("dead", "at"); err != nil {
				return StateNone, err
			}
			if !IsYardline(c) {
				return StateNone, errorf("fumble play declared dead without ending yardline")
			}
			yl, err := PopYardline(c)
			if err != nil {
				return StateNone, err
			}
			seg.EndYardline = &yl
			seg.Turnover = false
			done = true
		}
	}

	seg.Done = true
	return StateSkipToNextSegment, nil
}

func fumbleRecoveredBy(seg *Segment, c *Cursor) error {
	// "by"
	if _, err := c.Next(); err != nil {
		return err
	}
	switch {
	case IsTeamAndName(c):
		team, _ := c.Next()
		c.Next()
		player, err := PopName(c)
		if err != nil {
			return err
		}
		seg.RecoverTeam = &team
		seg.RecoverPlayer = &player
	case IsTeam(c):
		team, _ := c.Next()
		seg.RecoverTeam = &team
		seg.RecoverPlayer = ptr("TEAM")
	default:
		return errorf("expected (team and name) or (team), got %v", c.window(5))
	}

	if err := c.expect("at"); err != nil {
		return err
	}
	if !IsYardline(c) {
		return errorf("did not obtain expected recovery yardline")
	}
	yl, err := PopYardline(c)
	if err != nil {
		return err
	}
	seg.RecoverYardline = &yl
	return nil
}

func fumbleOutOfBounds(seg *Segment, c *Cursor) error {
	if err := c.expect("out", "of", "bounds"); err != nil {
		return err
	}
	seg.Turnover = false
	seg.Notes = ptr("BALL_OB")

	tok, err := c.Next()
	if err != nil {
		return err
	}
	switch tok {
	case "at":
		if !IsYardline(c) {
			return errorf("in fumble, ball out of bounds but no yardline specified")
		}
		yl, err := PopYardline(c)
		if err != nil {
			return err
		}
		seg.EndYardline = &yl
	case "in":
		if err := c.expect("end", "zone"); err != nil {
			return err
		}
		tok, err := c.Next()
		if err != nil {
			return err
		}
		switch tok {
		case "touchback":
			seg.EndZoneResult = ptr(Touchback)
		case "safety":
			seg.EndZoneResult = ptr(Safety)
		default:
			return errorf("fumbled out of bounds in end zone; expected touchback or safety, got %v", tok)
		}
	}
	return nil
}
