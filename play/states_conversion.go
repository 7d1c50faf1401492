package play

// stateTwoPointConversion reads the attempt following the
// "TWO POINT CONVERSION ATTEMPT." banner:
//
//	<name> rushes ... .
//	<name> pass [to <name> is] complete|incomplete ... .
func stateTwoPointConversion(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	if err := c.skipPast("."); err != nil {
		return StateNone, err
	}
	if !IsName(c) {
		return StateNone, errorf("expected but did not find name in two point conversion attempt")
	}
	name, err := PopName(c)
	if err != nil {
		return StateNone, err
	}
	seg.PrimaryName = &name

	tok, err := c.Next()
	if err != nil {
		return StateNone, err
	}
	switch tok {
	case "rushes":
		seg.AttemptType = ptr("RUN")
	case "pass":
		seg.AttemptType = ptr("PASS")
		tok, err := c.Next()
		if err != nil {
			return StateNone, err
		}
		if tok == "to" {
			if !IsName(c) {
				return StateNone, errorf("expected but did not find receiver in two point conversion attempt")
			}
			target, err := PopName(c)
			if err != nil {
				return StateNone, err
			}
			seg.PassTarget = &target
			// "is"
			c.Next()
		}
		tok, err = c.Next()
		if err != nil {
			return StateNone, err
		}
		switch tok {
		case "complete":
			seg.PassComplete = ptr(true)
		case "incomplete":
			seg.PassComplete = ptr(false)
		default:
			return StateNone, errorf("expected \"complete\" or \"incomplete\", got %v", tok)
		}
	}
	return StateTwoPointResult, nil
}

// stateTwoPointResult reads "ATTEMPT SUCCEEDS|FAILS" in the next sentence.
func stateTwoPointResult(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	if err := c.skipPast("."); err != nil {
		return StateNone, err
	}
	if err := c.expect("ATTEMPT"); err != nil {
		return StateNone, err
	}
	tok, err := c.Next()
	if err != nil {
		return StateNone, err
	}
	switch tok {
	case "SUCCEEDS":
		seg.AttemptSuccess = ptr(true)
	case "FAILS":
		seg.AttemptSuccess = ptr(false)
	default:
		return StateNone, errorf("expected \"SUCCEEDS\" or \"FAILS\", got %v", tok)
	}
	seg.Done = true
	return StateSkipToNextSegment, nil
}
