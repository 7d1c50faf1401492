package play

// Entry, dispatch and skipping states.

func stateInitial(p *parseContext, c *Cursor) (State, error) {
	p.startSegment()
	seg := p.current

	if IsNullPlay(c) {
		seg.Type = TypeNoDescription
		seg.Done = true
		return StateParseComplete, nil
	}

	switch {
	case c.at(0) == "(":
		// usually the clock, sometimes formation notes
		c.Next()
		return StateAcquiringAnnotation, nil
	case c.at(0) == "TWO":
		c.Next()
		seg.Type = TypeTwoPoint
		return StateTwoPointConversion, nil
	case IsName(c):
		// kickoffs open with the kicker's name
		return StateWaitPlaySegment, nil
	case c.at(0) == "PENALTY" || c.at(0) == "Penalty":
		return StateWaitPlaySegment, nil
	}
	return StateSkipToPeriod, nil
}

func stateSkipToPeriod(p *parseContext, c *Cursor) (State, error) {
	if err := c.skipPast("."); err != nil {
		return StateNone, err
	}
	return StateWaitPlaySegment, nil
}

// stateSkipToNextSegment skips to the next sentence. Names are consumed
// whole so the period inside "J.Smith" does not end the sentence early.
// Some descriptions lack a final period, so running out of input completes
// the parse.
func stateSkipToNextSegment(p *parseContext, c *Cursor) (State, error) {
	for c.hasTokens() {
		if IsName(c) {
			if _, err := PopName(c); err != nil {
				return StateNone, err
			}
			continue
		}
		tok, _ := c.Next()
		if tok == "." {
			if c.Empty() {
				break
			}
			return StateWaitPlaySegment, nil
		}
	}
	return StateParseComplete, nil
}

func stateAcquiringAnnotation(p *parseContext, c *Cursor) (State, error) {
	if c.Empty() {
		return StateNone, ErrPrematureEnd
	}
	if startsWithDigit(c.at(0)) {
		return StateAcquiringTime, nil
	}
	return StateSkipOuterAnnotation, nil
}

func stateSkipOuterAnnotation(p *parseContext, c *Cursor) (State, error) {
	if err := c.skipPast(")"); err != nil {
		return StateNone, err
	}
	return StateWaitPlaySegment, nil
}

func stateAcquiringTime(p *parseContext, c *Cursor) (State, error) {
	if !IsTime(c) {
		return StateNone, errorf("expected time, got nonconforming input")
	}
	clock, err := PopTime(c)
	if err != nil {
		return StateNone, err
	}
	p.desc.Clock = &clock
	return StateWaitPlaySegment, nil
}

// stateWaitPlaySegment is the hub: it opens a new segment when needed and
// dispatches on the leading token.
func stateWaitPlaySegment(p *parseContext, c *Cursor) (State, error) {
	if c.Empty() {
		return StateParseComplete, nil
	}
	if p.current.Done {
		p.startSegment()
	}
	seg := p.current

	switch tok := c.at(0); {
	case tok == "PENALTY" || tok == "Penalty":
		c.Next()
		seg.Type = TypePenalty
		return StateProcessPenalty, nil
	case tok == "TWO":
		seg.Type = TypeTwoPoint
		return StateTwoPointConversion, nil
	case tok == "Lateral":
		return StateCheckForLateral, nil
	case tok == "fumbles":
		c.Next()
		seg.Type = TypeFumble
		return StateProcessFumble, nil
	case tok == "recovered":
		c.Next()
		seg.Type = TypeRecovery
		return StateProcessRecovery, nil
	case IsName(c):
		name, err := PopName(c)
		if err != nil {
			return StateNone, err
		}
		seg.PrimaryName = &name
		return StateDeterminePlayType, nil
	case tok == "(":
		if err := c.skipPast(")"); err != nil {
			return StateNone, err
		}
		return StateWaitPlaySegment, nil
	}
	return StateCheckForChallenge, nil
}
