package play

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// stateDeterminePlayType picks the segment type from the word following
// the primary name.
func stateDeterminePlayType(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	// parentheticals after the name are ignored
	if c.at(0) == "(" {
		for c.hasTokens() {
			if tok, _ := c.Next(); tok == ")" {
				break
			}
		}
	}

	if c.Empty() {
		seg.reset()
		seg.Type = TypeNull
		seg.Done = true
		return StateSkipToNextSegment, nil
	}

	tok, _ := c.Next()
	switch {
	case tok == "and":
		// two players reporting in as eligible
		if !IsName(c) {
			return StateNone, errorf("failed to get name of second reporting eligible receiver where expected")
		}
		second, err := PopName(c)
		if err != nil {
			return StateNone, err
		}
		seg.PrimaryName = ptr(*seg.PrimaryName + ";" + second)
		if err := c.expect("reported"); err != nil {
			return StateNone, err
		}
		seg.Type = TypeReportIn
		seg.Done = true
		return StateSkipToNextSegment, nil
	case strings.HasPrefix(tok, "report"):
		seg.Type = TypeReportIn
		seg.Done = true
		return StateSkipToNextSegment, nil
	case tok == "fumbles":
		seg.Type = TypeFumble
		return StateProcessFumble, nil
	case tok == "muffs" && c.at(0) == "catch":
		seg.Type = TypeFumble
		return StateProcessFumble, nil
	case tok == "kicks":
		seg.Type = TypeKickoff
		return StateProcessKick, nil
	case tok == "punts":
		seg.Type = TypePunt
		return StateProcessKick, nil
	case tok == "punt":
		// "punt is BLOCKED"
		seg.Type = TypePunt
		return StateProcessKickBlock, nil
	case strings.HasPrefix(tok, "sacked"):
		seg.Type = TypeSack
		return StateGetEndYardage, nil
	case strings.HasPrefix(tok, "pass"):
		seg.Type = TypePass
		return StateProcessPass, nil
	case tok == "spiked":
		seg.Type = TypePass
		seg.PassComplete = ptr(false)
		seg.Notes = ptr("SPIKED")
		seg.Done = true
		return StateSkipToNextSegment, nil
	case startsWithDigit(tok) && c.at(0) == "yard" && c.at(1) == "field" && c.at(2) == "goal":
		yards, err := strconv.Atoi(tok)
		if err != nil {
			return StateNone, errorf("invalid field goal distance %v", tok)
		}
		seg.Type = TypeFieldGoal
		seg.Yardage = &yards
		if err := c.skip(3); err != nil {
			return StateNone, err
		}
		return StateProcessFieldGoal, nil
	case tok == "extra" && c.at(0) == "point":
		seg.Type = TypeExtraPoint
		c.Next()
		return StateProcessFieldGoal, nil
	case tok == "to":
		// no run direction given; let the yardage grammar see the "to"
		seg.Type = TypeRun
		c.Push(tok)
		return StateGetEndYardage, nil
	case strings.ToLower(tok) == "touchback":
		seg.Type = TypeRun
		seg.EndZoneResult = ptr(Touchback)
		seg.Done = true
		return StateSkipToNextSegment, nil
	}

	seg.Type = TypeRun
	return StateGetEndYardage, nil
}

// stateGetEndYardage finds where the segment ended: "at|to <yardline>" or
// a scoring keyword. A RUN with no end yardage before the input runs out
// is commentary and becomes NULL; other types keep their type.
func stateGetEndYardage(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

scan:
	for {
		if c.Empty() {
			if seg.Type == TypeRun {
				seg.Type = TypeNull
			}
			break
		}
		tok, _ := c.Next()
		if tok == "at" || tok == "to" {
			if IsYardline(c) {
				yl, err := PopYardline(c)
				if err != nil {
					return StateNone, err
				}
				seg.EndYardline = &yl
				break scan
			}
			continue
		}
		switch strings.ToLower(tok) {
		case "safety":
			seg.EndYardline = ptr(EndZone)
			seg.EndZoneResult = ptr(Safety)
			break scan
		case "touchdown":
			seg.EndYardline = ptr(EndZone)
			seg.EndZoneResult = ptr(Touchdown)
			break scan
		case "touchback":
			seg.EndYardline = ptr(EndZone)
			seg.EndZoneResult = ptr(Touchback)
			break scan
		}
	}

	seg.Done = true
	return StateSkipToNextSegment, nil
}

func passTargetError(c *Cursor) error {
	return errorf("expected name of pass target, got %v", c.window(3))
}

func stateProcessPass(p *parseContext, c *Cursor) (State, error) {
	seg := p.current

	for {
		tok, err := c.Next()
		if err != nil {
			return StateNone, err
		}

		switch tok {
		case "incomplete":
			// "pass incomplete [direction] [to <target>]"
			seg.PassComplete = ptr(false)
			seg.PassIntercepted = ptr(false)
			if c.at(0) == "to" {
				c.Next()
				if !IsName(c) {
					return StateNone, passTargetError(c)
				}
				target, err := PopName(c)
				if err != nil {
					return StateNone, err
				}
				seg.PassTarget = &target
			}
			seg.Done = true
			return StateSkipToNextSegment, nil

		case "to":
			// "pass [direction] to <target> to <yardline>"
			seg.PassComplete = ptr(true)
			if !IsName(c) {
				return StateNone, passTargetError(c)
			}
			target, err := PopName(c)
			if err != nil {
				return StateNone, err
			}
			seg.PassTarget = &target
			return StateGetEndYardage, nil

		case "intended":
			// "pass intended for <target> INTERCEPTED by <interceptor> at <yardline>"
			markInterception(seg)
			tok, err := c.Next()
			if err != nil {
				return StateNone, err
			}
			if tok != "for" || !IsName(c) {
				return StateNone, errorf("expected but did not find target")
			}
			target, err := PopName(c)
			if err != nil {
				return StateNone, err
			}
			seg.PassTarget = &target
			if err := c.skipPast("by"); err != nil {
				return StateNone, err
			}
			if !IsName(c) {
				return StateNone, errorf("expected but did not find interceptor")
			}
			interceptor, err := PopName(c)
			if err != nil {
				return StateNone, err
			}
			seg.PassInterceptor = &interceptor
			return StateGetEndYardage, nil

		case "intercepted":
			// "pass INTERCEPTED by <interceptor> at <yardline>"
			markInterception(seg)
			tok, err := c.Next()
			if err != nil {
				return StateNone, err
			}
			if tok == "by" && IsName(c) {
				interceptor, err := PopName(c)
				if err != nil {
					return StateNone, err
				}
				seg.PassInterceptor = &interceptor
			}
			return StateGetEndYardage, nil
		}
	}
}

func markInterception(seg *Segment) {
	seg.Turnover = true
	seg.TurnoverType = ptr("INTERCEPTION")
	seg.PassIntercepted = ptr(true)
}

// stateCheckForLateral accepts only "Lateral to <name> to <yardline>".
// Anything else leaves a NULL segment rather than failing the play.
func stateCheckForLateral(p *parseContext, c *Cursor) (State, error) {
	seg := p.current
	seg.Type = TypeNull

	err := func() error {
		if err := c.expect("Lateral", "to"); err != nil {
			return err
		}
		if !IsName(c) {
			return nil
		}
		name, err := PopName(c)
		if err != nil {
			return err
		}
		tok, err := c.Next()
		if err != nil {
			return err
		}
		if tok != "to" || !IsYardline(c) {
			return nil
		}
		yl, err := PopYardline(c)
		if err != nil {
			return err
		}
		seg.Type = TypeLateral
		seg.PrimaryName = &name
		seg.EndYardline = &yl
		seg.Done = true
		return nil
	}()
	if errors.Is(err, ErrPrematureEnd) {
		return StateNone, err
	}
	return StateSkipToNextSegment, nil
}

var (
	challengePlayWas = regexp.MustCompile(`^.*and the play was (upheld|reversed)`)
	challengeBy      = regexp.MustCompile(`^.*by ([A-Z]{2,3}|Review Assistant) and (upheld|reversed)`)
)

// stateCheckForChallenge is the fallback for sentences that do not start
// with a recognized token. Only well-formed challenge sentences are kept:
//
//	... challenged ... and the play was upheld|reversed
//	... challenged by <TEAM|Review Assistant> and upheld|reversed
func stateCheckForChallenge(p *parseContext, c *Cursor) (State, error) {
	seg := p.current
	seg.Type = TypeNull
	seg.Done = true

	for c.hasTokens() && c.at(0) != "challenged" {
		if c.at(0) == "." {
			return StateSkipToNextSegment, nil
		}
		c.Next()
	}
	if c.Empty() {
		return StateSkipToNextSegment, nil
	}

	var words []string
	for c.hasTokens() && c.at(0) != "." {
		tok, _ := c.Next()
		words = append(words, tok)
	}
	sentence := strings.Join(words, " ")
	if !challengePlayWas.MatchString(sentence) && !challengeBy.MatchString(sentence) {
		return StateSkipToNextSegment, nil
	}

	seg.Type = TypeChallenge
	switch words[len(words)-1] {
	case "upheld":
		seg.Reversed = ptr(false)
	case "reversed":
		seg.Reversed = ptr(true)
	default:
		return StateNone, errorf("found challenge but unable to determine if upheld")
	}
	return StateSkipToNextSegment, nil
}
