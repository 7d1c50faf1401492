package play

import (
	"fmt"
)

// State names one fragment of the play grammar.
type State int

const (
	StateNone State = iota
	StateInitial
	StateSkipToPeriod
	StateSkipToNextSegment
	StateAcquiringAnnotation
	StateSkipOuterAnnotation
	StateAcquiringTime
	StateWaitPlaySegment
	StateDeterminePlayType
	StateCheckForLateral
	StateTwoPointConversion
	StateTwoPointResult
	StateProcessFumble
	StateFumbleOutcome
	StateProcessKick
	StateKickResult
	StateProcessKickBlock
	StateProcessFieldGoal
	StateCheckForChallenge
	StateProcessRecovery
	StateGetEndYardage
	StateProcessPass
	StateProcessPenalty
	StatePenaltyDescription
	StatePenaltyResult
	StateParseComplete
	numStates
)

var stateNames = [numStates]string{
	StateNone:                "none",
	StateInitial:             "initial",
	StateSkipToPeriod:        "skip_to_period",
	StateSkipToNextSegment:   "skip_to_next_segment",
	StateAcquiringAnnotation: "acquiring_annotation",
	StateSkipOuterAnnotation: "skip_outer_annotation",
	StateAcquiringTime:       "acquiring_time",
	StateWaitPlaySegment:     "wait_play_segment",
	StateDeterminePlayType:   "determine_play_type",
	StateCheckForLateral:     "check_for_lateral",
	StateTwoPointConversion:  "two_point_conversion",
	StateTwoPointResult:      "two_point_result",
	StateProcessFumble:       "process_fumble",
	StateFumbleOutcome:       "fumble_outcome",
	StateProcessKick:         "process_kick",
	StateKickResult:          "kick_result",
	StateProcessKickBlock:    "process_kick_block",
	StateProcessFieldGoal:    "process_field_goal",
	StateCheckForChallenge:   "check_for_challenge",
	StateProcessRecovery:     "process_recovery",
	StateGetEndYardage:       "get_end_yardage",
	StateProcessPass:         "process_pass",
	StateProcessPenalty:      "process_penalty",
	StatePenaltyDescription:  "penalty_description",
	StatePenaltyResult:       "penalty_result",
	StateParseComplete:       "end_parse_complete",
}

func (s State) String() string {
	if s >= 0 && s < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// stateFn runs one grammar fragment against the cursor and returns the
// state to run next.
type stateFn func(p *parseContext, c *Cursor) (State, error)

// transitions is the closed handler table. End states have no handler.
var transitions = [numStates]stateFn{
	StateInitial:             stateInitial,
	StateSkipToPeriod:        stateSkipToPeriod,
	StateSkipToNextSegment:   stateSkipToNextSegment,
	StateAcquiringAnnotation: stateAcquiringAnnotation,
	StateSkipOuterAnnotation: stateSkipOuterAnnotation,
	StateAcquiringTime:       stateAcquiringTime,
	StateWaitPlaySegment:     stateWaitPlaySegment,
	StateDeterminePlayType:   stateDeterminePlayType,
	StateCheckForLateral:     stateCheckForLateral,
	StateTwoPointConversion:  stateTwoPointConversion,
	StateTwoPointResult:      stateTwoPointResult,
	StateProcessFumble:       stateProcessFumble,
	StateFumbleOutcome:       stateFumbleOutcome,
	StateProcessKick:         stateProcessKick,
	StateKickResult:          stateKickResult,
	StateProcessKickBlock:    stateProcessKickBlock,
	StateProcessFieldGoal:    stateProcessFieldGoal,
	StateCheckForChallenge:   stateCheckForChallenge,
	StateProcessRecovery:     stateProcessRecovery,
	StateGetEndYardage:       stateGetEndYardage,
	StateProcessPass:         stateProcessPass,
	StateProcessPenalty:      stateProcessPenalty,
	StatePenaltyDescription:  statePenaltyDescription,
	StatePenaltyResult:       statePenaltyResult,
}

// parseContext owns the description under construction. The segment being
// parsed is held separately and only appended to the description once a
// new segment starts or the parse completes.
type parseContext struct {
	desc    *Description
	current *Segment
}

func newParseContext() *parseContext {
	return &parseContext{desc: &Description{}}
}

func (p *parseContext) startSegment() {
	if p.current != nil {
		p.desc.Segments = append(p.desc.Segments, p.current)
	}
	p.current = &Segment{}
}

// finish appends the trailing segment. Reaching the end of input closes it.
// A trailing segment that never got a type is dropped when it carries no
// attributes and earlier segments exist; otherwise it is kept as NULL.
func (p *parseContext) finish() *Description {
	seg := p.current
	p.current = nil
	if seg == nil {
		return p.desc
	}
	if seg.Type == TypeUnset {
		if !seg.hasAttributes() && len(p.desc.Segments) > 0 {
			return p.desc
		}
		seg.Type = TypeNull
	}
	seg.Done = true
	p.desc.Segments = append(p.desc.Segments, seg)
	return p.desc
}

// Machine drives the state functions from an initial state until an end
// state is returned. It is immutable once built and safe for concurrent use.
type Machine struct {
	initial State
	end     [numStates]bool
	scanner *Scanner
}

// NewMachine validates the state table and returns a machine. Every state
// reachable from the table must have a handler or be an end state.
func NewMachine(initial State, endStates ...State) (*Machine, error) {
	if len(endStates) == 0 {
		return nil, ErrNoEndStates
	}
	m := &Machine{
		initial: initial,
		scanner: NewScanner(),
	}
	for _, s := range endStates {
		if s <= StateNone || s >= numStates {
			return nil, fmt.Errorf("invalid end state %v", s)
		}
		m.end[s] = true
	}
	if m.end[initial] || initial <= StateNone || initial >= numStates || transitions[initial] == nil {
		return nil, fmt.Errorf("initial state %v has no handler", initial)
	}
	for s := StateNone + 1; s < numStates; s++ {
		if transitions[s] == nil && !m.end[s] {
			return nil, fmt.Errorf("state %v has no handler and is not an end state", s)
		}
	}
	return m, nil
}

// MustMachine is like NewMachine but panics on a configuration error.
func MustMachine(initial State, endStates ...State) *Machine {
	m, err := NewMachine(initial, endStates...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMachine = MustMachine(StateInitial, StateParseComplete)

// Default returns the machine used by the package-level Parse.
func Default() *Machine {
	return defaultMachine
}

// process walks the states until an end state is reached.
func (m *Machine) process(p *parseContext, c *Cursor) error {
	state := m.initial
	for {
		next, err := transitions[state](p, c)
		if err != nil {
			return attribute(state, err)
		}
		if m.end[next] {
			return nil
		}
		if next <= StateNone || next >= numStates || transitions[next] == nil {
			return &ParseError{State: state, Msg: fmt.Sprintf("transition to unregistered state %v", next)}
		}
		state = next
	}
}

// ParseTokens parses an already tokenized play description.
func (m *Machine) ParseTokens(tokens TokenList) (*Description, error) {
	p := newParseContext()
	if err := m.process(p, NewCursor(tokens)); err != nil {
		return nil, err
	}
	return p.finish(), nil
}

// Parse parses one play description. Failures never escape: they come back
// as a description with IsError set and a single ERROR segment.
func (m *Machine) Parse(play string) *Description {
	desc, err := m.ParseTokens(m.scanner.Scan(play))
	if err != nil {
		return errorDescription(err)
	}
	return desc
}

// Parse parses one play description with the default machine.
func Parse(play string) *Description {
	return defaultMachine.Parse(play)
}
