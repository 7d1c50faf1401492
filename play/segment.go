package play

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type SegmentType string

const (
	TypeUnset         SegmentType = ""
	TypeRun           SegmentType = "RUN"
	TypePass          SegmentType = "PASS"
	TypeSack          SegmentType = "SACK"
	TypeFumble        SegmentType = "FUMBLE"
	TypeLateral       SegmentType = "LATERAL"
	TypeRecovery      SegmentType = "RECOVERY"
	TypeKickoff       SegmentType = "KICKOFF"
	TypePunt          SegmentType = "PUNT"
	TypeFieldGoal     SegmentType = "FG_ATTEMPT"
	TypeExtraPoint    SegmentType = "XP_ATTEMPT"
	TypePenalty       SegmentType = "PENALTY"
	TypeChallenge     SegmentType = "CHALLENGE"
	TypeReportIn      SegmentType = "REPORT_IN"
	TypeTwoPoint      SegmentType = "2PC_ATTEMPT"
	TypeNoDescription SegmentType = "NO_DESCRIPTION"
	TypeNull          SegmentType = "NULL"
	TypeError         SegmentType = "ERROR"
)

// End zone results.
const (
	Touchdown = "TOUCHDOWN"
	Touchback = "TOUCHBACK"
	Safety    = "SAFETY"
)

// Yardline is either an absolute field position (Team empty) or a number
// relative to a team's side of the field as written in the description.
// Relative yardlines are resolved by the consumer, which knows the teams.
type Yardline struct {
	Team   string `json:"team,omitempty"`
	Number int    `json:"number"`
}

var (
	Midfield = Yardline{Number: 50}
	EndZone  = Yardline{Number: 0}
)

func TeamYardline(team string, n int) Yardline {
	return Yardline{Team: team, Number: n}
}

func (y Yardline) Absolute() bool {
	return y.Team == ""
}

func (y Yardline) String() string {
	if y.Absolute() {
		return strconv.Itoa(y.Number)
	}
	return fmt.Sprintf("('%s', %d)", y.Team, y.Number)
}

func (y Yardline) MarshalJSON() ([]byte, error) {
	if y.Absolute() {
		return json.Marshal(y.Number)
	}
	type pair Yardline
	return json.Marshal(pair(y))
}

func (y *Yardline) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*y = Yardline{Number: n}
		return nil
	}
	type pair Yardline
	var p pair
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*y = Yardline(p)
	return nil
}

// Clock is the game clock read from the start of a description.
type Clock struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Segment describes one sub-event of a play. Pointer fields are nil when the
// attribute does not apply to the segment's type.
type Segment struct {
	Type     SegmentType `json:"type"`
	Done     bool        `json:"done"`
	Turnover bool        `json:"turnover"`
	NoPlay   bool        `json:"noplay"`

	PrimaryName        *string   `json:"primary_name,omitempty"`
	Yardage            *int      `json:"yardage,omitempty"`
	EndYardline        *Yardline `json:"end_yardline,omitempty"`
	PassTarget         *string   `json:"pass_target,omitempty"`
	PassComplete       *bool     `json:"pass_complete,omitempty"`
	PenaltyTeam        *string   `json:"penalty_team,omitempty"`
	PenaltyPlayer      *string   `json:"penalty_player,omitempty"`
	PenaltyDescription *string   `json:"penalty_description,omitempty"`
	PenaltyAccepted    *bool     `json:"penalty_accepted,omitempty"`
	PenaltyYards       *int      `json:"penalty_yards,omitempty"`
	PenaltyYardline    *Yardline `json:"penalty_yardline,omitempty"`
	TurnoverType       *string   `json:"turnover_type,omitempty"`
	PassIntercepted    *bool     `json:"pass_intercepted,omitempty"`
	PassInterceptor    *string   `json:"pass_interceptor,omitempty"`
	FumbleForcedBy     *string   `json:"fumble_forced_by,omitempty"`
	FumbleYardline     *Yardline `json:"fumble_yardline,omitempty"`
	RecoverTeam        *string   `json:"recover_team,omitempty"`
	RecoverPlayer      *string   `json:"recover_player,omitempty"`
	RecoverYardline    *Yardline `json:"recover_yardline,omitempty"`
	FieldGoalMade      *bool     `json:"field_goal_made,omitempty"`
	KickBlocked        *bool     `json:"kick_blocked,omitempty"`
	Returner           *string   `json:"returner,omitempty"`
	EndZoneResult      *string   `json:"end_zone_result,omitempty"`
	AttemptType        *string   `json:"attempt_type,omitempty"`
	AttemptSuccess     *bool     `json:"attempt_success,omitempty"`
	Reversed           *bool     `json:"reversed,omitempty"`
	Safety             *bool     `json:"safety,omitempty"`
	Notes              *string   `json:"notes,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

// reset clears the type and flags but keeps any attributes already set.
func (s *Segment) reset() {
	s.Type = TypeUnset
	s.Done = false
	s.Turnover = false
	s.NoPlay = false
}

// Attributes is the fixed, ordered attribute list of the export table.
var Attributes = []string{
	"type", "primary_name", "yardage", "end_yardline",
	"pass_target", "pass_complete",
	"penalty_team", "penalty_player", "penalty_description",
	"penalty_accepted", "penalty_yards", "penalty_yardline",
	"turnover", "turnover_type",
	"pass_intercepted", "pass_interceptor",
	"fumble_forced_by", "fumble_yardline",
	"recover_team", "recover_player", "recover_yardline",
	"field_goal_made", "kick_blocked", "returner",
	"end_zone_result", "attempt_type", "attempt_success",
	"reversed", "noplay", "done", "notes",
}

// Get returns the attribute stored under key. The second result is false
// when the attribute is absent, including for unknown keys and an unset type.
func (s *Segment) Get(key string) (any, bool) {
	switch key {
	case "type":
		return string(s.Type), s.Type != TypeUnset
	case "done":
		return s.Done, true
	case "turnover":
		return s.Turnover, true
	case "noplay":
		return s.NoPlay, true
	case "primary_name":
		return deref(s.PrimaryName)
	case "yardage":
		return deref(s.Yardage)
	case "end_yardline":
		return deref(s.EndYardline)
	case "pass_target":
		return deref(s.PassTarget)
	case "pass_complete":
		return deref(s.PassComplete)
	case "penalty_team":
		return deref(s.PenaltyTeam)
	case "penalty_player":
		return deref(s.PenaltyPlayer)
	case "penalty_description":
		return deref(s.PenaltyDescription)
	case "penalty_accepted":
		return deref(s.PenaltyAccepted)
	case "penalty_yards":
		return deref(s.PenaltyYards)
	case "penalty_yardline":
		return deref(s.PenaltyYardline)
	case "turnover_type":
		return deref(s.TurnoverType)
	case "pass_intercepted":
		return deref(s.PassIntercepted)
	case "pass_interceptor":
		return deref(s.PassInterceptor)
	case "fumble_forced_by":
		return deref(s.FumbleForcedBy)
	case "fumble_yardline":
		return deref(s.FumbleYardline)
	case "recover_team":
		return deref(s.RecoverTeam)
	case "recover_player":
		return deref(s.RecoverPlayer)
	case "recover_yardline":
		return deref(s.RecoverYardline)
	case "field_goal_made":
		return deref(s.FieldGoalMade)
	case "kick_blocked":
		return deref(s.KickBlocked)
	case "returner":
		return deref(s.Returner)
	case "end_zone_result":
		return deref(s.EndZoneResult)
	case "attempt_type":
		return deref(s.AttemptType)
	case "attempt_success":
		return deref(s.AttemptSuccess)
	case "reversed":
		return deref(s.Reversed)
	case "safety":
		return deref(s.Safety)
	case "notes":
		return deref(s.Notes)
	}
	return nil, false
}

// hasAttributes reports whether any optional attribute is set.
func (s *Segment) hasAttributes() bool {
	if s.Safety != nil {
		return true
	}
	for _, key := range Attributes {
		switch key {
		case "type", "done", "turnover", "noplay":
			continue
		}
		if _, ok := s.Get(key); ok {
			return true
		}
	}
	return s.Turnover || s.NoPlay
}

func deref[T any](p *T) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

// FormatValue renders an attribute value the way the export table does.
func FormatValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}

// String renders the present attributes as key=value pairs.
func (s *Segment) String() string {
	var parts []string
	for _, key := range Attributes {
		if v, ok := s.Get(key); ok {
			parts = append(parts, key+"="+FormatValue(v))
		}
	}
	if s.Safety != nil {
		parts = append(parts, "safety="+FormatValue(*s.Safety))
	}
	return strings.Join(parts, ";")
}

// Description is the parse result for one play.
type Description struct {
	Segments []*Segment `json:"segments"`
	IsError  bool       `json:"is_error"`
	Clock    *Clock     `json:"clock,omitempty"`
}

// Err returns the failure recorded in an error description.
func (d *Description) Err() string {
	if !d.IsError || len(d.Segments) == 0 || d.Segments[0].Notes == nil {
		return ""
	}
	return *d.Segments[0].Notes
}

func (d *Description) String() string {
	lines := make([]string, 0, len(d.Segments))
	for _, seg := range d.Segments {
		lines = append(lines, seg.String())
	}
	return strings.Join(lines, "\n")
}

func errorDescription(err error) *Description {
	return &Description{
		IsError: true,
		Segments: []*Segment{{
			Type:  TypeError,
			Done:  true,
			Notes: ptr(fmt.Sprintf("EXCEPTION: %v", err)),
		}},
	}
}
