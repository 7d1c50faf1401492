package builder

import (
	"fmt"
	"log"
	"strconv"

	"playparse/play"
)

// NA is the play type for plays a transform does not capture.
const NA = "NA"

// Play is one row of a game after parsing. Yardlines run from 0 at the home
// goal to 100 at the away goal; Time counts seconds from kickoff.
type Play struct {
	Down          int    `json:"down"`
	ToGo          int    `json:"togo"`
	Offense       string `json:"offense"`
	Time          int    `json:"time"`
	StartYardline int    `json:"start_yardline"`
	OffScore      int    `json:"offscore"`
	DefScore      int    `json:"defscore"`
	Description   string `json:"description"`

	Type          string `json:"type"`
	Yards         int    `json:"yards"`
	EndZoneResult string `json:"end_zone_result"`

	Parsed *play.Description `json:"-"`
}

// Transform fills in the play type and yardage from the parsed description.
type Transform interface {
	Transform(t Teams, p *Play, desc *play.Description) error
}

type Parser interface {
	Parse(play string) *play.Description
}

// Teams is the matchup of one game.
type Teams struct {
	Home    string
	Away    string
	Aliases map[string]string
}

func (t Teams) Match(code string) (string, error) {
	return MatchTeam(code, t.Home, t.Away, t.Aliases)
}

// ResolveYardline converts a parsed yardline to the 0-100 scale. A team
// relative yardline is measured from that team's goal. Absolute 0 is an end
// zone; which one depends on the offense and on the end zone result.
func (t Teams) ResolveYardline(offense string, seg *play.Segment, yl play.Yardline) (int, error) {
	if !yl.Absolute() {
		side, err := t.Match(yl.Team)
		if err != nil {
			return 0, err
		}
		if side == Home {
			return yl.Number, nil
		}
		return 100 - yl.Number, nil
	}

	if yl.Number != 0 {
		return yl.Number, nil
	}
	scored := false
	if seg != nil && seg.EndZoneResult != nil {
		scored = *seg.EndZoneResult == play.Touchdown || *seg.EndZoneResult == play.Touchback
	}
	if (offense == t.Home) == scored {
		return 0, nil
	}
	return 100, nil
}

// PlayMaker builds plays from season rows and hands the parsed description
// to a Transform.
type PlayMaker struct {
	parser    Parser
	transform Transform
	aliases   map[string]string
}

func NewPlayMaker(parser Parser, transform Transform, aliases map[string]string) *PlayMaker {
	if parser == nil {
		parser = play.Default()
	}
	if transform == nil {
		transform = BasicPlayMaker{}
	}
	if aliases == nil {
		aliases = TeamAliases
	}
	return &PlayMaker{
		parser:    parser,
		transform: transform,
		aliases:   aliases,
	}
}

func atoi(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func (m *PlayMaker) MakePlay(home, away string, row Row) (*Play, error) {
	p := &Play{
		Offense:     row.Off,
		OffScore:    atoi(row.OffScore, -1),
		DefScore:    atoi(row.DefScore, -1),
		Description: row.Description,
	}
	down, errDown := strconv.Atoi(row.Down)
	togo, errToGo := strconv.Atoi(row.ToGo)
	if errDown == nil && errToGo == nil {
		p.Down, p.ToGo = down, togo
	}

	// offense is occasionally blank while defense is set
	if p.Offense == "" {
		if row.Def == away {
			p.Offense = home
		} else {
			p.Offense = away
		}
		log.Printf("repairing missing offense (%v @ %v): offense = %v", away, home, p.Offense)
	}

	minutes, errMin := strconv.Atoi(row.Min)
	seconds, errSec := strconv.Atoi(row.Sec)
	if errMin != nil || errSec != nil {
		minutes, seconds = -1, -1
	}
	p.Time = 60*(60-minutes) - seconds

	p.StartYardline = -1
	if raw, err := strconv.Atoi(row.Ydline); err == nil {
		if p.Offense == home {
			p.StartYardline = 100 - raw
		} else {
			p.StartYardline = raw
		}
	}

	p.Parsed = m.parser.Parse(row.Description)
	teams := Teams{Home: home, Away: away, Aliases: m.aliases}
	if err := m.transform.Transform(teams, p, p.Parsed); err != nil {
		return nil, fmt.Errorf("transforming %q: %w", row.Description, err)
	}
	return p, nil
}

// soleSegment returns the only non-NULL segment of a description.
func soleSegment(desc *play.Description) (*play.Segment, bool) {
	if desc == nil || desc.IsError {
		return nil, false
	}
	var found *play.Segment
	for _, seg := range desc.Segments {
		if seg.Type == play.TypeNull {
			continue
		}
		if found != nil {
			return nil, false
		}
		found = seg
	}
	return found, found != nil
}

// endYards sets the yards gained from the segment's end yardline. A segment
// without one counts as no gain.
func endYards(t Teams, p *Play, seg *play.Segment) error {
	end := p.StartYardline
	if seg.EndYardline != nil {
		var err error
		end, err = t.ResolveYardline(p.Offense, seg, *seg.EndYardline)
		if err != nil {
			return err
		}
	}
	p.Yards = end - p.StartYardline
	return nil
}

// BasicPlayMaker keeps plays with a single non-NULL segment that is a run or
// a completed pass. Everything else is NA.
type BasicPlayMaker struct{}

func (BasicPlayMaker) Transform(t Teams, p *Play, desc *play.Description) error {
	p.Type = NA
	p.EndZoneResult = NA
	seg, ok := soleSegment(desc)
	if !ok || p.StartYardline < 0 {
		return nil
	}
	if seg.EndZoneResult != nil {
		p.EndZoneResult = *seg.EndZoneResult
	}

	switch {
	case seg.Type == play.TypeRun:
	case seg.Type == play.TypePass && seg.PassComplete != nil && *seg.PassComplete:
	default:
		return nil
	}
	if err := endYards(t, p, seg); err != nil {
		return err
	}
	p.Type = string(seg.Type)
	return nil
}
