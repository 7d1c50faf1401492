package builder

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const TieGame = "TIE_GAME"

// Row is one line of a season file.
type Row struct {
	GameID      string
	Quarter     string
	Min         string
	Sec         string
	Off         string
	Def         string
	Down        string
	ToGo        string
	Ydline      string
	Description string
	OffScore    string
	DefScore    string
}

var rowColumns = []string{
	"gameid", "qtr", "min", "sec", "off", "def", "down",
	"togo", "ydline", "description", "offscore", "defscore",
}

func rowFromRecord(index map[string]int, record []string) Row {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	return Row{
		GameID:      get("gameid"),
		Quarter:     get("qtr"),
		Min:         get("min"),
		Sec:         get("sec"),
		Off:         get("off"),
		Def:         get("def"),
		Down:        get("down"),
		ToGo:        get("togo"),
		Ydline:      get("ydline"),
		Description: get("description"),
		OffScore:    get("offscore"),
		DefScore:    get("defscore"),
	}
}

// ParseGameID splits an id of the form YYYYMMDD_AWAY@HOME.
func ParseGameID(id string) (date int, home, away string, err error) {
	dateStr, teams, ok := strings.Cut(id, "_")
	if !ok {
		return 0, "", "", fmt.Errorf("invalid game id %q", id)
	}
	away, home, ok = strings.Cut(teams, "@")
	if !ok || away == "" || home == "" {
		return 0, "", "", fmt.Errorf("invalid game id %q", id)
	}
	date, err = strconv.Atoi(dateStr)
	if err != nil || len(dateStr) != 8 {
		return 0, "", "", fmt.Errorf("invalid date in game id %q", id)
	}
	return date, home, away, nil
}

type Game struct {
	ID         string  `json:"id"`
	Date       int     `json:"date"`
	Home       string  `json:"home"`
	Away       string  `json:"away"`
	HomePoints int     `json:"home_points"`
	AwayPoints int     `json:"away_points"`
	Winner     string  `json:"winner,omitempty"`
	Plays      []*Play `json:"plays"`
}

func NewGame(id string) (*Game, error) {
	date, home, away, err := ParseGameID(id)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:   id,
		Date: date,
		Home: home,
		Away: away,
	}, nil
}

// AddPlay appends a play. The running score is taken from the play when its
// score columns were readable.
func (g *Game) AddPlay(p *Play) {
	if p.OffScore >= 0 && p.DefScore >= 0 {
		home, away := p.OffScore, p.DefScore
		if p.Offense == g.Away {
			home, away = away, home
		}
		g.HomePoints = max(g.HomePoints, home)
		g.AwayPoints = max(g.AwayPoints, away)
	}
	g.Plays = append(g.Plays, p)
}

func (g *Game) Finish() {
	switch {
	case g.HomePoints > g.AwayPoints:
		g.Winner = g.Home
	case g.AwayPoints > g.HomePoints:
		g.Winner = g.Away
	default:
		g.Winner = TieGame
	}
}

// GameFactory turns a season CSV into games. Rows of one game must be
// consecutive.
type GameFactory struct {
	maker *PlayMaker
}

func NewGameFactory(maker *PlayMaker) *GameFactory {
	return &GameFactory{maker: maker}
}

// Games reads every game from r. fn is called once per finished game; a
// non-nil error from fn stops the read.
func (f *GameFactory) Games(r io.Reader, fn func(*Game) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range rowColumns {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("missing column %q", col)
		}
	}

	var current *Game
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		row := rowFromRecord(index, record)

		newGame := current == nil || current.ID != row.GameID
		if newGame {
			if current != nil {
				current.Finish()
				if err := fn(current); err != nil {
					return err
				}
			}
			current, err = NewGame(row.GameID)
			if err != nil {
				return err
			}
		}

		p, err := f.maker.MakePlay(current.Home, current.Away, row)
		if err != nil {
			return fmt.Errorf("game %v: %w", current.ID, err)
		}
		if newGame {
			// the clock columns are unreliable on the first play
			p.Time = 0
		}
		current.AddPlay(p)
	}

	if current != nil {
		current.Finish()
		return fn(current)
	}
	return nil
}

// MakeGames reads all games into memory.
func (f *GameFactory) MakeGames(r io.Reader) ([]*Game, error) {
	var games []*Game
	err := f.Games(r, func(g *Game) error {
		games = append(games, g)
		return nil
	})
	return games, err
}
