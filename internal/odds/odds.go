// Package odds maps raw bookmaker market/selection quotes onto the fixed set
// of keys the frontend renders.
package odds

import (
	"math"
	"strconv"
	"strings"

	"github.com/GlebRadaev/tipsters/internal/domain"
)

type Key string

const (
	Home       Key = "1"
	Draw       Key = "X"
	Away       Key = "2"
	HomeOrDraw Key = "1X"
	DrawOrAway Key = "X2"
	HomeOrAway Key = "12"
	BothScore  Key = "GG"
	NoGoal     Key = "NG"
	Over       Key = "O"
	Under      Key = "U"
)

// Raw is market -> selection -> odd as text.
type Raw map[string]map[string]string

// Odds always serialises all ten keys; a missing quote is null.
type Odds struct {
	Home       *float64 `json:"1"`
	Draw       *float64 `json:"X"`
	Away       *float64 `json:"2"`
	HomeOrDraw *float64 `json:"1X"`
	DrawOrAway *float64 `json:"X2"`
	HomeOrAway *float64 `json:"12"`
	BothScore  *float64 `json:"GG"`
	NoGoal     *float64 `json:"NG"`
	Over       *float64 `json:"O"`
	Under      *float64 `json:"U"`
}

type rule struct {
	market    string
	selection string
	key       Key
}

// Order matters: the first rule that yields a number claims its key.
var rules = []rule{
	{"Match Winner", "Home", Home},
	{"Match Winner", "Draw", Draw},
	{"Match Winner", "Away", Away},
	{"Double Chance", "Home/Draw", HomeOrDraw},
	{"Double Chance", "Draw/Away", DrawOrAway},
	{"Double Chance", "Home/Away", HomeOrAway},
	{"Double Chance", "Home or Draw", HomeOrDraw},
	{"Double Chance", "Draw or Away", DrawOrAway},
	{"Double Chance", "Home or Away", HomeOrAway},
	{"Goals Over/Under", "Over 2.5", Over},
	{"Goals Over/Under", "Under 2.5", Under},
	{"Over/Under", "Over 2.5", Over},
	{"Over/Under", "Under 2.5", Under},
	{"Both Teams Score", "Yes", BothScore},
	{"Both Teams Score", "No", NoGoal},
}

// Normalize never fails: unknown pairs and unparsable odds are skipped.
func Normalize(raw Raw) Odds {
	var out Odds
	for _, r := range rules {
		selections, ok := raw[r.market]
		if !ok {
			continue
		}
		text, ok := selections[r.selection]
		if !ok {
			continue
		}
		slot := out.slot(r.key)
		if *slot != nil {
			continue
		}
		value, ok := parse(text)
		if !ok {
			continue
		}
		*slot = &value
	}
	return out
}

// Get returns the quote stored under key, if any.
func (o *Odds) Get(key Key) (float64, bool) {
	p := *o.slot(key)
	if p == nil {
		return 0, false
	}
	return *p, true
}

func (o *Odds) slot(key Key) **float64 {
	switch key {
	case Home:
		return &o.Home
	case Draw:
		return &o.Draw
	case Away:
		return &o.Away
	case HomeOrDraw:
		return &o.HomeOrDraw
	case DrawOrAway:
		return &o.DrawOrAway
	case HomeOrAway:
		return &o.HomeOrAway
	case BothScore:
		return &o.BothScore
	case NoGoal:
		return &o.NoGoal
	case Over:
		return &o.Over
	default:
		return &o.Under
	}
}

func parse(text string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// Group builds the raw structure per match from stored rows. Market and
// selection labels are trimmed and the first row for a pair is kept.
func Group(rows []domain.OddRow) map[int]Raw {
	out := make(map[int]Raw)
	for _, row := range rows {
		market := strings.TrimSpace(row.Market)
		selection := strings.TrimSpace(row.Selection)

		raw, ok := out[row.MatchID]
		if !ok {
			raw = Raw{}
			out[row.MatchID] = raw
		}
		if raw[market] == nil {
			raw[market] = map[string]string{}
		}
		if _, seen := raw[market][selection]; !seen {
			raw[market][selection] = row.Odd
		}
	}
	return out
}

type MatchOdds struct {
	domain.Match
	Odds Odds
}

// Attach pairs every match with its normalized odds, keeping match order.
func Attach(matches []domain.Match, rows []domain.OddRow) []MatchOdds {
	grouped := Group(rows)
	out := make([]MatchOdds, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchOdds{Match: m, Odds: Normalize(grouped[m.FixtureID])})
	}
	return out
}
