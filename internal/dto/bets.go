package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
)

// SelectionRequestDTO is one slip leg. match_id and matchId are both
// accepted.
type SelectionRequestDTO struct {
	MatchID   int     `json:"match_id" validate:"gt=0" example:"1035037"`
	Market    string  `json:"market" validate:"required" example:"Match Winner"`
	Selection string  `json:"selection" validate:"required" example:"Home"`
	Odd       float64 `json:"odd" validate:"gte=0" example:"2.1"`
}

func (s *SelectionRequestDTO) UnmarshalJSON(b []byte) error {
	var raw struct {
		MatchIDSnake *Number `json:"match_id"`
		MatchIDCamel *Number `json:"matchId"`
		Market       string  `json:"market"`
		Selection    string  `json:"selection"`
		Odd          Number  `json:"odd"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = SelectionRequestDTO{
		MatchID:   int(first(raw.MatchIDSnake, raw.MatchIDCamel)),
		Market:    strings.TrimSpace(raw.Market),
		Selection: strings.TrimSpace(raw.Selection),
		Odd:       float64(raw.Odd),
	}
	return nil
}

// PlaceBetRequestDTO accepts snake_case and camelCase keys and a stake sent
// either as a number or as a string. Stake is left to the service so a bad
// value gets the same rejection as a non-positive one.
type PlaceBetRequestDTO struct {
	Stake      float64               `json:"stake" example:"20"`
	TotalOdds  float64               `json:"total_odds" example:"3.2"`
	Selections []SelectionRequestDTO `json:"selections" validate:"dive"`
}

func (p *PlaceBetRequestDTO) UnmarshalJSON(b []byte) error {
	var raw struct {
		Stake          Number                `json:"stake"`
		TotalOddsSnake *Number               `json:"total_odds"`
		TotalOddsCamel *Number               `json:"totalOdds"`
		Selections     []SelectionRequestDTO `json:"selections"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = PlaceBetRequestDTO{
		Stake:      float64(raw.Stake),
		TotalOdds:  first(raw.TotalOddsSnake, raw.TotalOddsCamel),
		Selections: raw.Selections,
	}
	return nil
}

func (p PlaceBetRequestDTO) ToDomain() domain.NewBet {
	bet := domain.NewBet{
		Stake:      p.Stake,
		TotalOdds:  p.TotalOdds,
		Selections: make([]domain.Selection, 0, len(p.Selections)),
	}
	for _, s := range p.Selections {
		bet.Selections = append(bet.Selections, domain.Selection{
			MatchID:   s.MatchID,
			Market:    s.Market,
			Selection: s.Selection,
			Odd:       s.Odd,
		})
	}
	return bet
}

type PlaceBetResponseDTO struct {
	Success    bool    `json:"success" example:"true"`
	ID         int     `json:"id" example:"42"`
	NewBalance float64 `json:"newBalance" example:"80"`
}

type SavedSelectionDTO struct {
	ID            int     `json:"id"`
	BetID         int     `json:"saved_bet_id"`
	MatchID       int     `json:"match_id"`
	Market        string  `json:"market"`
	Selection     string  `json:"selection"`
	Odd           float64 `json:"odd"`
	HomeTeam      string  `json:"home_team"`
	AwayTeam      string  `json:"away_team"`
	LeagueName    string  `json:"league_name"`
	FixtureDate   string  `json:"fixture_date"`
	GoalsHome     *int    `json:"goals_home"`
	GoalsAway     *int    `json:"goals_away"`
	IsWinning     bool    `json:"isWinning"`
	CurrentResult string  `json:"currentResult" example:"2 - 1"`
	MatchStatus   string  `json:"matchStatus" example:"FT"`
	MatchMinute   int     `json:"matchMinute" example:"90"`
}

type SavedBetDTO struct {
	ID           int                 `json:"id"`
	UserID       int                 `json:"user_id"`
	TotalOdds    float64             `json:"total_odds"`
	Stake        float64             `json:"stake"`
	PotentialWin float64             `json:"potential_win"`
	IsSettled    bool                `json:"is_settled"`
	CreatedAt    time.Time           `json:"created_at"`
	Status       domain.SlipStatus   `json:"status" example:"LIVE"`
	Selections   []SavedSelectionDTO `json:"selections"`
}

type SavedBetsResponseDTO struct {
	Success bool          `json:"success" example:"true"`
	Data    []SavedBetDTO `json:"data"`
}

func NewSavedBetDTO(r domain.SlipResult, loc *time.Location) SavedBetDTO {
	out := SavedBetDTO{
		ID:           r.ID,
		UserID:       r.UserID,
		TotalOdds:    r.TotalOdds,
		Stake:        r.Stake,
		PotentialWin: r.PotentialWin,
		IsSettled:    r.IsSettled,
		CreatedAt:    r.CreatedAt,
		Status:       r.Status,
		Selections:   make([]SavedSelectionDTO, 0, len(r.Legs)),
	}
	for _, l := range r.Legs {
		out.Selections = append(out.Selections, SavedSelectionDTO{
			ID:            l.ID,
			BetID:         l.BetID,
			MatchID:       l.MatchID,
			Market:        l.Market,
			Selection:     l.Selection.Selection,
			Odd:           l.Odd,
			HomeTeam:      l.HomeTeam,
			AwayTeam:      l.AwayTeam,
			LeagueName:    l.LeagueName,
			FixtureDate:   LocalTime(l.FixtureDate, loc),
			GoalsHome:     Goals(l.GoalsHome),
			GoalsAway:     Goals(l.GoalsAway),
			IsWinning:     l.IsWinning,
			CurrentResult: l.CurrentResult,
			MatchStatus:   l.MatchStatus,
			MatchMinute:   l.Minute,
		})
	}
	return out
}
