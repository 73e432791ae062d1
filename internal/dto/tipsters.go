package dto

import (
	"time"

	"github.com/GlebRadaev/tipsters/internal/betting"
	"github.com/GlebRadaev/tipsters/internal/domain"
)

type TipsterDTO struct {
	ID          int     `json:"id" example:"7"`
	DisplayName string  `json:"displayName" example:"mario"`
	Balance     float64 `json:"balance" example:"12000"`
	TotalBets   int     `json:"total_bets" example:"40"`
	IsAdvisor   bool    `json:"isAdvisor" example:"true"`
}

type TipstersResponseDTO struct {
	Success bool         `json:"success" example:"true"`
	Data    []TipsterDTO `json:"data"`
}

func NewTipsterDTO(t domain.TipsterSummary) TipsterDTO {
	return TipsterDTO{
		ID:          t.ID,
		DisplayName: t.Name,
		Balance:     t.Balance,
		TotalBets:   t.TotalBets,
		IsAdvisor:   t.IsAdvisor,
	}
}

type TipsterHeaderDTO struct {
	ID          int     `json:"id" example:"7"`
	DisplayName string  `json:"displayName" example:"mario"`
	IsAdvisor   bool    `json:"isAdvisor" example:"true"`
	Balance     float64 `json:"balance" example:"16000"`
}

type PublicBetDTO struct {
	ID           int       `json:"id" example:"30"`
	TotalOdds    float64   `json:"total_odds" example:"3.2"`
	MatchCount   int       `json:"match_count" example:"2"`
	Price        string    `json:"price" example:"3.50"`
	CreatedAt    time.Time `json:"created_at"`
	PotentialWin float64   `json:"potential_win" example:"32"`
	Stake        float64   `json:"stake" example:"10"`
	IsUnlocked   bool      `json:"is_unlocked"`
	IsObscured   bool      `json:"is_obscured"`
}

type PublicBetsResponseDTO struct {
	Success bool             `json:"success" example:"true"`
	Tipster TipsterHeaderDTO `json:"tipster"`
	Data    []PublicBetDTO   `json:"data"`
}

func NewPublicBetsResponseDTO(p domain.TipsterPage) PublicBetsResponseDTO {
	data := make([]PublicBetDTO, 0, len(p.Bets))
	for _, b := range p.Bets {
		data = append(data, PublicBetDTO{
			ID:           b.ID,
			TotalOdds:    b.TotalOdds,
			MatchCount:   b.MatchCount,
			Price:        betting.FormatPrice(b.Price),
			CreatedAt:    b.CreatedAt,
			PotentialWin: b.PotentialWin,
			Stake:        b.Stake,
			IsUnlocked:   b.IsUnlocked,
			IsObscured:   b.IsObscured,
		})
	}
	return PublicBetsResponseDTO{
		Success: true,
		Tipster: TipsterHeaderDTO{
			ID:          p.Tipster.ID,
			DisplayName: p.Tipster.Name,
			IsAdvisor:   p.Tipster.IsAdvisor,
			Balance:     p.Tipster.Balance,
		},
		Data: data,
	}
}

// PublicMatchDTO is a leg as shown to a viewer. Teams, market and selection
// are empty when the slip is obscured.
type PublicMatchDTO struct {
	Market     string  `json:"market" example:"Match Winner"`
	Selection  string  `json:"selection" example:"Home"`
	Odd        float64 `json:"odd" example:"2.1"`
	HomeTeam   string  `json:"home_team" example:"Inter"`
	AwayTeam   string  `json:"away_team" example:"Milan"`
	MatchDate  string  `json:"match_date" example:"2024-05-10T20:45:00.000"`
	Status     string  `json:"status" example:"NS"`
	GoalsHome  *int    `json:"goals_home"`
	GoalsAway  *int    `json:"goals_away"`
	Minute     int     `json:"minute"`
	IsExpired  bool    `json:"isExpired"`
	IsObscured bool    `json:"is_obscured"`
}

type PublicMatchesResponseDTO struct {
	Success    bool             `json:"success" example:"true"`
	IsUnlocked bool             `json:"is_unlocked"`
	Data       []PublicMatchDTO `json:"data"`
}

func NewPublicMatchesResponseDTO(s domain.PublicSlip, loc *time.Location) PublicMatchesResponseDTO {
	data := make([]PublicMatchDTO, 0, len(s.Legs))
	for _, l := range s.Legs {
		data = append(data, PublicMatchDTO{
			Market:     l.Market,
			Selection:  l.Selection.Selection,
			Odd:        l.Odd,
			HomeTeam:   l.HomeTeam,
			AwayTeam:   l.AwayTeam,
			MatchDate:  LocalTime(l.FixtureDate, loc),
			Status:     l.MatchStatus,
			GoalsHome:  Goals(l.GoalsHome),
			GoalsAway:  Goals(l.GoalsAway),
			Minute:     l.Minute,
			IsExpired:  l.IsExpired,
			IsObscured: l.IsObscured,
		})
	}
	return PublicMatchesResponseDTO{Success: true, IsUnlocked: s.IsUnlocked, Data: data}
}
