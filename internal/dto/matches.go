package dto

import (
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/odds"
)

type MatchDTO struct {
	FixtureID      int       `json:"fixture_id" example:"1035037"`
	LeagueID       int       `json:"league_id" example:"135"`
	LeagueName     string    `json:"league_name" example:"Serie A"`
	HomeTeamID     int       `json:"home_team_id"`
	HomeTeam       string    `json:"home_team" example:"Inter"`
	HomeLogo       string    `json:"home_logo"`
	AwayTeamID     int       `json:"away_team_id"`
	AwayTeam       string    `json:"away_team" example:"Milan"`
	AwayLogo       string    `json:"away_logo"`
	FixtureDate    string    `json:"fixture_date" example:"2024-05-10T20:45:00.000"`
	Status         string    `json:"status" example:"NS"`
	GoalsHome      *int      `json:"goals_home"`
	GoalsAway      *int      `json:"goals_away"`
	Minute         int       `json:"minute"`
	Priority       int       `json:"priority" example:"1"`
	NormalizedOdds odds.Odds `json:"normalized_odds"`
}

type MatchesResponseDTO struct {
	Success bool       `json:"success" example:"true"`
	Date    string     `json:"date,omitempty" example:"2024-05-10"`
	Count   int        `json:"count" example:"1"`
	Data    []MatchDTO `json:"data"`
}

type TeamDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name" example:"Inter"`
	Logo string `json:"logo"`
}

type TeamsResponseDTO struct {
	Success bool      `json:"success" example:"true"`
	Teams   []TeamDTO `json:"teams"`
}

func NewMatchesResponseDTO(date string, matches []odds.MatchOdds, loc *time.Location) MatchesResponseDTO {
	data := make([]MatchDTO, 0, len(matches))
	for _, m := range matches {
		data = append(data, MatchDTO{
			FixtureID:      m.FixtureID,
			LeagueID:       m.LeagueID,
			LeagueName:     m.LeagueName,
			HomeTeamID:     m.HomeTeamID,
			HomeTeam:       m.HomeTeam,
			HomeLogo:       m.HomeLogo,
			AwayTeamID:     m.AwayTeamID,
			AwayTeam:       m.AwayTeam,
			AwayLogo:       m.AwayLogo,
			FixtureDate:    LocalTime(m.FixtureDate, loc),
			Status:         m.Status,
			GoalsHome:      Goals(m.GoalsHome),
			GoalsAway:      Goals(m.GoalsAway),
			Minute:         m.Minute,
			Priority:       m.Priority,
			NormalizedOdds: m.Odds,
		})
	}
	return MatchesResponseDTO{Success: true, Date: date, Count: len(data), Data: data}
}

func NewTeamsResponseDTO(teams []domain.Team) TeamsResponseDTO {
	out := make([]TeamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamDTO(t))
	}
	return TeamsResponseDTO{Success: true, Teams: out}
}
