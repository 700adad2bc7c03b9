package httpapi

import (
	"time"

	"github.com/Gedeon250/football-api-app/internal/domain/competition"
	"github.com/Gedeon250/football-api-app/internal/domain/team"
	"github.com/Gedeon250/football-api-app/internal/usecase"
)

// competitionQueryRequest is shared by the JSON API and the home page.
type competitionQueryRequest struct {
	Search  string `validate:"max=100"`
	Country string `validate:"max=100"`
	Sort    string `validate:"omitempty,oneof=name country"`
}

type competitionDTO struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Area string `json:"area"`
	Plan string `json:"plan"`
}

type competitionListDTO struct {
	Items     []competitionDTO `json:"items"`
	Countries []string         `json:"countries"`
	Fallback  bool             `json:"fallback"`
	Reason    string           `json:"reason,omitempty"`
	Source    string           `json:"source"`
	FetchedAt *time.Time       `json:"fetched_at,omitempty"`
}

type matchDTO struct {
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	Competition string `json:"competition"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	UTCDate     string `json:"utc_date"`
	Time        string `json:"time"`
	Date        string `json:"date"`
	HomeScore   *int   `json:"home_score"`
	AwayScore   *int   `json:"away_score"`
	IsLive      bool   `json:"is_live"`
}

type matchListDTO struct {
	Items    []matchDTO `json:"items"`
	Fallback bool       `json:"fallback"`
	Reason   string     `json:"reason,omitempty"`
	Source   string     `json:"source"`
}

type rosterEntryDTO struct {
	Name    string `json:"name"`
	Stadium string `json:"stadium"`
	Founded string `json:"founded"`
}

type competitionTeamsDTO struct {
	Competition string           `json:"competition"`
	Teams       []rosterEntryDTO `json:"teams"`
}

type teamProfileDTO struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	League   string `json:"league"`
	Stadium  string `json:"stadium"`
	Founded  string `json:"founded"`
	Colors   string `json:"colors"`
	Nickname string `json:"nickname"`
}

func competitionToDTO(item competition.Competition) competitionDTO {
	return competitionDTO{
		Name: item.Name,
		Code: item.Code,
		Area: item.Area,
		Plan: item.Plan,
	}
}

func matchRowToDTO(row usecase.MatchRow) matchDTO {
	return matchDTO{
		HomeTeam:    row.HomeTeam,
		AwayTeam:    row.AwayTeam,
		Competition: row.Competition,
		Status:      row.Status,
		StatusLabel: row.StatusLabel,
		UTCDate:     row.UTCDate,
		Time:        row.Time,
		Date:        row.Date,
		HomeScore:   row.HomeScore,
		AwayScore:   row.AwayScore,
		IsLive:      row.IsLive,
	}
}

func rosterEntryToDTO(item team.RosterEntry) rosterEntryDTO {
	return rosterEntryDTO{
		Name:    item.Name,
		Stadium: item.Stadium,
		Founded: item.Founded,
	}
}

func teamProfileToDTO(item team.Profile) teamProfileDTO {
	return teamProfileDTO{
		Name:     item.Name,
		Country:  item.Country,
		League:   item.League,
		Stadium:  item.Stadium,
		Founded:  item.Founded,
		Colors:   item.Colors,
		Nickname: item.Nickname,
	}
}
