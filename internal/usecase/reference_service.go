package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Gedeon250/football-api-app/internal/domain/team"
)

type CompetitionTeams struct {
	DisplayName string
	Teams       []team.RosterEntry
	Found       bool
}

type TeamProfile struct {
	Query   string
	Profile team.Profile
	Found   bool
}

// ReferenceService serves static club and roster data. A miss is reported
// through Found, never as an error.
type ReferenceService struct {
	teamRepo team.Repository
}

func NewReferenceService(teamRepo team.Repository) *ReferenceService {
	return &ReferenceService{teamRepo: teamRepo}
}

func (s *ReferenceService) CompetitionTeams(ctx context.Context, name string) (CompetitionTeams, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.CompetitionTeams")
	defer span.End()

	out := CompetitionTeams{DisplayName: DisplayName(name)}
	teams, ok, err := s.teamRepo.ListByCompetition(ctx, name)
	if err != nil {
		return CompetitionTeams{}, fmt.Errorf("list teams for competition=%s: %w", name, err)
	}
	if !ok || len(teams) == 0 {
		return out, nil
	}

	out.Teams = teams
	out.Found = true
	return out, nil
}

func (s *ReferenceService) TeamProfile(ctx context.Context, name string) (TeamProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.TeamProfile")
	defer span.End()

	profile, ok, err := s.teamRepo.GetProfile(ctx, name)
	if err != nil {
		return TeamProfile{}, fmt.Errorf("get team profile name=%s: %w", name, err)
	}
	return TeamProfile{Query: strings.TrimSpace(name), Profile: profile, Found: ok}, nil
}

// DisplayName turns a competition slug into a title-cased heading,
// e.g. "premier-league" becomes "Premier League".
func DisplayName(slug string) string {
	value := strings.TrimSpace(strings.ReplaceAll(slug, "-", " "))
	return cases.Title(language.English).String(value)
}
