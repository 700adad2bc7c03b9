package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Gedeon250/football-api-app/internal/domain/team"
	teammock "github.com/Gedeon250/football-api-app/internal/mocks/domain/team"
)

func TestReferenceService_CompetitionTeams_FoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	service := NewReferenceService(repo)

	entries := []team.RosterEntry{
		{Name: "Arsenal", Stadium: "Emirates Stadium", Founded: "1886"},
		{Name: "Chelsea", Stadium: "Stamford Bridge", Founded: "1905"},
	}
	repo.
		On("ListByCompetition", mock.Anything, "premier-league").
		Return(entries, true, nil).
		Once()

	got, err := service.CompetitionTeams(ctx, "premier-league")
	if err != nil {
		t.Fatalf("competition teams: %v", err)
	}
	if !got.Found || len(got.Teams) != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.DisplayName != "Premier League" {
		t.Fatalf("unexpected display name: %q", got.DisplayName)
	}
}

func TestReferenceService_CompetitionTeams_MissIsNotAnError(t *testing.T) {
	t.Parallel()

	repo := teammock.NewRepository(t)
	service := NewReferenceService(repo)
	repo.On("ListByCompetition", mock.Anything, "eredivisie").Return(nil, false, nil).Once()

	got, err := service.CompetitionTeams(context.Background(), "eredivisie")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Found || got.Teams != nil {
		t.Fatalf("expected miss, got %+v", got)
	}
	if got.DisplayName != "Eredivisie" {
		t.Fatalf("unexpected display name: %q", got.DisplayName)
	}
}

func TestReferenceService_TeamProfile_PropagatesRepositoryError(t *testing.T) {
	t.Parallel()

	repo := teammock.NewRepository(t)
	service := NewReferenceService(repo)
	boom := errors.New("boom")
	repo.On("GetProfile", mock.Anything, "liverpool").Return(team.Profile{}, false, boom).Once()

	_, err := service.TeamProfile(context.Background(), "liverpool")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestReferenceService_TeamProfile_Found(t *testing.T) {
	t.Parallel()

	repo := teammock.NewRepository(t)
	service := NewReferenceService(repo)
	repo.
		On("GetProfile", mock.Anything, "Barcelona ").
		Return(team.Profile{Name: "FC Barcelona", Nickname: "Barça"}, true, nil).
		Once()

	got, err := service.TeamProfile(context.Background(), "Barcelona ")
	if err != nil {
		t.Fatalf("team profile: %v", err)
	}
	if !got.Found || got.Profile.Nickname != "Barça" || got.Query != "Barcelona" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"premier-league": "Premier League",
		"serie a":        "Serie A",
		"ligue-1":        "Ligue 1",
	}
	for in, want := range cases {
		if got := DisplayName(in); got != want {
			t.Fatalf("DisplayName(%q): got=%q want=%q", in, got, want)
		}
	}
}
