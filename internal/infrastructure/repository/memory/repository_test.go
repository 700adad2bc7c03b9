package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gedeon250/football-api-app/internal/domain/match"
)

func TestTeamRepository_LookupsAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedRosters(), SeedProfiles())
	ctx := context.Background()

	for _, key := range []string{"Premier League", "premier league", "  PREMIER LEAGUE ", "premier-league"} {
		entries, ok, err := repo.ListByCompetition(ctx, key)
		if err != nil {
			t.Fatalf("list roster %q: %v", key, err)
		}
		if !ok || len(entries) != 6 {
			t.Fatalf("roster %q: ok=%v len=%d", key, ok, len(entries))
		}
		if entries[0].Name != "Arsenal" || entries[0].Founded != "1886" {
			t.Fatalf("unexpected first entry: %+v", entries[0])
		}
	}

	profile, ok, err := repo.GetProfile(ctx, "Real Madrid")
	if err != nil || !ok {
		t.Fatalf("profile lookup: ok=%v err=%v", ok, err)
	}
	if profile.Nickname != "Los Blancos" || profile.Stadium != "Santiago Bernabéu" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestTeamRepository_MissReturnsNotOK(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedRosters(), SeedProfiles())
	ctx := context.Background()

	if _, ok, err := repo.ListByCompetition(ctx, "eredivisie"); ok || err != nil {
		t.Fatalf("expected roster miss, ok=%v err=%v", ok, err)
	}
	if _, ok, err := repo.GetProfile(ctx, "tottenham"); ok || err != nil {
		t.Fatalf("expected profile miss, ok=%v err=%v", ok, err)
	}
}

func TestTeamRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedRosters(), SeedProfiles())
	entries, _, _ := repo.ListByCompetition(context.Background(), "serie a")
	entries[0].Name = "changed"

	again, _, _ := repo.ListByCompetition(context.Background(), "serie a")
	if again[0].Name != "Juventus" {
		t.Fatalf("roster mutated through returned slice: %+v", again[0])
	}
}

func TestFallbackRepository_Datasets(t *testing.T) {
	t.Parallel()

	repo := NewFallbackRepository()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	if got := len(repo.Competitions()); got != 13 {
		t.Fatalf("expected 13 fallback competitions, got %d", got)
	}

	live := repo.LiveMatches(now)
	if len(live) != 3 {
		t.Fatalf("expected 3 live matches, got %d", len(live))
	}
	if live[1].Status != match.StatusInPlay || *live[1].HomeScore != 2 || *live[1].AwayScore != 1 {
		t.Fatalf("unexpected in-play match: %+v", live[1])
	}
	if live[0].HasScore() {
		t.Fatalf("scheduled sample match must not carry a score")
	}

	upcoming := repo.UpcomingMatches(now)
	wantDates := []string{"2026-10-17T12:00:00Z", "2026-10-18T12:00:00Z", "2026-10-19T12:00:00Z"}
	for i, item := range upcoming {
		if item.UTCDate != wantDates[i] {
			t.Fatalf("upcoming[%d] date: got=%s want=%s", i, item.UTCDate, wantDates[i])
		}
		if item.Status != match.StatusScheduled || item.HasScore() {
			t.Fatalf("upcoming[%d] must be scheduled without score: %+v", i, item)
		}
	}
}
