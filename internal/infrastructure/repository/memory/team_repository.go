package memory

import (
	"context"
	"sync"

	"github.com/Gedeon250/football-api-app/internal/domain/team"
)

type TeamRepository struct {
	mu       sync.RWMutex
	rosters  map[string][]team.RosterEntry
	profiles map[string]team.Profile
}

func NewTeamRepository(rosters map[string][]team.RosterEntry, profiles map[string]team.Profile) *TeamRepository {
	r := &TeamRepository{
		rosters:  make(map[string][]team.RosterEntry, len(rosters)),
		profiles: make(map[string]team.Profile, len(profiles)),
	}
	for key, entries := range rosters {
		r.rosters[team.NormalizeKey(key)] = append([]team.RosterEntry(nil), entries...)
	}
	for key, profile := range profiles {
		r.profiles[team.NormalizeKey(key)] = profile
	}
	return r
}

func (r *TeamRepository) ListByCompetition(_ context.Context, competition string) ([]team.RosterEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, ok := r.rosters[team.NormalizeKey(competition)]
	if !ok {
		return nil, false, nil
	}

	out := make([]team.RosterEntry, 0, len(entries))
	out = append(out, entries...)
	return out, true, nil
}

func (r *TeamRepository) GetProfile(_ context.Context, name string) (team.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[team.NormalizeKey(name)]
	return profile, ok, nil
}
