package memory

import (
	"time"

	"github.com/Gedeon250/football-api-app/internal/domain/competition"
	"github.com/Gedeon250/football-api-app/internal/domain/match"
	"github.com/Gedeon250/football-api-app/internal/domain/team"
)

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{Name: "Premier League", Code: "PL", Area: "England", Plan: competition.PlanTierOne},
		{Name: "La Liga", Code: "PD", Area: "Spain", Plan: competition.PlanTierOne},
		{Name: "Bundesliga", Code: "BL1", Area: "Germany", Plan: competition.PlanTierOne},
		{Name: "Serie A", Code: "SA", Area: "Italy", Plan: competition.PlanTierOne},
		{Name: "Ligue 1", Code: "FL1", Area: "France", Plan: competition.PlanTierOne},
		{Name: "Eredivisie", Code: "DED", Area: "Netherlands", Plan: competition.PlanTierOne},
		{Name: "Primeira Liga", Code: "PPL", Area: "Portugal", Plan: competition.PlanTierOne},
		{Name: "Championship", Code: "ELC", Area: "England", Plan: competition.PlanTierTwo},
		{Name: "UEFA Champions League", Code: "CL", Area: "Europe", Plan: competition.PlanTierOne},
		{Name: "FIFA World Cup", Code: "WC", Area: "World", Plan: competition.PlanTierOne},
		{Name: "Campeonato Brasileiro Série A", Code: "BSA", Area: "Brazil", Plan: competition.PlanTierOne},
		{Name: "Copa Libertadores", Code: "CLI", Area: "South America", Plan: competition.PlanTierOne},
		{Name: "European Championship", Code: "EC", Area: "Europe", Plan: competition.PlanTierOne},
	}
}

// SeedLiveMatches returns the sample match day, dated relative to now.
func SeedLiveMatches(now time.Time) []match.Match {
	return []match.Match{
		{
			HomeTeam:    "Manchester United",
			AwayTeam:    "Liverpool",
			UTCDate:     stamp(now.Add(2 * time.Hour)),
			Status:      match.StatusScheduled,
			Competition: "Premier League",
		},
		{
			HomeTeam:    "Barcelona",
			AwayTeam:    "Real Madrid",
			UTCDate:     stamp(now),
			Status:      match.StatusInPlay,
			Competition: "La Liga",
			HomeScore:   intPtr(2),
			AwayScore:   intPtr(1),
		},
		{
			HomeTeam:    "Bayern Munich",
			AwayTeam:    "Borussia Dortmund",
			UTCDate:     stamp(now.Add(-time.Hour)),
			Status:      match.StatusFinished,
			Competition: "Bundesliga",
			HomeScore:   intPtr(3),
			AwayScore:   intPtr(2),
		},
	}
}

// SeedUpcomingMatches returns three scheduled fixtures on the next three days.
func SeedUpcomingMatches(now time.Time) []match.Match {
	return []match.Match{
		{
			HomeTeam:    "Chelsea",
			AwayTeam:    "Arsenal",
			UTCDate:     stamp(now.AddDate(0, 0, 1)),
			Status:      match.StatusScheduled,
			Competition: "Premier League",
		},
		{
			HomeTeam:    "AC Milan",
			AwayTeam:    "Inter Milan",
			UTCDate:     stamp(now.AddDate(0, 0, 2)),
			Status:      match.StatusScheduled,
			Competition: "Serie A",
		},
		{
			HomeTeam:    "Paris Saint-Germain",
			AwayTeam:    "Marseille",
			UTCDate:     stamp(now.AddDate(0, 0, 3)),
			Status:      match.StatusScheduled,
			Competition: "Ligue 1",
		},
	}
}

// SeedRosters is keyed by lowercase competition name.
func SeedRosters() map[string][]team.RosterEntry {
	return map[string][]team.RosterEntry{
		"premier league": {
			{Name: "Arsenal", Stadium: "Emirates Stadium", Founded: "1886"},
			{Name: "Chelsea", Stadium: "Stamford Bridge", Founded: "1905"},
			{Name: "Liverpool", Stadium: "Anfield", Founded: "1892"},
			{Name: "Manchester United", Stadium: "Old Trafford", Founded: "1878"},
			{Name: "Manchester City", Stadium: "Etihad Stadium", Founded: "1880"},
			{Name: "Tottenham", Stadium: "Tottenham Hotspur Stadium", Founded: "1882"},
		},
		"la liga": {
			{Name: "Real Madrid", Stadium: "Santiago Bernabéu", Founded: "1902"},
			{Name: "Barcelona", Stadium: "Camp Nou", Founded: "1899"},
			{Name: "Atletico Madrid", Stadium: "Wanda Metropolitano", Founded: "1903"},
			{Name: "Sevilla", Stadium: "Ramón Sánchez Pizjuán", Founded: "1890"},
			{Name: "Valencia", Stadium: "Mestalla", Founded: "1919"},
			{Name: "Real Sociedad", Stadium: "Reale Arena", Founded: "1909"},
		},
		"bundesliga": {
			{Name: "Bayern Munich", Stadium: "Allianz Arena", Founded: "1900"},
			{Name: "Borussia Dortmund", Stadium: "Signal Iduna Park", Founded: "1909"},
			{Name: "RB Leipzig", Stadium: "Red Bull Arena", Founded: "2009"},
			{Name: "Bayer Leverkusen", Stadium: "BayArena", Founded: "1904"},
			{Name: "Eintracht Frankfurt", Stadium: "Deutsche Bank Park", Founded: "1899"},
			{Name: "Borussia Mönchengladbach", Stadium: "Borussia-Park", Founded: "1900"},
		},
		"serie a": {
			{Name: "Juventus", Stadium: "Allianz Stadium", Founded: "1897"},
			{Name: "AC Milan", Stadium: "San Siro", Founded: "1899"},
			{Name: "Inter Milan", Stadium: "San Siro", Founded: "1908"},
			{Name: "AS Roma", Stadium: "Stadio Olimpico", Founded: "1927"},
			{Name: "Napoli", Stadium: "Stadio Diego Armando Maradona", Founded: "1926"},
			{Name: "Lazio", Stadium: "Stadio Olimpico", Founded: "1900"},
		},
		"ligue 1": {
			{Name: "Paris Saint-Germain", Stadium: "Parc des Princes", Founded: "1970"},
			{Name: "Marseille", Stadium: "Stade Vélodrome", Founded: "1899"},
			{Name: "Lyon", Stadium: "Groupama Stadium", Founded: "1950"},
			{Name: "Monaco", Stadium: "Stade Louis II", Founded: "1924"},
			{Name: "Nice", Stadium: "Allianz Riviera", Founded: "1904"},
			{Name: "Lille", Stadium: "Stade Pierre-Mauroy", Founded: "1944"},
		},
	}
}

// SeedProfiles is keyed by lowercase club name.
func SeedProfiles() map[string]team.Profile {
	return map[string]team.Profile{
		"manchester united": {
			Name: "Manchester United", Country: "England", League: "Premier League",
			Stadium: "Old Trafford", Founded: "1878", Colors: "Red, White", Nickname: "The Red Devils",
		},
		"barcelona": {
			Name: "FC Barcelona", Country: "Spain", League: "La Liga",
			Stadium: "Camp Nou", Founded: "1899", Colors: "Blue, Red", Nickname: "Barça",
		},
		"real madrid": {
			Name: "Real Madrid", Country: "Spain", League: "La Liga",
			Stadium: "Santiago Bernabéu", Founded: "1902", Colors: "White", Nickname: "Los Blancos",
		},
		"bayern munich": {
			Name: "FC Bayern Munich", Country: "Germany", League: "Bundesliga",
			Stadium: "Allianz Arena", Founded: "1900", Colors: "Red, White", Nickname: "Die Bayern",
		},
		"liverpool": {
			Name: "Liverpool FC", Country: "England", League: "Premier League",
			Stadium: "Anfield", Founded: "1892", Colors: "Red", Nickname: "The Reds",
		},
	}
}

func stamp(ts time.Time) string {
	return ts.UTC().Format(time.RFC3339)
}

func intPtr(v int) *int {
	return &v
}
