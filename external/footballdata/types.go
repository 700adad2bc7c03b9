package footballdata

type competitionsEnvelope struct {
	Count        int               `json:"count"`
	Competitions []competitionItem `json:"competitions"`
}

type competitionItem struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	Code string   `json:"code"`
	Type string   `json:"type"`
	Plan string   `json:"plan"`
	Area areaItem `json:"area"`
}

type areaItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type matchesEnvelope struct {
	Matches []matchItem `json:"matches"`
}

type matchItem struct {
	ID          int64         `json:"id"`
	UTCDate     string        `json:"utcDate"`
	Status      string        `json:"status"`
	Competition namedItem     `json:"competition"`
	HomeTeam    namedItem     `json:"homeTeam"`
	AwayTeam    namedItem     `json:"awayTeam"`
	Score       scoreEnvelope `json:"score"`
}

type namedItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type scoreEnvelope struct {
	Winner   string    `json:"winner"`
	FullTime scoreLine `json:"fullTime"`
}

// scoreLine values are null until a match has started.
type scoreLine struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
