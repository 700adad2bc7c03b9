package match

import "strings"

const (
	StatusScheduled = "SCHEDULED"
	StatusInPlay    = "IN_PLAY"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)

// UnknownName replaces team or competition names missing from a record.
const UnknownName = "Unknown"

// Match represents one fixture as delivered by the data source.
// UTCDate keeps the raw wire value so formatting can degrade per row.
type Match struct {
	HomeTeam    string
	AwayTeam    string
	UTCDate     string
	Status      string
	Competition string
	HomeScore   *int
	AwayScore   *int
}

// WithDefaults fills missing names with UnknownName.
func (m Match) WithDefaults() Match {
	if strings.TrimSpace(m.HomeTeam) == "" {
		m.HomeTeam = UnknownName
	}
	if strings.TrimSpace(m.AwayTeam) == "" {
		m.AwayTeam = UnknownName
	}
	if strings.TrimSpace(m.Competition) == "" {
		m.Competition = UnknownName
	}
	return m
}

func (m Match) HasScore() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

func NormalizeStatus(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsLive(status string) bool {
	return NormalizeStatus(status) == StatusInPlay
}

var statusLabels = map[string]string{
	StatusScheduled: "Scheduled",
	StatusInPlay:    "LIVE",
	StatusPaused:    "Half Time",
	StatusFinished:  "Finished",
	StatusPostponed: "Postponed",
	StatusCancelled: "Cancelled",
}

// StatusLabel returns the display label for status. Unknown statuses are
// returned unchanged.
func StatusLabel(status string) string {
	if label, ok := statusLabels[NormalizeStatus(status)]; ok {
		return label
	}
	return status
}
