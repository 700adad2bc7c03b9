package team

import "strings"

// RosterEntry is one club listed under a competition.
type RosterEntry struct {
	Name    string
	Stadium string
	Founded string
}

// Profile is the reference card for a single club.
type Profile struct {
	Name     string
	Country  string
	League   string
	Stadium  string
	Founded  string
	Colors   string
	Nickname string
}

// NormalizeKey lowercases and trims a lookup key and turns dash slugs into
// spaces, so "Premier-League " and "premier league" resolve to the same entry.
func NormalizeKey(value string) string {
	key := strings.ToLower(strings.TrimSpace(value))
	key = strings.ReplaceAll(key, "-", " ")
	return strings.Join(strings.Fields(key), " ")
}
