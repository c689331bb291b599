package constants

import "time"

var DatabaseConfig = struct {
	PingTimeout     time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}{
	PingTimeout:     5 * time.Second,
	MaxOpenConns:    4,
	MaxIdleConns:    2,
	ConnMaxLifetime: 5 * time.Minute,
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
}{
	ReadyTimeout: 5 * time.Second,
}

// Website holds the static site rendering knobs.
var Website = struct {
	RecentYear int
	Templates  map[string]string
	DateLayout string
}{
	RecentYear: 2019,
	Templates: map[string]string{
		"movies": "index",
		"series": "series",
	},
	DateLayout: "2006-01-02",
}

var Taglines = struct {
	NavItemActual []string
	NavItemOld    []string
	Subtitle      []string
}{
	NavItemActual: []string{"fresh", "recent", "actual", "2019 and +", "what about a recent movie?"},
	NavItemOld:    []string{"2018 and older", "old", "wanna see an old movie"},
	Subtitle: []string{
		"what people are watching lately",
		"you will find what you're looking for",
		"one more website to find movies",
		"a great lockdown project",
	},
}

var PublisherNames = struct {
	Website string
	JSON    string
}{
	Website: "website",
	JSON:    "json",
}
