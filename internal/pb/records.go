// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package pb

import (
	"strings"
	"time"
)

// Time wraps time.Time to decode the backend's timestamp format
// ("2006-01-02 15:04:05.000Z") as well as RFC 3339. Empty strings decode
// to the zero time; optional date fields are frequently empty.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05.000Z", time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	// Leave zero rather than failing the whole record decode.
	t.Time = time.Time{}
	return nil
}

// Backend collection names.
const (
	CollectionSiteInfo = "site_info"
	CollectionPages    = "pages"
	CollectionNews     = "news"
	CollectionAthletes = "athletes"
	CollectionCoaches  = "coaches"
	CollectionResults  = "results"
	CollectionAlbums   = "albums"
	CollectionPhotos   = "photos"
	CollectionSchedule = "schedule"
	CollectionMessages = "messages"

	CollectionAchievements = "achievements"
)

// BaseRecord holds the fields common to every backend record.
type BaseRecord struct {
	ID             string `json:"id"`
	CollectionID   string `json:"collectionId"`
	CollectionName string `json:"collectionName"`
	Created        Time   `json:"created"`
	Updated        Time   `json:"updated"`
}

// SiteInfo is the singleton record with the club's contact details.
type SiteInfo struct {
	BaseRecord
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// MenuPage is a CMS-authored page that may appear in the navigation menu.
type MenuPage struct {
	BaseRecord
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Visible   bool   `json:"visible"`
	MenuOrder int    `json:"menu_order"`
}

// NewsItem is a news post.
type NewsItem struct {
	BaseRecord
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Published bool   `json:"published"`
}

// AthleteStatus is the roster status of an athlete. An empty value is
// treated as active.
type AthleteStatus string

// Known athlete statuses.
const (
	StatusActive   AthleteStatus = "active"
	StatusInactive AthleteStatus = "inactive"
	StatusAlumni   AthleteStatus = "alumni"
)

// Athlete is a club athlete record.
type Athlete struct {
	BaseRecord
	Name   string        `json:"name"`
	Rank   string        `json:"rank"`
	Bio    string        `json:"bio"`
	Image  string        `json:"image"`
	Status AthleteStatus `json:"status"`
}

// Coach is a club coach record.
type Coach struct {
	BaseRecord
	Name  string `json:"name"`
	Role  string `json:"role"`
	Rank  string `json:"rank"`
	Bio   string `json:"bio"`
	Photo string `json:"photo"`
}

// Medal is the medal classification of a competition result.
type Medal string

// Medal values.
const (
	MedalGold          Medal = "gold"
	MedalSilver        Medal = "silver"
	MedalBronze        Medal = "bronze"
	MedalParticipation Medal = "participation"
)

// Competition is a competition record, only ever seen through result
// expansion.
type Competition struct {
	BaseRecord
	Name string `json:"name"`
	Year int    `json:"year"`
	Date Time   `json:"date"`
	Rank string `json:"rank"`
}

// ResultExpand carries relations eagerly joined into a result.
type ResultExpand struct {
	Competition *Competition `json:"competition"`
}

// Result is a single competition result. It belongs to exactly one athlete
// or exactly one coach, never both.
type Result struct {
	BaseRecord
	Athlete     string       `json:"athlete"`
	Coach       string       `json:"coach"`
	Competition string       `json:"competition"`
	Discipline  string       `json:"discipline"`
	Medal       Medal        `json:"medal"`
	Place       int          `json:"place"`
	Description string       `json:"description"`
	Expand      ResultExpand `json:"expand"`
}

// Album is a photo gallery album.
type Album struct {
	BaseRecord
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        Time   `json:"date"`
	Category    string `json:"category"`
	Cover       string `json:"cover"`
}

// Photo belongs to exactly one album.
type Photo struct {
	BaseRecord
	Album   string `json:"album"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// ScheduleEntry is one training slot. Day is a Polish day name; the backend
// provides no stable ordering for these.
type ScheduleEntry struct {
	BaseRecord
	Day      string `json:"day"`
	Time     string `json:"time"`
	Group    string `json:"group"`
	Location string `json:"location"`
}

// Achievement is one club milestone on the hall-of-fame page. Icon is a
// symbolic name ("trophy", "medal"); anything else renders as a star.
type Achievement struct {
	BaseRecord
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        Time   `json:"date"`
	Icon        string `json:"icon"`
}

// ContactMessage is the only record this system ever writes.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}
