package essentials

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Season tags when a rule applies. An empty Season passed to CheckMissing
// means "no season selected" and skips season filtering entirely.
type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonAutumn Season = "autumn"
)

// TripType tags what kind of trip a rule applies to. An empty TripType
// passed to CheckMissing skips trip-type filtering.
type TripType string

const (
	TripBusiness  TripType = "business"
	TripLeisure   TripType = "leisure"
	TripAdventure TripType = "adventure"
	TripBeach     TripType = "beach"
	TripCity      TripType = "city"
	TripCamping   TripType = "camping"
)

// Priority ranks how important a rule is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// rank orders priorities for sorting, highest first.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// SeasonScope is the set of seasons a rule applies to. The wildcard is an
// explicit variant rather than a magic member of the season enum, so filter
// logic cannot silently skip it. On the wire it round-trips to the legacy
// string-list form where "all" marks the wildcard.
type SeasonScope struct {
	Any     bool
	Seasons []Season
}

// AllSeasons returns the wildcard scope.
func AllSeasons() SeasonScope { return SeasonScope{Any: true} }

// Seasons returns a scope limited to the given seasons.
func Seasons(seasons ...Season) SeasonScope { return SeasonScope{Seasons: seasons} }

// Matches reports whether the scope covers the given season. The zero scope
// matches nothing.
func (s SeasonScope) Matches(season Season) bool {
	if s.Any {
		return true
	}
	for _, candidate := range s.Seasons {
		if candidate == season {
			return true
		}
	}
	return false
}

func (s SeasonScope) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tags())
}

func (s *SeasonScope) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return fmt.Errorf("decoding season scope: %w", err)
	}
	*s = SeasonScopeFromTags(tags)
	return nil
}

// Tags returns the legacy string-list form, with "all" for the wildcard.
func (s SeasonScope) Tags() []string {
	if s.Any {
		return []string{"all"}
	}
	tags := make([]string, len(s.Seasons))
	for i, season := range s.Seasons {
		tags[i] = string(season)
	}
	return tags
}

// SeasonScopeFromTags parses the legacy string-list form.
func SeasonScopeFromTags(tags []string) SeasonScope {
	var s SeasonScope
	for _, tag := range tags {
		if tag == "all" {
			s.Any = true
			continue
		}
		s.Seasons = append(s.Seasons, Season(tag))
	}
	return s
}

// TripScope is the set of trip types a rule applies to, with the same
// wildcard treatment as SeasonScope.
type TripScope struct {
	Any   bool
	Trips []TripType
}

// AllTrips returns the wildcard scope.
func AllTrips() TripScope { return TripScope{Any: true} }

// Trips returns a scope limited to the given trip types.
func Trips(trips ...TripType) TripScope { return TripScope{Trips: trips} }

// Matches reports whether the scope covers the given trip type. The zero
// scope matches nothing.
func (s TripScope) Matches(trip TripType) bool {
	if s.Any {
		return true
	}
	for _, candidate := range s.Trips {
		if candidate == trip {
			return true
		}
	}
	return false
}

func (s TripScope) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tags())
}

func (s *TripScope) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return fmt.Errorf("decoding trip scope: %w", err)
	}
	*s = TripScopeFromTags(tags)
	return nil
}

// Tags returns the legacy string-list form, with "all" for the wildcard.
func (s TripScope) Tags() []string {
	if s.Any {
		return []string{"all"}
	}
	tags := make([]string, len(s.Trips))
	for i, trip := range s.Trips {
		tags[i] = string(trip)
	}
	return tags
}

// TripScopeFromTags parses the legacy string-list form.
func TripScopeFromTags(tags []string) TripScope {
	var s TripScope
	for _, tag := range tags {
		if tag == "all" {
			s.Any = true
			continue
		}
		s.Trips = append(s.Trips, TripType(tag))
	}
	return s
}

// TravelEssential is one rule in the essentials catalog: an item that should
// be present in a pack under certain conditions.
type TravelEssential struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	CategoryID   string      `json:"categoryId,omitempty"` // satisfied by any pack item sharing this category
	IsRequired   bool        `json:"isRequired"`
	Seasons      SeasonScope `json:"seasons"`
	TripTypes    TripScope   `json:"tripTypes"`
	Priority     Priority    `json:"priority"`
	Alternatives []string    `json:"alternatives,omitempty"` // item names that satisfy the same need
}

// Template is a curated, named bundle of essential rules.
type Template struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Essentials  []TravelEssential `json:"essentials"`
	CreatedAt   time.Time         `json:"createdAt"`
	IsDefault   bool              `json:"isDefault,omitempty"` // built-in templates cannot be removed
}

// PackedItem is the minimal view of a packed item the reconciliation needs.
// Keeping it a plain input shape decouples this engine from the pack store.
type PackedItem struct {
	Name       string
	CategoryID string
}

// MissingEssential is one reconciliation result: a relevant rule the pack
// does not satisfy.
type MissingEssential struct {
	Essential      TravelEssential
	Reason         string
	HasAlternative bool
}

func cloneEssentials(list []TravelEssential) []TravelEssential {
	out := make([]TravelEssential, len(list))
	for i, e := range list {
		e.Seasons.Seasons = append([]Season(nil), e.Seasons.Seasons...)
		e.TripTypes.Trips = append([]TripType(nil), e.TripTypes.Trips...)
		e.Alternatives = append([]string(nil), e.Alternatives...)
		out[i] = e
	}
	return out
}
