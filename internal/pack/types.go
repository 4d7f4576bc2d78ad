package pack

import "time"

// Season tags a pack or template with the time of year it is meant for.
type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonAutumn Season = "autumn"
	SeasonAny    Season = "any"
)

// PackItem is one packed entry: a reference to a closet item plus
// quantity, optional note and per-piece weight.
type PackItem struct {
	ID            string   `json:"id"` // closet item id, unique within a pack
	Name          string   `json:"name"`
	CategoryID    string   `json:"categoryId,omitempty"` // for display grouping only
	Quantity      int      `json:"qty"`
	Note          string   `json:"note,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	WeightPerUnit *float64 `json:"weight,omitempty"` // kg per piece
}

// Pack is the single active packing session: the items being taken on a
// trip plus trip-level weight metadata.
type Pack struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Items     []PackItem `json:"items"`
	Season    Season     `json:"season,omitempty"`
	BagWeight float64    `json:"bagWeight"`           // weight of the empty bag, kg
	Allowance *float64   `json:"allowance,omitempty"` // airline weight limit, kg
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// PackTemplate is a named snapshot of a pack's items for quick reuse.
type PackTemplate struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Season    Season     `json:"season,omitempty"`
	Items     []PackItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}

// LastAdded is an ephemeral hint describing the most recently added item.
// It only drives a transient notification in consumers, but is persisted so
// the hint survives a reload.
type LastAdded struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	At        time.Time `json:"at"`
}

// ClosetItem is the minimal shape a closet/category provider supplies for an
// item being packed. The store has no dependency on how closet items are
// created or stored.
type ClosetItem struct {
	ID            string
	Name          string
	CategoryID    string
	Thumbnail     string
	WeightPerUnit *float64
}

// cloneItems returns a deep copy of an item slice.
func cloneItems(items []PackItem) []PackItem {
	if items == nil {
		return nil
	}
	out := make([]PackItem, len(items))
	for i, it := range items {
		if it.WeightPerUnit != nil {
			w := *it.WeightPerUnit
			it.WeightPerUnit = &w
		}
		out[i] = it
	}
	return out
}
