package pack

import (
	"packlist/internal/ident"
	"packlist/internal/logging"
	"packlist/internal/record"
)

// Store is the single source of truth for the active pack and its saved
// templates. Every mutation updates in-memory state first and then persists
// the whole slice to the record store as a best-effort side effect: a failed
// write is logged and never surfaced to the caller, since in-memory state
// stays authoritative for the rest of the session.
//
// Mutations are total functions: out-of-range input is clamped and unknown
// ids are silent no-ops, never errors.
//
// Store is not safe for concurrent use. All example consumers run mutations
// on a single logical thread.
type Store struct {
	records record.Store
	clock   ident.Clock
	idgen   ident.IDGenerator
	logger  logging.Logger

	pack      Pack
	templates []PackTemplate
	lastAdded *LastAdded
}

// NewStore creates a pack store, restoring state from the record store when a
// valid record exists. A missing or corrupt record silently falls back to a
// fresh empty pack.
func NewStore(records record.Store, clock ident.Clock, idgen ident.IDGenerator, logger logging.Logger) *Store {
	s := &Store{
		records: records,
		clock:   clock,
		idgen:   idgen,
		logger:  logger,
	}

	if s.restore() {
		return s
	}

	now := clock.Now()
	s.pack = Pack{
		ID:        idgen.New(),
		Name:      "Current Pack",
		Items:     []PackItem{},
		BagWeight: 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s
}

// restore loads persisted state, reporting whether it succeeded.
func (s *Store) restore() bool {
	data, found, err := s.records.Load(recordKey)
	if err != nil {
		s.logger.Warn("loading pack state failed, starting fresh", "error", err)
		return false
	}
	if !found {
		return false
	}

	rec, err := decodeState(data)
	if err != nil {
		s.logger.Warn("pack state record is corrupt, starting fresh", "error", err)
		return false
	}
	if rec.Version > recordVersion {
		s.logger.Warn("pack state record is from a newer version, starting fresh",
			"recordVersion", rec.Version, "supported", recordVersion)
		return false
	}

	s.pack = rec.Pack
	if s.pack.Items == nil {
		s.pack.Items = []PackItem{}
	}
	s.templates = rec.Templates
	s.lastAdded = rec.LastAdded
	return true
}

// persist writes the current state. Failures are logged, never returned.
func (s *Store) persist() {
	data, err := encodeState(stateRecord{
		Version:   recordVersion,
		Pack:      s.pack,
		Templates: s.templates,
		LastAdded: s.lastAdded,
	})
	if err != nil {
		s.logger.Error("encoding pack state failed", "error", err)
		return
	}
	if err := s.records.Save(recordKey, data); err != nil {
		s.logger.Warn("persisting pack state failed", "error", err)
	}
}

// touch refreshes the pack's UpdatedAt timestamp.
func (s *Store) touch() {
	s.pack.UpdatedAt = s.clock.Now()
}

// Pack returns a deep copy of the current pack.
func (s *Store) Pack() Pack {
	p := s.pack
	p.Items = cloneItems(p.Items)
	if p.Allowance != nil {
		a := *p.Allowance
		p.Allowance = &a
	}
	return p
}

// Items returns a deep copy of the current pack's items.
func (s *Store) Items() []PackItem {
	return cloneItems(s.pack.Items)
}

// Templates returns a deep copy of the saved templates, most recent first.
func (s *Store) Templates() []PackTemplate {
	out := make([]PackTemplate, len(s.templates))
	for i, t := range s.templates {
		t.Items = cloneItems(t.Items)
		out[i] = t
	}
	return out
}

// LastAdded returns the most recently added item hint, or nil.
func (s *Store) LastAdded() *LastAdded {
	if s.lastAdded == nil {
		return nil
	}
	la := *s.lastAdded
	return &la
}

// AddToPack adds quantity pieces of a closet item to the pack. If the item is
// already packed its quantity accumulates and an incoming per-piece weight
// replaces the stored one; otherwise a new entry is appended. The LastAdded
// hint is refreshed either way.
func (s *Store) AddToPack(item ClosetItem, quantity int, note string) {
	found := false
	for i := range s.pack.Items {
		if s.pack.Items[i].ID != item.ID {
			continue
		}
		s.pack.Items[i].Quantity += quantity
		if item.WeightPerUnit != nil {
			w := *item.WeightPerUnit
			s.pack.Items[i].WeightPerUnit = &w
		}
		found = true
		break
	}

	if !found {
		var weight *float64
		if item.WeightPerUnit != nil {
			w := *item.WeightPerUnit
			weight = &w
		}
		s.pack.Items = append(s.pack.Items, PackItem{
			ID:            item.ID,
			Name:          item.Name,
			CategoryID:    item.CategoryID,
			Quantity:      quantity,
			Note:          note,
			Thumbnail:     item.Thumbnail,
			WeightPerUnit: weight,
		})
	}

	s.touch()
	s.lastAdded = &LastAdded{
		ID:        item.ID,
		Name:      item.Name,
		Thumbnail: item.Thumbnail,
		At:        s.pack.UpdatedAt,
	}
	s.persist()
}

// RemoveFromPack deletes the item with the given id. Unknown ids are a no-op,
// so removing twice is safe.
func (s *Store) RemoveFromPack(itemID string) {
	items := s.pack.Items[:0:0]
	for _, it := range s.pack.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	s.pack.Items = items
	s.touch()
	s.persist()
}

// SetQuantity sets an item's quantity, clamped to zero. A zero quantity keeps
// the entry in the list; callers remove explicitly.
func (s *Store) SetQuantity(itemID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i := range s.pack.Items {
		if s.pack.Items[i].ID == itemID {
			s.pack.Items[i].Quantity = quantity
			break
		}
	}
	s.touch()
	s.persist()
}

// SetNote replaces an item's note. Unknown ids are a no-op.
func (s *Store) SetNote(itemID string, note string) {
	for i := range s.pack.Items {
		if s.pack.Items[i].ID == itemID {
			s.pack.Items[i].Note = note
			break
		}
	}
	s.touch()
	s.persist()
}

// SetItemWeight replaces an item's per-piece weight in kg. A nil weight
// clears it; negative values clamp to zero. Unknown ids are a no-op.
func (s *Store) SetItemWeight(itemID string, weight *float64) {
	var w *float64
	if weight != nil {
		v := *weight
		if v < 0 {
			v = 0
		}
		w = &v
	}
	for i := range s.pack.Items {
		if s.pack.Items[i].ID == itemID {
			s.pack.Items[i].WeightPerUnit = w
			break
		}
	}
	s.touch()
	s.persist()
}

// ClearPack empties the item list. Bag weight, allowance and season survive.
func (s *Store) ClearPack() {
	s.pack.Items = []PackItem{}
	s.touch()
	s.persist()
}

// SetBagWeight sets the empty bag weight in kg, clamped to zero.
func (s *Store) SetBagWeight(weight float64) {
	if weight < 0 {
		weight = 0
	}
	s.pack.BagWeight = weight
	s.touch()
	s.persist()
}

// SetAllowance sets the airline weight limit in kg. A nil weight clears the
// limit; negative values clamp to zero.
func (s *Store) SetAllowance(weight *float64) {
	if weight == nil {
		s.pack.Allowance = nil
	} else {
		v := *weight
		if v < 0 {
			v = 0
		}
		s.pack.Allowance = &v
	}
	s.touch()
	s.persist()
}

// SetSeason tags the pack with a season.
func (s *Store) SetSeason(season Season) {
	s.pack.Season = season
	s.touch()
	s.persist()
}

// SaveTemplate snapshots the current items into a new template, prepended so
// templates list most-recent-first. The live pack is untouched.
func (s *Store) SaveTemplate(name string, season Season) PackTemplate {
	tpl := PackTemplate{
		ID:        s.idgen.New(),
		Name:      name,
		Season:    season,
		Items:     cloneItems(s.pack.Items),
		CreatedAt: s.clock.Now(),
	}
	s.templates = append([]PackTemplate{tpl}, s.templates...)
	s.persist()

	out := tpl
	out.Items = cloneItems(tpl.Items)
	return out
}

// ImportTemplate adds a template with the given items, e.g. one shared from
// another device. Like SaveTemplate it prepends and leaves the live pack
// untouched.
func (s *Store) ImportTemplate(name string, season Season, items []PackItem) PackTemplate {
	tpl := PackTemplate{
		ID:        s.idgen.New(),
		Name:      name,
		Season:    season,
		Items:     cloneItems(items),
		CreatedAt: s.clock.Now(),
	}
	s.templates = append([]PackTemplate{tpl}, s.templates...)
	s.persist()

	out := tpl
	out.Items = cloneItems(tpl.Items)
	return out
}

// LoadTemplate replaces the pack's items with a copy of the template's items.
// Bag weight and allowance are untouched. Unknown ids are a no-op.
func (s *Store) LoadTemplate(id string) {
	for _, t := range s.templates {
		if t.ID == id {
			s.pack.Items = cloneItems(t.Items)
			s.touch()
			s.persist()
			return
		}
	}
}

// DeleteTemplate removes a template by id. Unknown ids are a no-op.
func (s *Store) DeleteTemplate(id string) {
	templates := s.templates[:0:0]
	for _, t := range s.templates {
		if t.ID != id {
			templates = append(templates, t)
		}
	}
	s.templates = templates
	s.persist()
}

// ClearLastAdded drops the last-added hint.
func (s *Store) ClearLastAdded() {
	s.lastAdded = nil
	s.persist()
}
