package essentials

import (
	"packlist/internal/ident"
	"packlist/internal/logging"
	"packlist/internal/record"
)

// recordKey is the record store key the essentials state persists under.
const recordKey = "travel-essentials-store"

const recordVersion = 1

// stateRecord is the persisted slice of the essentials store. The built-in
// catalog is deliberately absent.
type stateRecord struct {
	Version              int               `json:"version"`
	Templates            []Template        `json:"templates"`
	UserCustomEssentials []TravelEssential `json:"userCustomEssentials"`
}

// Store owns the travel-essentials rule catalog and templates. The catalog is
// split into an immutable built-in seed and user-defined custom rules; only
// the custom rules and templates persist. Like the pack store, mutations
// persist best-effort and never return errors.
//
// Store is not safe for concurrent use.
type Store struct {
	records record.Store
	clock   ident.Clock
	idgen   ident.IDGenerator
	logger  logging.Logger

	builtin   []TravelEssential
	custom    []TravelEssential
	templates []Template
}

// NewStore creates an essentials store, restoring custom rules and templates
// from the record store when a valid record exists. A missing or corrupt
// record falls back to the built-in catalog and default templates.
func NewStore(records record.Store, clock ident.Clock, idgen ident.IDGenerator, logger logging.Logger) *Store {
	s := &Store{
		records: records,
		clock:   clock,
		idgen:   idgen,
		logger:  logger,
		builtin: builtinEssentials(),
	}

	if s.restore() {
		return s
	}

	s.templates = defaultTemplates(clock.Now())
	return s
}

func (s *Store) restore() bool {
	data, found, err := s.records.Load(recordKey)
	if err != nil {
		s.logger.Warn("loading essentials state failed, using defaults", "error", err)
		return false
	}
	if !found {
		return false
	}

	var rec stateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("essentials state record is corrupt, using defaults", "error", err)
		return false
	}
	if rec.Version > recordVersion {
		s.logger.Warn("essentials state record is from a newer version, using defaults",
			"recordVersion", rec.Version, "supported", recordVersion)
		return false
	}

	s.custom = rec.UserCustomEssentials
	s.templates = rec.Templates
	return true
}

func (s *Store) persist() {
	data, err := json.Marshal(stateRecord{
		Version:              recordVersion,
		Templates:            s.templates,
		UserCustomEssentials: s.custom,
	})
	if err != nil {
		s.logger.Error("encoding essentials state failed", "error", err)
		return
	}
	if err := s.records.Save(recordKey, data); err != nil {
		s.logger.Warn("persisting essentials state failed", "error", err)
	}
}

// Essentials returns the full catalog: built-in rules followed by custom ones.
func (s *Store) Essentials() []TravelEssential {
	catalog := make([]TravelEssential, 0, len(s.builtin)+len(s.custom))
	catalog = append(catalog, cloneEssentials(s.builtin)...)
	catalog = append(catalog, cloneEssentials(s.custom)...)
	return catalog
}

// CustomEssentials returns the user-defined rules only.
func (s *Store) CustomEssentials() []TravelEssential {
	return cloneEssentials(s.custom)
}

// Templates returns the template list, most recent first.
func (s *Store) Templates() []Template {
	out := make([]Template, len(s.templates))
	for i, t := range s.templates {
		t.Essentials = cloneEssentials(t.Essentials)
		out[i] = t
	}
	return out
}

// AddEssential assigns a fresh id to the rule and appends it to the custom
// list. The built-in catalog is never touched.
func (s *Store) AddEssential(rule TravelEssential) TravelEssential {
	rule.ID = s.idgen.New()
	s.custom = append(s.custom, rule)
	s.persist()
	return rule
}

// EssentialUpdate carries the fields UpdateEssential merges into a rule.
// Nil fields are left unchanged.
type EssentialUpdate struct {
	Name         *string
	Description  *string
	CategoryID   *string
	IsRequired   *bool
	Seasons      *SeasonScope
	TripTypes    *TripScope
	Priority     *Priority
	Alternatives *[]string
}

// UpdateEssential merges the update into the rule with the given id, searched
// across both the built-in and custom lists. Built-in edits live in memory
// only: the built-in catalog is never persisted, so they last until the next
// start. The built-in/custom split itself is never changed by an update, so
// delete protection stays intact.
func (s *Store) UpdateEssential(id string, update EssentialUpdate) {
	apply := func(list []TravelEssential) bool {
		for i := range list {
			if list[i].ID != id {
				continue
			}
			applyUpdate(&list[i], update)
			return true
		}
		return false
	}

	changed := apply(s.builtin)
	if apply(s.custom) {
		changed = true
	}
	if changed {
		s.persist()
	}
}

func applyUpdate(rule *TravelEssential, update EssentialUpdate) {
	if update.Name != nil {
		rule.Name = *update.Name
	}
	if update.Description != nil {
		rule.Description = *update.Description
	}
	if update.CategoryID != nil {
		rule.CategoryID = *update.CategoryID
	}
	if update.IsRequired != nil {
		rule.IsRequired = *update.IsRequired
	}
	if update.Seasons != nil {
		rule.Seasons = *update.Seasons
	}
	if update.TripTypes != nil {
		rule.TripTypes = *update.TripTypes
	}
	if update.Priority != nil {
		rule.Priority = *update.Priority
	}
	if update.Alternatives != nil {
		rule.Alternatives = *update.Alternatives
	}
}

// RemoveEssential deletes a custom rule by id. Built-in ids are a silent
// no-op: protection is enforced here, not only in consumers.
func (s *Store) RemoveEssential(id string) {
	custom := s.custom[:0:0]
	removed := false
	for _, e := range s.custom {
		if e.ID == id {
			removed = true
			continue
		}
		custom = append(custom, e)
	}
	if !removed {
		return
	}
	s.custom = custom
	s.persist()
}

// AddTemplate assigns an id and creation time and prepends the template.
func (s *Store) AddTemplate(name, description string, rules []TravelEssential) Template {
	tpl := Template{
		ID:          s.idgen.New(),
		Name:        name,
		Description: description,
		Essentials:  cloneEssentials(rules),
		CreatedAt:   s.clock.Now(),
	}
	s.templates = append([]Template{tpl}, s.templates...)
	s.persist()
	return tpl
}

// RemoveTemplate deletes a template by id unless it is a default one.
func (s *Store) RemoveTemplate(id string) {
	templates := s.templates[:0:0]
	removed := false
	for _, t := range s.templates {
		if t.ID == id && !t.IsDefault {
			removed = true
			continue
		}
		templates = append(templates, t)
	}
	if !removed {
		return
	}
	s.templates = templates
	s.persist()
}

// CheckMissing runs the reconciliation over the full catalog. See the
// package-level CheckMissing for the algorithm.
func (s *Store) CheckMissing(items []PackedItem, season Season, trip TripType) []MissingEssential {
	catalog := make([]TravelEssential, 0, len(s.builtin)+len(s.custom))
	catalog = append(catalog, s.builtin...)
	catalog = append(catalog, s.custom...)
	return CheckMissing(catalog, items, season, trip)
}
