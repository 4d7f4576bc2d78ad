package pack

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"packlist/internal/logging"
	"packlist/internal/record"
	"packlist/internal/testutil"
)

func newTestStore(t *testing.T) (*Store, *record.MemoryStore, *testutil.StubClock) {
	t.Helper()
	records := testutil.NewTestRecordStore()
	clock := testutil.FixedClock()
	return NewStore(records, clock, testutil.NewStubIDGenerator(), logging.NewNopLogger()), records, clock
}

func floatPtr(v float64) *float64 { return &v }

func TestNewStore_FreshPack(t *testing.T) {
	store, _, clock := newTestStore(t)

	p := store.Pack()
	if p.Name != "Current Pack" {
		t.Errorf("Name = %q, want %q", p.Name, "Current Pack")
	}
	if p.ID == "" {
		t.Error("ID is empty")
	}
	if len(p.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(p.Items))
	}
	if !p.CreatedAt.Equal(clock.Now()) {
		t.Errorf("CreatedAt = %v, want %v", p.CreatedAt, clock.Now())
	}
	if store.LastAdded() != nil {
		t.Error("LastAdded() != nil for fresh store")
	}
}

func TestNewStore_RestoresPersistedState(t *testing.T) {
	records := testutil.NewTestRecordStore()
	clock := testutil.FixedClock()

	first := NewStore(records, clock, testutil.NewStubIDGenerator(), logging.NewNopLogger())
	first.AddToPack(ClosetItem{ID: "shirt", Name: "Shirt", WeightPerUnit: floatPtr(0.2)}, 3, "rolled")
	first.SetBagWeight(1.5)
	first.SetAllowance(floatPtr(23))
	first.SetSeason(SeasonSummer)

	second := NewStore(records, clock, testutil.NewStubIDGenerator(), logging.NewNopLogger())
	p := second.Pack()
	if len(p.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(p.Items))
	}
	it := p.Items[0]
	if it.ID != "shirt" || it.Quantity != 3 || it.Note != "rolled" {
		t.Errorf("restored item = %+v", it)
	}
	if it.WeightPerUnit == nil || *it.WeightPerUnit != 0.2 {
		t.Errorf("WeightPerUnit = %v, want 0.2", it.WeightPerUnit)
	}
	if p.BagWeight != 1.5 {
		t.Errorf("BagWeight = %v, want 1.5", p.BagWeight)
	}
	if p.Allowance == nil || *p.Allowance != 23 {
		t.Errorf("Allowance = %v, want 23", p.Allowance)
	}
	if p.Season != SeasonSummer {
		t.Errorf("Season = %q, want %q", p.Season, SeasonSummer)
	}
	la := second.LastAdded()
	if la == nil || la.ID != "shirt" {
		t.Errorf("LastAdded() = %+v, want id shirt", la)
	}
}

func TestNewStore_CorruptRecordStartsFresh(t *testing.T) {
	records := testutil.NewTestRecordStore()
	if err := records.Save("pack-store", []byte("{not json")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	store := NewStore(records, testutil.FixedClock(), testutil.NewStubIDGenerator(), logging.NewNopLogger())
	if got := store.Pack().Name; got != "Current Pack" {
		t.Errorf("Name = %q, want fresh pack", got)
	}
}

func TestNewStore_NewerVersionStartsFresh(t *testing.T) {
	records := testutil.NewTestRecordStore()
	if err := records.Save("pack-store", []byte(`{"version":99,"pack":{"name":"Future"}}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	store := NewStore(records, testutil.FixedClock(), testutil.NewStubIDGenerator(), logging.NewNopLogger())
	if got := store.Pack().Name; got != "Current Pack" {
		t.Errorf("Name = %q, want fresh pack", got)
	}
}

func TestStore_AddToPack(t *testing.T) {
	t.Run("accumulates quantity for existing item", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		store.AddToPack(ClosetItem{ID: "socks", Name: "Socks"}, 2, "")
		store.AddToPack(ClosetItem{ID: "socks", Name: "Socks"}, 3, "")

		items := store.Items()
		if len(items) != 1 {
			t.Fatalf("len(items) = %d, want 1", len(items))
		}
		if items[0].Quantity != 5 {
			t.Errorf("Quantity = %d, want 5", items[0].Quantity)
		}
	})

	t.Run("incoming weight replaces stored weight", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		store.AddToPack(ClosetItem{ID: "coat", Name: "Coat", WeightPerUnit: floatPtr(1.2)}, 1, "")
		store.AddToPack(ClosetItem{ID: "coat", Name: "Coat", WeightPerUnit: floatPtr(1.4)}, 1, "")

		items := store.Items()
		if items[0].WeightPerUnit == nil || *items[0].WeightPerUnit != 1.4 {
			t.Errorf("WeightPerUnit = %v, want 1.4", items[0].WeightPerUnit)
		}
	})

	t.Run("nil weight keeps stored weight", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		store.AddToPack(ClosetItem{ID: "coat", Name: "Coat", WeightPerUnit: floatPtr(1.2)}, 1, "")
		store.AddToPack(ClosetItem{ID: "coat", Name: "Coat"}, 1, "")

		items := store.Items()
		if items[0].WeightPerUnit == nil || *items[0].WeightPerUnit != 1.2 {
			t.Errorf("WeightPerUnit = %v, want 1.2", items[0].WeightPerUnit)
		}
	})

	t.Run("refreshes last added hint", func(t *testing.T) {
		store, _, clock := newTestStore(t)

		store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "")
		clock.Advance(time.Minute)
		store.AddToPack(ClosetItem{ID: "b", Name: "B", Thumbnail: "b.png"}, 1, "")

		la := store.LastAdded()
		if la == nil {
			t.Fatal("LastAdded() = nil")
		}
		if la.ID != "b" || la.Thumbnail != "b.png" {
			t.Errorf("LastAdded() = %+v, want id b", la)
		}
		if !la.At.Equal(clock.Now()) {
			t.Errorf("At = %v, want %v", la.At, clock.Now())
		}
	})
}

func TestStore_RemoveFromPack(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "")
	store.AddToPack(ClosetItem{ID: "b", Name: "B"}, 1, "")

	store.RemoveFromPack("a")
	if got := store.Pack().ItemCount(); got != 1 {
		t.Fatalf("ItemCount() = %d, want 1", got)
	}

	// removing again is a no-op
	store.RemoveFromPack("a")
	if got := store.Pack().ItemCount(); got != 1 {
		t.Errorf("ItemCount() after repeat remove = %d, want 1", got)
	}
	if store.Items()[0].ID != "b" {
		t.Errorf("remaining item = %q, want b", store.Items()[0].ID)
	}
}

func TestStore_SetQuantity(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 2, "")

	tests := []struct {
		name string
		qty  int
		want int
	}{
		{name: "sets quantity", qty: 7, want: 7},
		{name: "zero keeps the entry", qty: 0, want: 0},
		{name: "negative clamps to zero", qty: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.SetQuantity("a", tt.qty)
			items := store.Items()
			if len(items) != 1 {
				t.Fatalf("len(items) = %d, want 1", len(items))
			}
			if items[0].Quantity != tt.want {
				t.Errorf("Quantity = %d, want %d", items[0].Quantity, tt.want)
			}
		})
	}
}

func TestStore_SetNote(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "old")

	store.SetNote("a", "new")
	if got := store.Items()[0].Note; got != "new" {
		t.Errorf("Note = %q, want %q", got, "new")
	}

	store.SetNote("a", "")
	if got := store.Items()[0].Note; got != "" {
		t.Errorf("Note = %q, want empty", got)
	}
}

func TestStore_SetItemWeight(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "")

	store.SetItemWeight("a", floatPtr(0.8))
	if got := store.Items()[0].WeightPerUnit; got == nil || *got != 0.8 {
		t.Errorf("WeightPerUnit = %v, want 0.8", got)
	}

	store.SetItemWeight("a", floatPtr(-1))
	if got := store.Items()[0].WeightPerUnit; got == nil || *got != 0 {
		t.Errorf("WeightPerUnit = %v, want 0 after negative clamp", got)
	}

	store.SetItemWeight("a", nil)
	if got := store.Items()[0].WeightPerUnit; got != nil {
		t.Errorf("WeightPerUnit = %v, want nil after clear", got)
	}
}

func TestStore_ClearPack(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "")
	store.SetBagWeight(2)
	store.SetAllowance(floatPtr(20))
	store.SetSeason(SeasonWinter)

	store.ClearPack()

	p := store.Pack()
	if len(p.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(p.Items))
	}
	if p.BagWeight != 2 {
		t.Errorf("BagWeight = %v, want 2", p.BagWeight)
	}
	if p.Allowance == nil || *p.Allowance != 20 {
		t.Errorf("Allowance = %v, want 20", p.Allowance)
	}
	if p.Season != SeasonWinter {
		t.Errorf("Season = %q, want %q", p.Season, SeasonWinter)
	}
}

func TestStore_SetBagWeight_ClampsNegative(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.SetBagWeight(-5)
	if got := store.Pack().BagWeight; got != 0 {
		t.Errorf("BagWeight = %v, want 0", got)
	}
}

func TestStore_SetAllowance(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.SetAllowance(floatPtr(-5))
	if got := store.Pack().Allowance; got == nil || *got != 0 {
		t.Errorf("Allowance = %v, want 0 after negative clamp", got)
	}

	store.SetAllowance(nil)
	if got := store.Pack().Allowance; got != nil {
		t.Errorf("Allowance = %v, want nil after clear", got)
	}
}

func TestStore_Templates(t *testing.T) {
	t.Run("save snapshots items and prepends", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "")

		first := store.SaveTemplate("First", SeasonSummer)
		store.AddToPack(ClosetItem{ID: "b", Name: "B"}, 1, "")
		second := store.SaveTemplate("Second", "")

		templates := store.Templates()
		if len(templates) != 2 {
			t.Fatalf("len(templates) = %d, want 2", len(templates))
		}
		if templates[0].ID != second.ID {
			t.Errorf("templates[0] = %q, want most recent %q", templates[0].ID, second.ID)
		}
		if templates[1].ID != first.ID {
			t.Errorf("templates[1] = %q, want %q", templates[1].ID, first.ID)
		}
		if len(templates[1].Items) != 1 {
			t.Errorf("first template has %d items, want 1", len(templates[1].Items))
		}
		if templates[0].Season != "" || templates[1].Season != SeasonSummer {
			t.Errorf("seasons = %q/%q", templates[0].Season, templates[1].Season)
		}
	})

	t.Run("load replaces items without touching bag or allowance", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "")
		tpl := store.SaveTemplate("Trip", "")

		store.ClearPack()
		store.AddToPack(ClosetItem{ID: "x", Name: "X"}, 9, "")
		store.SetBagWeight(1)
		store.SetAllowance(floatPtr(15))

		store.LoadTemplate(tpl.ID)

		p := store.Pack()
		if len(p.Items) != 1 || p.Items[0].ID != "a" {
			t.Fatalf("Items = %+v, want [a]", p.Items)
		}
		if p.BagWeight != 1 || p.Allowance == nil || *p.Allowance != 15 {
			t.Errorf("BagWeight = %v, Allowance = %v", p.BagWeight, p.Allowance)
		}
	})

	t.Run("load unknown id is a no-op", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "")

		store.LoadTemplate("missing")
		if got := store.Pack().ItemCount(); got != 1 {
			t.Errorf("ItemCount() = %d, want 1", got)
		}
	})

	t.Run("loaded items are copies", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		store.AddToPack(ClosetItem{ID: "a", Name: "A", WeightPerUnit: floatPtr(0.5)}, 1, "")
		tpl := store.SaveTemplate("Trip", "")

		store.LoadTemplate(tpl.ID)
		store.SetQuantity("a", 42)
		store.SetItemWeight("a", floatPtr(9))

		templates := store.Templates()
		if got := templates[0].Items[0].Quantity; got != 1 {
			t.Errorf("template quantity = %d, want 1 after pack mutation", got)
		}
		if got := templates[0].Items[0].WeightPerUnit; got == nil || *got != 0.5 {
			t.Errorf("template weight = %v, want 0.5 after pack mutation", got)
		}
	})

	t.Run("delete removes by id", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		tpl := store.SaveTemplate("Trip", "")
		store.SaveTemplate("Keep", "")

		store.DeleteTemplate(tpl.ID)
		store.DeleteTemplate("missing")

		templates := store.Templates()
		if len(templates) != 1 {
			t.Fatalf("len(templates) = %d, want 1", len(templates))
		}
		if templates[0].Name != "Keep" {
			t.Errorf("remaining template = %q, want Keep", templates[0].Name)
		}
	})

	t.Run("import adds a template without touching the pack", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		items := []PackItem{{ID: "a", Name: "A", Quantity: 2}}
		tpl := store.ImportTemplate("Shared", SeasonWinter, items)

		if tpl.ID == "" {
			t.Error("imported template has empty id")
		}
		if got := store.Pack().ItemCount(); got != 0 {
			t.Errorf("pack ItemCount() = %d, want 0", got)
		}
		templates := store.Templates()
		if len(templates) != 1 || templates[0].Name != "Shared" {
			t.Fatalf("templates = %+v", templates)
		}
	})
}

func TestStore_PersistsThroughSQLiteBackend(t *testing.T) {
	records := testutil.NewTestSQLiteStore(t)

	first := NewStore(records, testutil.FixedClock(), testutil.NewStubIDGenerator(), logging.NewNopLogger())
	first.AddToPack(ClosetItem{ID: "shirt", Name: "Shirt"}, 2, "")
	first.SetBagWeight(1.5)

	second := NewStore(records, testutil.FixedClock(), testutil.NewStubIDGenerator(), logging.NewNopLogger())
	p := second.Pack()
	if len(p.Items) != 1 || p.Items[0].Quantity != 2 {
		t.Errorf("restored items = %+v", p.Items)
	}
	if p.BagWeight != 1.5 {
		t.Errorf("BagWeight = %v, want 1.5", p.BagWeight)
	}
}

func TestStore_PersistsThroughEncryptedStore(t *testing.T) {
	inner := testutil.NewTestRecordStore()
	records := record.NewEncryptedStore(inner, testutil.NewTestCipher(t))

	first := NewStore(records, testutil.FixedClock(), testutil.NewStubIDGenerator(), logging.NewNopLogger())
	first.AddToPack(ClosetItem{ID: "shirt", Name: "Shirt"}, 1, "secret note")

	// the backing store only ever sees ciphertext
	raw, found, err := inner.Load("pack-store")
	if err != nil || !found {
		t.Fatalf("inner Load() = %v, found %v", err, found)
	}
	if bytes.Contains(raw, []byte("secret note")) {
		t.Error("backing store holds plaintext record")
	}

	second := NewStore(records, testutil.FixedClock(), testutil.NewStubIDGenerator(), logging.NewNopLogger())
	items := second.Items()
	if len(items) != 1 || items[0].Note != "secret note" {
		t.Errorf("restored items = %+v", items)
	}
}

func TestStore_ClearLastAdded(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "")

	store.ClearLastAdded()
	if store.LastAdded() != nil {
		t.Error("LastAdded() != nil after clear")
	}
}

func TestStore_AccessorsReturnCopies(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.AddToPack(ClosetItem{ID: "a", Name: "A", WeightPerUnit: floatPtr(0.5)}, 1, "")

	items := store.Items()
	items[0].Quantity = 99
	*items[0].WeightPerUnit = 99

	fresh := store.Items()
	if fresh[0].Quantity != 1 {
		t.Errorf("Quantity = %d, want 1 after caller mutation", fresh[0].Quantity)
	}
	if *fresh[0].WeightPerUnit != 0.5 {
		t.Errorf("WeightPerUnit = %v, want 0.5 after caller mutation", *fresh[0].WeightPerUnit)
	}
}

func TestStore_PersistFailureIsSwallowed(t *testing.T) {
	records := failingRecordStore{}
	clock := testutil.FixedClock()
	store := NewStore(records, clock, testutil.NewStubIDGenerator(), logging.NewNopLogger())

	// mutations still apply in memory
	store.AddToPack(ClosetItem{ID: "a", Name: "A"}, 1, "")
	if got := store.Pack().ItemCount(); got != 1 {
		t.Errorf("ItemCount() = %d, want 1", got)
	}
}

type failingRecordStore struct{}

func (failingRecordStore) Load(string) ([]byte, bool, error) { return nil, false, nil }
func (failingRecordStore) Save(string, []byte) error         { return errors.New("save failed") }
func (failingRecordStore) Close() error                      { return nil }
