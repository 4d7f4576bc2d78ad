package essentials

import "testing"

func TestSeasonScope_Matches(t *testing.T) {
	tests := []struct {
		name   string
		scope  SeasonScope
		season Season
		want   bool
	}{
		{name: "wildcard matches any season", scope: AllSeasons(), season: SeasonWinter, want: true},
		{name: "listed season matches", scope: Seasons(SeasonSummer, SeasonSpring), season: SeasonSpring, want: true},
		{name: "unlisted season does not match", scope: Seasons(SeasonSummer), season: SeasonWinter, want: false},
		{name: "zero scope matches nothing", scope: SeasonScope{}, season: SeasonSummer, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scope.Matches(tt.season); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.season, got, tt.want)
			}
		})
	}
}

func TestSeasonScope_JSON(t *testing.T) {
	t.Run("wildcard marshals as all", func(t *testing.T) {
		data, err := json.Marshal(AllSeasons())
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != `["all"]` {
			t.Errorf("Marshal() = %s, want [\"all\"]", data)
		}
	})

	t.Run("listed seasons round-trip", func(t *testing.T) {
		data, err := json.Marshal(Seasons(SeasonWinter, SeasonAutumn))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != `["winter","autumn"]` {
			t.Errorf("Marshal() = %s", data)
		}

		var got SeasonScope
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if got.Any || len(got.Seasons) != 2 || got.Seasons[0] != SeasonWinter {
			t.Errorf("Unmarshal() = %+v", got)
		}
	})

	t.Run("all tag parses as wildcard", func(t *testing.T) {
		var got SeasonScope
		if err := json.Unmarshal([]byte(`["all"]`), &got); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if !got.Any {
			t.Error("Any = false, want true")
		}
	})
}

func TestTripScope_JSON(t *testing.T) {
	data, err := json.Marshal(Trips(TripBusiness, TripBeach))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `["business","beach"]` {
		t.Errorf("Marshal() = %s", data)
	}

	var got TripScope
	if err := json.Unmarshal([]byte(`["all"]`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !got.Any {
		t.Error("Any = false for all tag, want true")
	}
}
