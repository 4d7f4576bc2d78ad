package essentials

import "time"

// Built-in catalog. Never persisted: it is reconstructed from this seed on
// every start so catalog updates ship with the code instead of going stale in
// stored records.
func builtinEssentials() []TravelEssential {
	return []TravelEssential{
		// General essentials
		{
			ID:          "passport",
			Name:        "Passport",
			Description: "Primary travel document",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   AllTrips(),
			Priority:    PriorityHigh,
		},
		{
			ID:          "id_card",
			Name:        "ID Card",
			Description: "Local identification",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   AllTrips(),
			Priority:    PriorityHigh,
		},
		{
			ID:          "wallet",
			Name:        "Wallet",
			Description: "Money and cards",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   AllTrips(),
			Priority:    PriorityHigh,
		},
		{
			ID:           "phone_charger",
			Name:         "Phone Charger",
			Description:  "Keeps the phone alive on the road",
			IsRequired:   true,
			Seasons:      AllSeasons(),
			TripTypes:    AllTrips(),
			Priority:     PriorityHigh,
			Alternatives: []string{"power bank"},
		},

		// Basic clothing
		{
			ID:          "underwear",
			Name:        "Underwear",
			Description: "One set per day of travel",
			CategoryID:  "clothing",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   AllTrips(),
			Priority:    PriorityHigh,
		},
		{
			ID:          "socks",
			Name:        "Socks",
			Description: "One pair per day of travel",
			CategoryID:  "clothing",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   AllTrips(),
			Priority:    PriorityHigh,
		},

		// Toiletries
		{
			ID:          "toothbrush",
			Name:        "Toothbrush",
			Description: "Personal hygiene",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   AllTrips(),
			Priority:    PriorityHigh,
		},
		{
			ID:          "toothpaste",
			Name:        "Toothpaste",
			Description: "Personal hygiene",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   AllTrips(),
			Priority:    PriorityHigh,
		},
		{
			ID:          "shampoo",
			Name:        "Shampoo",
			Description: "Hair care",
			IsRequired:  false,
			Seasons:     AllSeasons(),
			TripTypes:   Trips(TripLeisure, TripAdventure, TripBeach, TripCamping),
			Priority:    PriorityMedium,
		},

		// Seasonal clothing
		{
			ID:          "jacket",
			Name:        "Jacket",
			Description: "For cold weather",
			CategoryID:  "clothing",
			IsRequired:  true,
			Seasons:     Seasons(SeasonWinter, SeasonAutumn),
			TripTypes:   AllTrips(),
			Priority:    PriorityHigh,
		},
		{
			ID:           "sunscreen",
			Name:         "Sunscreen",
			Description:  "Sun protection",
			IsRequired:   true,
			Seasons:      Seasons(SeasonSummer),
			TripTypes:    Trips(TripBeach, TripAdventure, TripLeisure),
			Priority:     PriorityHigh,
			Alternatives: []string{"sunblock"},
		},
		{
			ID:          "swimwear",
			Name:        "Swimwear",
			Description: "Beaches and pools",
			CategoryID:  "clothing",
			IsRequired:  true,
			Seasons:     Seasons(SeasonSummer),
			TripTypes:   Trips(TripBeach),
			Priority:    PriorityHigh,
		},

		// Work gear
		{
			ID:          "laptop",
			Name:        "Laptop",
			Description: "Work on the go",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   Trips(TripBusiness),
			Priority:    PriorityHigh,
		},
		{
			ID:          "business_clothes",
			Name:        "Business Attire",
			Description: "Meetings and office days",
			CategoryID:  "clothing",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   Trips(TripBusiness),
			Priority:    PriorityHigh,
		},

		// Outdoor gear
		{
			ID:          "hiking_boots",
			Name:        "Hiking Boots",
			Description: "Walking and climbing",
			CategoryID:  "shoes",
			IsRequired:  true,
			Seasons:     AllSeasons(),
			TripTypes:   Trips(TripAdventure, TripCamping),
			Priority:    PriorityHigh,
		},
		{
			ID:           "first_aid_kit",
			Name:         "First Aid Kit",
			Description:  "Minor emergencies",
			IsRequired:   false,
			Seasons:      AllSeasons(),
			TripTypes:    Trips(TripAdventure, TripCamping),
			Priority:     PriorityMedium,
			Alternatives: []string{"band-aid", "bandage"},
		},
	}
}

// defaultTemplates builds the non-deletable starter templates: filtered views
// of the built-in catalog per trip type.
func defaultTemplates(createdAt time.Time) []Template {
	builtin := builtinEssentials()

	forTrip := func(trip TripType) []TravelEssential {
		var out []TravelEssential
		for _, e := range builtin {
			if e.TripTypes.Matches(trip) {
				out = append(out, e)
			}
		}
		return out
	}

	return []Template{
		{
			ID:          "business_trip",
			Name:        "Business Trip",
			Description: "Essentials for a short business trip",
			Essentials:  forTrip(TripBusiness),
			CreatedAt:   createdAt,
			IsDefault:   true,
		},
		{
			ID:          "beach_vacation",
			Name:        "Beach Vacation",
			Description: "Essentials for a beach holiday",
			Essentials:  forTrip(TripBeach),
			CreatedAt:   createdAt,
			IsDefault:   true,
		},
		{
			ID:          "city_break",
			Name:        "City Break",
			Description: "Essentials for exploring cities",
			Essentials:  forTrip(TripCity),
			CreatedAt:   createdAt,
			IsDefault:   true,
		},
	}
}
