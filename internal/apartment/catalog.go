package apartment

import "sort"

// Apartment is static listing data. Rates are whole naira per night.
type Apartment struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Bedrooms    int    `json:"bedrooms"`
	MaxGuests   int    `json:"max_guests"`
	NightlyRate int64  `json:"nightly_rate"`
	DisplayRank int    `json:"-"`
}

type Catalog struct {
	byID map[string]Apartment
}

func NewCatalog(apartments ...Apartment) *Catalog {
	c := &Catalog{byID: make(map[string]Apartment, len(apartments))}
	for _, a := range apartments {
		c.byID[a.ID] = a
	}
	return c
}

// Default is the live listing of the business.
func Default() *Catalog {
	return NewCatalog(
		Apartment{
			ID:          "premium-apartment",
			Slug:        "premium-apartment",
			Name:        "Premium 1-Bedroom Apartment",
			Location:    "Wuye, Abuja",
			Bedrooms:    1,
			MaxGuests:   4,
			NightlyRate: 85000,
			DisplayRank: 1,
		},
		Apartment{
			ID:          "classic-studio",
			Slug:        "classic-studio",
			Name:        "Classic Studio",
			Location:    "Wuye, Abuja",
			Bedrooms:    1,
			MaxGuests:   2,
			NightlyRate: 45000,
			DisplayRank: 2,
		},
		Apartment{
			ID:          "delux-royal",
			Slug:        "delux-royal",
			Name:        "Delux Royal Studio",
			Location:    "Wuye, Abuja",
			Bedrooms:    1,
			MaxGuests:   3,
			NightlyRate: 60000,
			DisplayRank: 3,
		},
		Apartment{
			ID:          "prestige-suite",
			Slug:        "prestige-suite",
			Name:        "Prestige Suite",
			Location:    "Lugbe, Abuja",
			Bedrooms:    2,
			MaxGuests:   5,
			NightlyRate: 70000,
			DisplayRank: 4,
		},
	)
}

func (c *Catalog) Get(id string) (Apartment, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// List returns the apartments in display order.
func (c *Catalog) List() []Apartment {
	out := make([]Apartment, 0, len(c.byID))
	for _, a := range c.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayRank != out[j].DisplayRank {
			return out[i].DisplayRank < out[j].DisplayRank
		}
		return out[i].ID < out[j].ID
	})
	return out
}
