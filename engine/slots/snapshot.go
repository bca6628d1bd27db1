package slots

import tierx "github.com/staywise/hotel-dialogue/engine/tier"

// Snapshot is the flat, order-stable persisted form of a Record: only
// primitive values, so hosts can serialize and restore it between turns
// without engine-specific logic.
type Snapshot struct {
	City             string   `json:"city"`
	BudgetPerNight   string   `json:"budget_per_night"`
	Location         string   `json:"location"`
	Tags             []string `json:"tags"`
	CheckIn          string   `json:"check_in"`
	CheckOut         string   `json:"check_out"`
	Adults           *int     `json:"adults"`
	Children         []int    `json:"children"`
	Rooms            int      `json:"rooms"`
	Facilities       []string `json:"facilities"`
	View             string   `json:"view"`
	OpenAfterYear    int      `json:"open_after_year"`
	Brand            string   `json:"brand"`
	CityTier         string   `json:"city_tier"`
	CityTierCount    int      `json:"city_tier_count"`
	CityTierFallback bool     `json:"city_tier_fallback"`
	ConsentChildren  *bool    `json:"consent_children"`
}

// Snapshot flattens the record. Slices are copied so the snapshot stays
// valid after further mutation.
func (r *Record) Snapshot() Snapshot {
	s := Snapshot{
		City:           r.City,
		BudgetPerNight: r.BudgetPerNight,
		Location:       r.Location,
		Tags:           append([]string(nil), r.Tags...),
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		Children:       append([]int(nil), r.Children...),
		Rooms:          r.Rooms,
		Facilities:     append([]string(nil), r.Extras.Facilities...),
		View:           r.Extras.View,
		OpenAfterYear:  r.Extras.OpenAfterYear,
		Brand:          r.Extras.Brand,
	}
	if r.Adults != nil {
		v := *r.Adults
		s.Adults = &v
	}
	if r.ConsentChildren != nil {
		v := *r.ConsentChildren
		s.ConsentChildren = &v
	}
	if r.cityTier != nil {
		s.CityTier = string(r.cityTier.Tier)
		s.CityTierCount = r.cityTier.EstimatedCount
		s.CityTierFallback = r.cityTier.IsFallback
	}
	return s
}

// FromSnapshot rebuilds a record. A snapshot with no rooms value restores
// the default of one so the floor invariant holds.
func FromSnapshot(s Snapshot) *Record {
	r := &Record{
		City:           s.City,
		BudgetPerNight: s.BudgetPerNight,
		Location:       s.Location,
		Tags:           append([]string(nil), s.Tags...),
		CheckIn:        s.CheckIn,
		CheckOut:       s.CheckOut,
		Children:       append([]int(nil), s.Children...),
		Rooms:          s.Rooms,
		Extras: Extras{
			Facilities:    append([]string(nil), s.Facilities...),
			View:          s.View,
			OpenAfterYear: s.OpenAfterYear,
			Brand:         s.Brand,
		},
	}
	if r.Rooms < 1 {
		r.Rooms = 1
	}
	if s.Adults != nil {
		v := *s.Adults
		r.Adults = &v
	}
	if s.ConsentChildren != nil {
		v := *s.ConsentChildren
		r.ConsentChildren = &v
	}
	if s.CityTier != "" {
		r.cityTier = &tierx.Record{
			Tier:           tierx.Tier(s.CityTier),
			EstimatedCount: s.CityTierCount,
			IsFallback:     s.CityTierFallback,
		}
	}
	return r
}
