package slots

import (
	"sort"
	"strings"

	tierx "github.com/staywise/hotel-dialogue/engine/tier"
)

// Extras holds the secondary refinement slots.
type Extras struct {
	Facilities    []string
	View          string
	OpenAfterYear int
	Brand         string
}

// Record tracks everything learned about one trip. Each conversation owns
// exactly one Record; it is never shared across conversations and the host
// must serialize turns that touch the same instance.
//
// Empty string / nil means "not yet known". Adults and ConsentChildren are
// pointers because their zero values are meaningful: ConsentChildren == nil
// is "never asked", while a true value with no children means "confirmed
// traveling without children".
type Record struct {
	City           string
	BudgetPerNight string
	Location       string
	Tags           []string
	CheckIn        string
	CheckOut       string
	Adults         *int
	Children       []int
	Rooms          int
	Extras         Extras

	ConsentChildren *bool

	// cityTier caches the classifier output for City. SetCity drops it so a
	// stale tier can never drive a policy decision for the new city.
	cityTier *tierx.Record
}

// NewRecord returns an empty record with the rooms default applied.
func NewRecord() *Record {
	return &Record{Rooms: 1}
}

// Reset returns the record to its initial empty state.
func (r *Record) Reset() {
	*r = Record{Rooms: 1}
}

// SetCity records the destination and invalidates the cached tier.
func (r *Record) SetCity(city string) bool {
	city = strings.TrimSpace(city)
	if city == "" {
		return false
	}
	if !strings.EqualFold(city, r.City) {
		r.cityTier = nil
	}
	r.City = city
	return true
}

// CityTier returns the tier record for the current city, computing and
// caching it on first read after a city change.
func (r *Record) CityTier(c *tierx.Classifier) tierx.Record {
	if r.cityTier != nil {
		return *r.cityTier
	}
	if r.City == "" || c == nil {
		return tierx.Record{Tier: tierx.Small, IsFallback: true}
	}
	rec := c.Classify(r.City)
	r.cityTier = &rec
	return rec
}

func (r *Record) SetBudgetPerNight(budget string) bool {
	budget = strings.TrimSpace(budget)
	if budget == "" {
		return false
	}
	r.BudgetPerNight = budget
	return true
}

func (r *Record) SetLocation(location string) bool {
	location = strings.TrimSpace(location)
	if location == "" {
		return false
	}
	r.Location = location
	return true
}

func (r *Record) SetCheckIn(date string) bool {
	date = strings.TrimSpace(date)
	if date == "" {
		return false
	}
	r.CheckIn = date
	return true
}

func (r *Record) SetCheckOut(date string) bool {
	date = strings.TrimSpace(date)
	if date == "" {
		return false
	}
	r.CheckOut = date
	return true
}

func (r *Record) SetAdults(n int) bool {
	if n < 1 {
		return false
	}
	r.Adults = &n
	return true
}

// AdjustAdults shifts the adult count, clamping at one. A decrement with no
// count yet, or at the floor, is a no-op rather than an error.
func (r *Record) AdjustAdults(delta int) bool {
	current := 0
	if r.Adults != nil {
		current = *r.Adults
	}
	next := current + delta
	if next < 1 {
		return false
	}
	r.Adults = &next
	return true
}

// AdjustRooms shifts the room count with the same floor-of-one clamp.
func (r *Record) AdjustRooms(delta int) bool {
	next := r.Rooms + delta
	if next < 1 {
		return false
	}
	r.Rooms = next
	return true
}

// AddTag adds a preference tag if absent; adding twice has no extra effect.
func (r *Record) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	r.Tags = append(r.Tags, tag)
	return true
}

// ToggleTag adds the tag if absent and removes it if present.
func (r *Record) ToggleTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for i, t := range r.Tags {
		if t == tag {
			r.Tags = append(r.Tags[:i], r.Tags[i+1:]...)
			return true
		}
	}
	r.Tags = append(r.Tags, tag)
	return true
}

// AddChild records a child age, keeping the list sorted ascending and
// duplicate-free; adding an age that is already present has no effect.
func (r *Record) AddChild(age int) bool {
	if age < 0 {
		return false
	}
	for _, a := range r.Children {
		if a == age {
			return true
		}
	}
	r.Children = append(r.Children, age)
	sort.Ints(r.Children)
	return true
}

// RemoveChild removes the age by value; absence is a no-op.
func (r *Record) RemoveChild(age int) bool {
	for i, a := range r.Children {
		if a == age {
			r.Children = append(r.Children[:i], r.Children[i+1:]...)
			break
		}
	}
	return true
}

func (r *Record) SetConsentChildren(v bool) bool {
	r.ConsentChildren = &v
	return true
}

func (r *Record) AddFacility(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, f := range r.Extras.Facilities {
		if f == name {
			return true
		}
	}
	r.Extras.Facilities = append(r.Extras.Facilities, name)
	return true
}

func (r *Record) ToggleFacility(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for i, f := range r.Extras.Facilities {
		if f == name {
			r.Extras.Facilities = append(r.Extras.Facilities[:i], r.Extras.Facilities[i+1:]...)
			return true
		}
	}
	r.Extras.Facilities = append(r.Extras.Facilities, name)
	return true
}

func (r *Record) SetView(view string) bool {
	view = strings.TrimSpace(view)
	if view == "" {
		return false
	}
	r.Extras.View = view
	return true
}

func (r *Record) SetBrand(brand string) bool {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return false
	}
	r.Extras.Brand = brand
	return true
}

func (r *Record) SetOpenAfterYear(year int) bool {
	if year < 1900 {
		return false
	}
	r.Extras.OpenAfterYear = year
	return true
}
