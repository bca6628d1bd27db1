package slots

// Patch is a partial record produced by the free-text extractor. Only
// fields with evidence are populated; callers must never read an absent
// field as "set to empty".
type Patch struct {
	City           string
	BudgetPerNight string
	Location       string
	CheckIn        string
	CheckOut       string
	Adults         *int
	Rooms          *int
	Children       []int
	Tags           []string
	Facilities     []string
	View           string
	Brand          string
	OpenAfterYear  int
}

// IsZero reports whether the patch carries no evidence at all.
func (p Patch) IsZero() bool {
	return p.City == "" && p.BudgetPerNight == "" && p.Location == "" &&
		p.CheckIn == "" && p.CheckOut == "" && p.Adults == nil && p.Rooms == nil &&
		len(p.Children) == 0 && len(p.Tags) == 0 && len(p.Facilities) == 0 &&
		p.View == "" && p.Brand == "" && p.OpenAfterYear == 0
}

// Apply merges a patch into the record: scalars overwrite (last write
// wins), set- and list-valued fields union. Returns whether anything
// changed shape or value.
func (r *Record) Apply(p Patch) bool {
	changed := false

	if p.City != "" && r.SetCity(p.City) {
		changed = true
	}
	if p.BudgetPerNight != "" && r.SetBudgetPerNight(p.BudgetPerNight) {
		changed = true
	}
	if p.Location != "" && r.SetLocation(p.Location) {
		changed = true
	}
	if p.CheckIn != "" && r.SetCheckIn(p.CheckIn) {
		changed = true
	}
	if p.CheckOut != "" && r.SetCheckOut(p.CheckOut) {
		changed = true
	}
	if p.Adults != nil && r.SetAdults(*p.Adults) {
		changed = true
	}
	if p.Rooms != nil && *p.Rooms >= 1 {
		r.Rooms = *p.Rooms
		changed = true
	}
	for _, age := range p.Children {
		if r.AddChild(age) {
			changed = true
		}
	}
	for _, tag := range p.Tags {
		if r.AddTag(tag) {
			changed = true
		}
	}
	for _, f := range p.Facilities {
		if r.AddFacility(f) {
			changed = true
		}
	}
	if p.View != "" && r.SetView(p.View) {
		changed = true
	}
	if p.Brand != "" && r.SetBrand(p.Brand) {
		changed = true
	}
	if p.OpenAfterYear != 0 && r.SetOpenAfterYear(p.OpenAfterYear) {
		changed = true
	}

	return changed
}
