package slots

import (
	"fmt"
	"strings"
)

// Step is the logical conversation phase. It is recomputed from the raw
// slots on every read; nothing stores it, so it cannot drift from the data.
type Step string

const (
	StepInit                 Step = "init"
	StepCollectingEssentials Step = "collecting_essentials"
	StepFirstPass            Step = "first_pass"
	StepConditionalPass      Step = "conditional_pass"
	StepPricedPass           Step = "priced_pass"
)

// RecommendationKind grades how much a recommendation may promise.
type RecommendationKind string

const (
	KindNone            RecommendationKind = ""
	KindFirstPass       RecommendationKind = "first_pass"
	KindConditionalPass RecommendationKind = "conditional_pass"
	KindPriced          RecommendationKind = "priced"
)

func (r *Record) hasRefinement() bool {
	return r.Location != "" || len(r.Tags) > 0 || r.Extras.Brand != "" || r.Extras.View != ""
}

func (r *Record) datesAndPartyKnown() bool {
	return r.CheckIn != "" && r.CheckOut != "" && r.Adults != nil
}

// Step derives the current phase. Dates plus party size always win: once
// both are known the step is PricedPass no matter what else is set, because
// that is the state with the richest obligations.
func (r *Record) Step() Step {
	if r.City == "" {
		return StepInit
	}
	if r.datesAndPartyKnown() {
		return StepPricedPass
	}
	if r.BudgetPerNight == "" {
		return StepCollectingEssentials
	}
	if r.hasRefinement() && !(r.BudgetPerNight != "" && r.Location != "") {
		return StepFirstPass
	}
	if r.Location != "" {
		return StepConditionalPass
	}
	// City and budget known, nothing to refine on yet: keep collecting.
	return StepCollectingEssentials
}

// CanRecommend reports whether a recommendation may be issued now and at
// which fidelity. Rules apply in priority order; a priced recommendation is
// withheld while the children question is still open.
func (r *Record) CanRecommend() (bool, RecommendationKind) {
	if r.City == "" {
		return false, KindNone
	}
	if r.hasRefinement() && !(r.BudgetPerNight != "" && r.Location != "") {
		return true, KindFirstPass
	}
	if r.BudgetPerNight != "" && r.Location != "" && !r.datesAndPartyKnown() {
		return true, KindConditionalPass
	}
	if r.datesAndPartyKnown() && !r.NeedsChildrenInfo() {
		return true, KindPriced
	}
	return false, KindNone
}

// NeedsChildrenInfo is true exactly when the engine is about to answer with
// prices but has never confirmed whether children travel: dates and adults
// known, no child ages recorded, and no explicit consent either way.
func (r *Record) NeedsChildrenInfo() bool {
	return len(r.Children) == 0 &&
		(r.ConsentChildren == nil || !*r.ConsentChildren) &&
		r.datesAndPartyKnown()
}

// Summary renders every set slot in a fixed field order. The output is
// deterministic and doubles as the golden form in tests.
func (r *Record) Summary() string {
	var parts []string

	if r.City != "" {
		parts = append(parts, "city: "+r.City)
	}
	if r.BudgetPerNight != "" {
		parts = append(parts, "budget: "+r.BudgetPerNight+"/night")
	}
	if r.Location != "" {
		parts = append(parts, "location: "+r.Location)
	}
	if len(r.Tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(r.Tags, ", "))
	}
	if r.CheckIn != "" && r.CheckOut != "" {
		parts = append(parts, fmt.Sprintf("dates: %s to %s", r.CheckIn, r.CheckOut))
	}
	if r.Adults != nil {
		if n := len(r.Children); n > 0 {
			ages := make([]string, n)
			for i, a := range r.Children {
				ages[i] = fmt.Sprintf("%d", a)
			}
			parts = append(parts, fmt.Sprintf("party: %d adults, %d children (ages %s)",
				*r.Adults, n, strings.Join(ages, ", ")))
		} else {
			parts = append(parts, fmt.Sprintf("party: %d adults", *r.Adults))
		}
	}
	if r.Rooms > 1 {
		parts = append(parts, fmt.Sprintf("rooms: %d", r.Rooms))
	}

	if len(parts) == 0 {
		return "nothing yet"
	}
	return strings.Join(parts, " | ")
}
