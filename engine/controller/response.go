package controller

import (
	"fmt"
	"strconv"

	contractx "github.com/staywise/hotel-dialogue/engine/contract"
	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
	tierx "github.com/staywise/hotel-dialogue/engine/tier"
)

// Keyboard descriptor names. The renderer maps these to concrete UI; the
// engine never builds buttons.
const (
	KeyboardMainMenu             = "main_menu"
	KeyboardEssentialInfo        = "essential_info"
	KeyboardFirstRecommendation  = "first_recommendation"
	KeyboardConditionalRecommend = "conditional_recommendation"
	KeyboardPricedRecommendation = "priced_recommendation"
	KeyboardChildrenConfirmation = "children_confirmation"
	KeyboardCitySelection        = "city_selection"
	KeyboardBudgetSelection      = "budget_selection"
	KeyboardLocationSelection    = "location_selection"
	KeyboardTagsSelection        = "tags_selection"
	KeyboardDateSelection        = "date_selection"
	KeyboardPartySelection       = "party_selection"
	KeyboardExtrasSelection      = "extras_selection"
	KeyboardFacilitiesSelection  = "facilities_selection"
	KeyboardViewSelection        = "view_selection"
	KeyboardBrandSelection       = "brand_selection"
	KeyboardOpenAfterSelection   = "open_after_selection"
	KeyboardChildAgeSelection    = "child_age_selection"
)

// StepTagAwaitingChildren overrides the priced step tag while the children
// question is unresolved.
const StepTagAwaitingChildren = "awaiting_children_confirmation"

var menuHeadlines = map[string]string{
	KeyboardCitySelection:       "Pick the city you are traveling to.",
	KeyboardBudgetSelection:     "Pick your nightly budget range.",
	KeyboardLocationSelection:   "Pick the area or landmark you want to stay near.",
	KeyboardTagsSelection:       "Toggle any extra wishes.",
	KeyboardDateSelection:       "Pick your check-in and check-out dates.",
	KeyboardPartySelection:      "Set the travel party.",
	KeyboardExtrasSelection:     "Pick further filters.",
	KeyboardFacilitiesSelection: "Toggle the facilities you care about.",
	KeyboardViewSelection:       "Pick a preferred view.",
	KeyboardBrandSelection:      "Pick a preferred hotel brand.",
	KeyboardOpenAfterSelection:  "Only show hotels opened after a given year.",
	KeyboardChildAgeSelection:   "Add each child's age.",
}

func (c *Controller) menuBundle(keyboard string) contractx.ResponseBundle {
	headline, ok := menuHeadlines[keyboard]
	if !ok {
		return c.stepBundle(c.record.Step())
	}
	return contractx.ResponseBundle{
		StepTag:  string(c.record.Step()),
		Message:  fmt.Sprintf("%s\n\nCurrent info: %s", headline, c.record.Summary()),
		Keyboard: c.keyboard(keyboard),
	}
}

func (c *Controller) keyboard(name string) contractx.KeyboardDescriptor {
	desc := contractx.KeyboardDescriptor{Name: name}
	if name == KeyboardPartySelection {
		adults := 0
		if c.record.Adults != nil {
			adults = *c.record.Adults
		}
		desc.Params = map[string]string{
			"adults":   strconv.Itoa(adults),
			"children": strconv.Itoa(len(c.record.Children)),
			"rooms":    strconv.Itoa(c.record.Rooms),
		}
	}
	return desc
}

func (c *Controller) stepBundle(step slotsx.Step) contractx.ResponseBundle {
	summary := c.record.Summary()

	switch step {
	case slotsx.StepCollectingEssentials:
		return contractx.ResponseBundle{
			StepTag:  string(step),
			Message:  c.essentialsMessage(summary),
			Keyboard: c.keyboard(KeyboardEssentialInfo),
		}
	case slotsx.StepFirstPass:
		return contractx.ResponseBundle{
			StepTag: string(step),
			Message: fmt.Sprintf("First look (no prices yet)\n\nCurrent info: %s\n\n"+
				"I can already sketch a shortlist from what you told me. "+
				"Add your nightly budget and a preferred area and I will narrow it down properly.", summary),
			Keyboard: c.keyboard(KeyboardFirstRecommendation),
		}
	case slotsx.StepConditionalPass:
		return contractx.ResponseBundle{
			StepTag: string(step),
			Message: fmt.Sprintf("Recommendation ready (no prices yet)\n\nCurrent info: %s\n\n"+
				"These will match your city, budget and location. "+
				"To include room types and prices, add check-in/check-out dates and the travel party.", summary),
			Keyboard: c.keyboard(KeyboardConditionalRecommend),
		}
	case slotsx.StepPricedPass:
		return contractx.ResponseBundle{
			StepTag: string(step),
			Message: fmt.Sprintf("Priced recommendation\n\nCurrent info: %s\n\n"+
				"I can now show room types and nightly prices for your dates and party. "+
				"Want to filter further (facilities, view, opening year)?", summary),
			Keyboard: c.keyboard(KeyboardPricedRecommendation),
		}
	default:
		return contractx.ResponseBundle{
			StepTag: string(slotsx.StepInit),
			Message: fmt.Sprintf("Hotel recommendation assistant\n\nCurrent info: %s\n\n"+
				"To get going, tell me:\n"+
				"- the city you want to stay in\n"+
				"- your nightly budget (a range in local currency)\n\n"+
				"Feel free to add other wishes too (trending, luxury, near a landmark).", summary),
			Keyboard: c.keyboard(KeyboardMainMenu),
		}
	}
}

// essentialsMessage varies with the destination's supply tier: the bigger
// the inventory, the more narrowing we insist on before answering.
func (c *Controller) essentialsMessage(summary string) string {
	rec := c.record.CityTier(c.classifier)
	city := c.record.City

	var body string
	switch {
	case rec.IsFallback:
		body = fmt.Sprintf("I don't have detailed inventory data for %s, so treat coverage as approximate. "+
			"Tell me your nightly budget and I will recommend from the options I can stand behind.", city)
	case rec.Tier == tierx.Large:
		body = fmt.Sprintf("%s has a very large hotel inventory (about %d options). "+
			"Before I recommend anything specific, tell me your nightly budget and star level, "+
			"plus any location or brand preference.", city, rec.EstimatedCount)
	case rec.Tier == tierx.Medium:
		body = fmt.Sprintf("%s has a good number of hotels (about %d options). "+
			"Tell me your nightly budget and star level, and whether a particular area matters to you.", city, rec.EstimatedCount)
	default:
		body = fmt.Sprintf("%s has a limited hotel inventory; a handful of solid picks will cover it. "+
			"A nightly budget still helps me choose between them.", city)
	}

	if c.record.BudgetPerNight != "" {
		body += "\n\nBudget noted. A preferred area or landmark is the one thing still missing."
	}

	return fmt.Sprintf("Filling in the essentials\n\nCurrent info: %s\n\n%s", summary, body)
}

func (c *Controller) childrenBundle() contractx.ResponseBundle {
	return contractx.ResponseBundle{
		StepTag: StepTagAwaitingChildren,
		Message: fmt.Sprintf("One thing before prices\n\nCurrent info: %s\n\n"+
			"Are children traveling with you? If so, give each child's age and I will only show "+
			"room types that accept that age group.", c.record.Summary()),
		Keyboard: c.keyboard(KeyboardChildrenConfirmation),
	}
}
