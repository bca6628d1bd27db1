package controller

import (
	"strings"
	"sync"
	"testing"

	contractx "github.com/staywise/hotel-dialogue/engine/contract"
	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
	tierx "github.com/staywise/hotel-dialogue/engine/tier"
)

type fakeSink struct {
	mu       sync.Mutex
	requests []contractx.RecommendationRequest
}

func (f *fakeSink) Publish(req contractx.RecommendationRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
}

func (f *fakeSink) published(t *testing.T) []contractx.RecommendationRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]contractx.RecommendationRequest(nil), f.requests...)
}

func newTestController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c, err := New(tierx.NewClassifier(), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNewRequiresClassifier(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); err == nil {
		t.Fatal("New(nil) must fail")
	}
}

func TestCitySelectionMovesToCollectingEssentials(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if got := c.Record().Step(); got != slotsx.StepInit {
		t.Fatalf("initial step = %q, want %q", got, slotsx.StepInit)
	}

	bundle := c.Process(contractx.Selection{Token: "set_city:Lisbon"})
	if got := c.Record().Step(); got != slotsx.StepCollectingEssentials {
		t.Fatalf("step after city = %q, want %q", got, slotsx.StepCollectingEssentials)
	}
	if bundle.StepTag != string(slotsx.StepCollectingEssentials) {
		t.Fatalf("StepTag = %q, want %q", bundle.StepTag, slotsx.StepCollectingEssentials)
	}
	if bundle.Keyboard.Name != KeyboardEssentialInfo {
		t.Fatalf("Keyboard = %q, want %q", bundle.Keyboard.Name, KeyboardEssentialInfo)
	}
}

func TestBudgetAndLocationReachConditionalReadiness(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	c.Process(contractx.Selection{Token: "set_city:Lisbon"})
	c.Process(contractx.Selection{Token: "set_budget:100-150"})
	c.Process(contractx.Selection{Token: "set_location:old town"})

	ok, kind := c.Record().CanRecommend()
	if !ok || kind != slotsx.KindConditionalPass {
		t.Fatalf("CanRecommend() = (%v, %q), want (true, %q)", ok, kind, slotsx.KindConditionalPass)
	}
}

func TestDatesWithoutChildrenAnswerAwaitConfirmation(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	c.Process(contractx.Selection{Token: "set_city:Lisbon"})
	c.Process(contractx.Selection{Token: "set_budget:100-150"})
	c.Process(contractx.Selection{Token: "set_location:old town"})

	bundle := c.Process(contractx.FreeText{Text: "check in March 3, check out March 7, 2 adults"})

	if !c.Record().NeedsChildrenInfo() {
		t.Fatal("NeedsChildrenInfo() = false, want true")
	}
	if bundle.StepTag != StepTagAwaitingChildren {
		t.Fatalf("StepTag = %q, want %q", bundle.StepTag, StepTagAwaitingChildren)
	}
	if bundle.Keyboard.Name != KeyboardChildrenConfirmation {
		t.Fatalf("Keyboard = %q, want %q", bundle.Keyboard.Name, KeyboardChildrenConfirmation)
	}
}

func TestConfirmNoChildrenUnlocksPricedPass(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	c.Process(contractx.Selection{Token: "set_city:Lisbon"})
	c.Process(contractx.Selection{Token: "set_budget:100-150"})
	c.Process(contractx.Selection{Token: "set_location:old town"})
	c.Process(contractx.FreeText{Text: "check in March 3, check out March 7, 2 adults"})

	bundle := c.Process(contractx.Selection{Token: "confirm_no_children"})

	ok, kind := c.Record().CanRecommend()
	if !ok || kind != slotsx.KindPriced {
		t.Fatalf("CanRecommend() = (%v, %q), want (true, %q)", ok, kind, slotsx.KindPriced)
	}
	if bundle.StepTag != string(slotsx.StepPricedPass) {
		t.Fatalf("StepTag = %q, want %q", bundle.StepTag, slotsx.StepPricedPass)
	}
}

func TestConfirmHasChildrenAsksForAges(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	c.Process(contractx.FreeText{Text: "Tokyo, check-in 2026-03-10, check-out 2026-03-14, 2 adults"})

	bundle := c.Process(contractx.Selection{Token: "confirm_children_yes"})
	if bundle.Keyboard.Name != KeyboardChildAgeSelection {
		t.Fatalf("Keyboard = %q, want %q", bundle.Keyboard.Name, KeyboardChildAgeSelection)
	}

	c.Process(contractx.Selection{Token: "set_child_age:6"})
	if got := c.Record().Children; len(got) != 1 || got[0] != 6 {
		t.Fatalf("Children = %v, want [6]", got)
	}
}

func TestMalformedTokenDegradesToReprompt(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	c.Process(contractx.Selection{Token: "set_city:Tokyo"})
	before := c.Record().Snapshot()

	for _, token := range []string{"", "bogus_token", "set_city:", "set_adults:five", "set_open_after:soon"} {
		bundle := c.Process(contractx.Selection{Token: token})
		if bundle.StepTag != string(slotsx.StepCollectingEssentials) {
			t.Fatalf("Process(%q).StepTag = %q, want current prompt tag", token, bundle.StepTag)
		}
	}

	after := c.Record().Snapshot()
	if got, want := after.City, before.City; got != want {
		t.Fatalf("malformed tokens mutated city: %q -> %q", want, got)
	}
}

func TestMenuTokenShowsMenuWithoutMutation(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	c.Process(contractx.Selection{Token: "set_city:Tokyo"})
	before := c.Record().Summary()

	bundle := c.Process(contractx.Selection{Token: "set_budget"})
	if bundle.Keyboard.Name != KeyboardBudgetSelection {
		t.Fatalf("Keyboard = %q, want %q", bundle.Keyboard.Name, KeyboardBudgetSelection)
	}
	if got := c.Record().Summary(); got != before {
		t.Fatalf("menu token mutated slots: %q -> %q", before, got)
	}
}

func TestPartyKeyboardCarriesCounts(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	c.Process(contractx.Selection{Token: "set_adults:+"})
	c.Process(contractx.Selection{Token: "set_adults:+"})
	c.Process(contractx.Selection{Token: "set_rooms:+"})

	bundle := c.Process(contractx.Selection{Token: "set_party"})
	if bundle.Keyboard.Name != KeyboardPartySelection {
		t.Fatalf("Keyboard = %q, want %q", bundle.Keyboard.Name, KeyboardPartySelection)
	}
	params := bundle.Keyboard.Params
	if params["adults"] != "2" || params["rooms"] != "2" || params["children"] != "0" {
		t.Fatalf("Params = %v, want adults=2 rooms=2 children=0", params)
	}
}

func TestSinkReceivesEachNewReadinessKind(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := newTestController(t, WithSink(sink))

	c.Process(contractx.Selection{Token: "set_city:Tokyo"})
	if got := sink.published(t); len(got) != 0 {
		t.Fatalf("published after city only = %d requests, want 0", len(got))
	}

	c.Process(contractx.Selection{Token: "toggle_tag:luxury"})
	got := sink.published(t)
	if len(got) != 1 || got[0].Kind != slotsx.KindFirstPass {
		t.Fatalf("published = %+v, want one first_pass request", got)
	}

	// Same readiness on the next turn: no duplicate publish.
	c.Process(contractx.Selection{Token: "toggle_facility:pool"})
	if got := sink.published(t); len(got) != 1 {
		t.Fatalf("published = %d requests, want still 1", len(got))
	}

	c.Process(contractx.Selection{Token: "set_budget:100-200"})
	c.Process(contractx.Selection{Token: "set_location:Shinjuku"})
	got = sink.published(t)
	if len(got) != 2 || got[1].Kind != slotsx.KindConditionalPass {
		t.Fatalf("published = %+v, want conditional_pass as second request", got)
	}
	if got[1].Slots.City != "Tokyo" {
		t.Fatalf("snapshot city = %q, want Tokyo", got[1].Slots.City)
	}
}

func TestGenerateTokenForcesRepublish(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := newTestController(t, WithSink(sink))

	c.Process(contractx.Selection{Token: "set_city:Tokyo"})
	c.Process(contractx.Selection{Token: "toggle_tag:luxury"})
	if got := sink.published(t); len(got) != 1 {
		t.Fatalf("published = %d requests, want 1", len(got))
	}

	c.Process(contractx.Selection{Token: "generate_recommendation"})
	got := sink.published(t)
	if len(got) != 2 || got[1].Kind != slotsx.KindFirstPass {
		t.Fatalf("published = %+v, want re-published first_pass request", got)
	}
}

func TestResetClearsSlotsAndReadiness(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := newTestController(t, WithSink(sink))

	c.Process(contractx.Selection{Token: "set_city:Tokyo"})
	c.Process(contractx.Selection{Token: "toggle_tag:luxury"})

	bundle := c.Process(contractx.Selection{Token: "reset"})
	if bundle.StepTag != string(slotsx.StepInit) {
		t.Fatalf("StepTag after reset = %q, want %q", bundle.StepTag, slotsx.StepInit)
	}
	if c.Record().City != "" {
		t.Fatalf("City after reset = %q, want empty", c.Record().City)
	}
	if got := sink.published(t); len(got) != 1 {
		t.Fatalf("reset triggered extra publish: %d requests", len(got))
	}
}

func TestWithSnapshotRestoresConversation(t *testing.T) {
	t.Parallel()

	first := newTestController(t)
	first.Process(contractx.Selection{Token: "set_city:Lisbon"})
	first.Process(contractx.Selection{Token: "set_budget:100-150"})
	first.Process(contractx.Selection{Token: "set_location:old town"})

	second := newTestController(t, WithSnapshot(first.Record().Snapshot()))
	ok, kind := second.Record().CanRecommend()
	if !ok || kind != slotsx.KindConditionalPass {
		t.Fatalf("restored CanRecommend() = (%v, %q), want (true, %q)", ok, kind, slotsx.KindConditionalPass)
	}
}

func TestFreeTextFillsMultipleSlotsInOneTurn(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	c.Process(contractx.FreeText{Text: "Tokyo, 100-200 a night, luxury, near Shinjuku"})

	r := c.Record()
	if r.City != "Tokyo" || r.BudgetPerNight != "100-200" || r.Location != "Shinjuku" {
		t.Fatalf("slots = city=%q budget=%q location=%q", r.City, r.BudgetPerNight, r.Location)
	}
	if len(r.Tags) != 1 || r.Tags[0] != "luxury" {
		t.Fatalf("Tags = %v, want [luxury]", r.Tags)
	}
}

func TestEssentialsMessageDisclosesFallbackCity(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	bundle := c.Process(contractx.Selection{Token: "set_city:Atlantis"})
	if bundle.StepTag != string(slotsx.StepCollectingEssentials) {
		t.Fatalf("StepTag = %q, want %q", bundle.StepTag, slotsx.StepCollectingEssentials)
	}
	if !strings.Contains(bundle.Message, "approximate") {
		t.Fatalf("message %q does not disclose approximate coverage", bundle.Message)
	}
}
