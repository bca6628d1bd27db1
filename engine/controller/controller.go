package controller

import (
	"errors"

	"github.com/rs/zerolog/log"

	contractx "github.com/staywise/hotel-dialogue/engine/contract"
	extractx "github.com/staywise/hotel-dialogue/engine/extract"
	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
	tierx "github.com/staywise/hotel-dialogue/engine/tier"
)

// Controller is the per-conversation turn state machine. It owns one slot
// record, consumes one input event per turn, and emits one response bundle.
// It performs no I/O: the only side effect of a turn is the slot mutation
// plus an optional fire-and-forget publish to the recommendation sink.
//
// Turns on the same controller must be serialized by the host; separate
// conversations use separate controllers and share nothing mutable.
type Controller struct {
	record     *slotsx.Record
	classifier *tierx.Classifier
	extractor  *extractx.Extractor
	sink       contractx.RecommendationSink

	lastOK   bool
	lastKind slotsx.RecommendationKind
}

type Option func(*Controller)

// WithSink attaches a recommendation sink; without one, readiness is still
// tracked but nothing is published.
func WithSink(sink contractx.RecommendationSink) Option {
	return func(c *Controller) {
		c.sink = sink
	}
}

// WithSnapshot restores a previously persisted slot record.
func WithSnapshot(s slotsx.Snapshot) Option {
	return func(c *Controller) {
		c.record = slotsx.FromSnapshot(s)
	}
}

func New(classifier *tierx.Classifier, opts ...Option) (*Controller, error) {
	if classifier == nil {
		return nil, errors.New("tier classifier is required")
	}
	c := &Controller{
		record:     slotsx.NewRecord(),
		classifier: classifier,
		extractor:  extractx.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Record exposes the underlying slot record, e.g. for persistence.
func (c *Controller) Record() *slotsx.Record {
	return c.record
}

// Process runs one turn. It never fails: malformed tokens and unknown
// input degrade to re-rendering the current prompt, because losing
// conversational progress on a glitch is worse than a redundant prompt.
func (c *Controller) Process(in contractx.Input) contractx.ResponseBundle {
	switch ev := in.(type) {
	case contractx.FreeText:
		c.applyFreeText(ev.Text)
	case contractx.Selection:
		tok, err := parseToken(ev.Token)
		if err != nil {
			log.Debug().Err(err).Str("token", ev.Token).Msg("ignoring selection token")
			return c.respond()
		}
		if menu, ok := tok.(menuToken); ok {
			return c.menuBundle(menu.keyboard)
		}
		c.applyToken(tok)
		if cc, ok := tok.(confirmChildrenToken); ok && cc.hasChildren {
			// Ages come in one by one through the child-age keyboard.
			return c.menuBundle(KeyboardChildAgeSelection)
		}
	default:
		log.Debug().Msg("nil or unknown input event, re-rendering")
	}
	return c.respond()
}

func (c *Controller) applyFreeText(text string) {
	patch := c.extractor.Extract(text)
	if patch.IsZero() {
		return
	}
	c.record.Apply(patch)
	// Warm the tier cache so the next policy read is against the new city.
	if patch.City != "" {
		c.record.CityTier(c.classifier)
	}
}

// applyToken mutates the slot record for one typed token. The switch is
// exhaustive over the token set; menuToken never reaches here.
func (c *Controller) applyToken(tok token) {
	switch t := tok.(type) {
	case setCityToken:
		if c.record.SetCity(t.value) {
			c.record.CityTier(c.classifier)
		}
	case setBudgetToken:
		c.record.SetBudgetPerNight(t.value)
	case setLocationToken:
		c.record.SetLocation(t.value)
	case setCheckInToken:
		c.record.SetCheckIn(t.value)
	case setCheckOutToken:
		c.record.SetCheckOut(t.value)
	case toggleTagToken:
		c.record.ToggleTag(t.value)
	case toggleFacilityToken:
		c.record.ToggleFacility(t.value)
	case setViewToken:
		c.record.SetView(t.value)
	case setBrandToken:
		c.record.SetBrand(t.value)
	case setOpenAfterToken:
		c.record.SetOpenAfterYear(t.year)
	case adjustAdultsToken:
		c.record.AdjustAdults(t.delta)
	case adjustRoomsToken:
		c.record.AdjustRooms(t.delta)
	case addChildToken:
		c.record.AddChild(t.age)
	case removeChildToken:
		c.record.RemoveChild(t.age)
	case confirmChildrenToken:
		// Either answer resolves the open question; ages arrive separately.
		c.record.SetConsentChildren(true)
	case generateToken:
		// Force a fresh publish even if readiness was already reached.
		c.lastOK = false
		c.lastKind = slotsx.KindNone
	case resetToken:
		c.record.Reset()
		c.lastOK = false
		c.lastKind = slotsx.KindNone
	case navToken, menuToken:
		// No slot effect.
	}
}

func (c *Controller) respond() contractx.ResponseBundle {
	c.maybePublish()

	step := c.record.Step()
	if step == slotsx.StepPricedPass && c.record.NeedsChildrenInfo() {
		return c.childrenBundle()
	}
	return c.stepBundle(step)
}

// maybePublish hands a snapshot to the sink whenever readiness is newly
// reached or the recommendation kind changed. The publish is one-way; the
// controller never waits for the generator.
func (c *Controller) maybePublish() {
	ok, kind := c.record.CanRecommend()
	if ok && (!c.lastOK || kind != c.lastKind) && c.sink != nil {
		log.Debug().Str("kind", string(kind)).Msg("publishing recommendation snapshot")
		c.sink.Publish(contractx.RecommendationRequest{
			Slots: c.record.Snapshot(),
			Kind:  kind,
		})
	}
	c.lastOK = ok
	c.lastKind = kind
}
