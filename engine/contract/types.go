package contract

import (
	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
)

// Input is the turn input event: exactly one per turn, either free text or
// a discrete selection token.
type Input interface {
	isInput()
}

// FreeText is a typed user message that goes through the slot extractor.
type FreeText struct {
	Text string `json:"text"`
}

// Selection is a discrete choice token, namespaced by purpose
// (e.g. "set_city:Lisbon", "toggle_tag:luxury", "confirm_children_no").
type Selection struct {
	Token string `json:"token"`
}

func (FreeText) isInput()  {}
func (Selection) isInput() {}

// KeyboardDescriptor names which set of next choices the renderer should
// present. The engine never constructs UI elements.
type KeyboardDescriptor struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params,omitempty"`
}

// ResponseBundle is the complete output of one turn.
type ResponseBundle struct {
	StepTag  string             `json:"step_tag"`
	Message  string             `json:"message"`
	Keyboard KeyboardDescriptor `json:"keyboard"`
}

// RecommendationRequest is the fire-and-forget snapshot handed to the
// external recommendation generator whenever readiness is newly reached.
type RecommendationRequest struct {
	Slots slotsx.Snapshot           `json:"slots"`
	Kind  slotsx.RecommendationKind `json:"kind"`
}
