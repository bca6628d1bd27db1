package controller

import (
	"fmt"
	"strconv"
	"strings"

	contractx "github.com/staywise/hotel-dialogue/engine/contract"
)

// Selection tokens parse into a closed set of typed tokens before anything
// touches the slot record, so a new token category is a compile-time
// decision instead of a silently ignored string branch.
type token interface {
	isToken()
}

// menuToken asks for a sub-menu; it never mutates slots.
type menuToken struct {
	keyboard string
}

// navToken covers back/confirm navigation: re-render the current prompt.
type navToken struct{}

type resetToken struct{}

type generateToken struct{}

type setCityToken struct{ value string }
type setBudgetToken struct{ value string }
type setLocationToken struct{ value string }
type setCheckInToken struct{ value string }
type setCheckOutToken struct{ value string }
type toggleTagToken struct{ value string }
type toggleFacilityToken struct{ value string }
type setViewToken struct{ value string }
type setBrandToken struct{ value string }
type setOpenAfterToken struct{ year int }
type adjustAdultsToken struct{ delta int }
type adjustRoomsToken struct{ delta int }
type addChildToken struct{ age int }
type removeChildToken struct{ age int }
type confirmChildrenToken struct{ hasChildren bool }

func (menuToken) isToken()            {}
func (navToken) isToken()             {}
func (resetToken) isToken()           {}
func (generateToken) isToken()        {}
func (setCityToken) isToken()         {}
func (setBudgetToken) isToken()       {}
func (setLocationToken) isToken()     {}
func (setCheckInToken) isToken()      {}
func (setCheckOutToken) isToken()     {}
func (toggleTagToken) isToken()       {}
func (toggleFacilityToken) isToken()  {}
func (setViewToken) isToken()         {}
func (setBrandToken) isToken()        {}
func (setOpenAfterToken) isToken()    {}
func (adjustAdultsToken) isToken()    {}
func (adjustRoomsToken) isToken()     {}
func (addChildToken) isToken()        {}
func (removeChildToken) isToken()     {}
func (confirmChildrenToken) isToken() {}

var bareTokens = map[string]token{
	"set_city":                menuToken{keyboard: KeyboardCitySelection},
	"set_budget":              menuToken{keyboard: KeyboardBudgetSelection},
	"set_location":            menuToken{keyboard: KeyboardLocationSelection},
	"set_tags":                menuToken{keyboard: KeyboardTagsSelection},
	"set_checkin":             menuToken{keyboard: KeyboardDateSelection},
	"set_checkout":            menuToken{keyboard: KeyboardDateSelection},
	"set_party":               menuToken{keyboard: KeyboardPartySelection},
	"set_extras":              menuToken{keyboard: KeyboardExtrasSelection},
	"set_facilities":          menuToken{keyboard: KeyboardFacilitiesSelection},
	"set_view":                menuToken{keyboard: KeyboardViewSelection},
	"set_brand":               menuToken{keyboard: KeyboardBrandSelection},
	"set_open_after":          menuToken{keyboard: KeyboardOpenAfterSelection},
	"add_child_age":           menuToken{keyboard: KeyboardChildAgeSelection},
	"back_main":               navToken{},
	"back_extras":             navToken{},
	"confirm_tags":            navToken{},
	"confirm_party":           navToken{},
	"confirm_extras":          navToken{},
	"confirm_facilities":      navToken{},
	"confirm_view":            navToken{},
	"confirm_brand":           navToken{},
	"confirm_open_after":      navToken{},
	"confirm_children_no":     confirmChildrenToken{hasChildren: false},
	"confirm_no_children":     confirmChildrenToken{hasChildren: false},
	"confirm_children_yes":    confirmChildrenToken{hasChildren: true},
	"confirm_has_children":    confirmChildrenToken{hasChildren: true},
	"generate_recommendation": generateToken{},
	"reset":                   resetToken{},
}

// parseToken maps a raw selection token to its typed form. Unknown names
// and malformed values come back as errors; the caller degrades them to a
// re-rendered prompt, never a failed turn.
func parseToken(raw string) (token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", contractx.ErrMalformedToken)
	}

	name, value, hasValue := strings.Cut(raw, ":")
	if !hasValue {
		if tok, ok := bareTokens[name]; ok {
			return tok, nil
		}
		return nil, fmt.Errorf("%w: %q", contractx.ErrUnknownToken, name)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: %q has empty value", contractx.ErrMalformedToken, name)
	}

	switch name {
	case "set_city":
		return setCityToken{value: value}, nil
	case "set_budget":
		return setBudgetToken{value: value}, nil
	case "set_location":
		return setLocationToken{value: value}, nil
	case "set_checkin":
		return setCheckInToken{value: value}, nil
	case "set_checkout":
		return setCheckOutToken{value: value}, nil
	case "toggle_tag":
		return toggleTagToken{value: value}, nil
	case "toggle_facility":
		return toggleFacilityToken{value: value}, nil
	case "set_view":
		return setViewToken{value: value}, nil
	case "set_brand":
		return setBrandToken{value: value}, nil
	case "set_open_after":
		year, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: set_open_after year %q", contractx.ErrMalformedToken, value)
		}
		return setOpenAfterToken{year: year}, nil
	case "set_adults":
		delta, err := parseDelta(value)
		if err != nil {
			return nil, fmt.Errorf("%w: set_adults %q", contractx.ErrMalformedToken, value)
		}
		return adjustAdultsToken{delta: delta}, nil
	case "set_rooms":
		delta, err := parseDelta(value)
		if err != nil {
			return nil, fmt.Errorf("%w: set_rooms %q", contractx.ErrMalformedToken, value)
		}
		return adjustRoomsToken{delta: delta}, nil
	case "set_child_age":
		age, err := strconv.Atoi(value)
		if err != nil || age < 0 {
			return nil, fmt.Errorf("%w: set_child_age %q", contractx.ErrMalformedToken, value)
		}
		return addChildToken{age: age}, nil
	case "remove_child_age":
		age, err := strconv.Atoi(value)
		if err != nil || age < 0 {
			return nil, fmt.Errorf("%w: remove_child_age %q", contractx.ErrMalformedToken, value)
		}
		return removeChildToken{age: age}, nil
	}

	return nil, fmt.Errorf("%w: %q", contractx.ErrUnknownToken, name)
}

func parseDelta(value string) (int, error) {
	switch value {
	case "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return 0, fmt.Errorf("delta must be + or -")
}
