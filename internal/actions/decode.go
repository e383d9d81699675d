package actions

import (
	"encoding/json"
	"fmt"
)

// Envelope is the wire form of an action: a type tag plus the payload
// fields that action carries.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Decode parses a wire envelope into a typed Action. An unrecognized type
// decodes into an Unknown action rather than an error, so callers can keep
// the forward-compatible no-op behavior of the reducer.
func Decode(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse action envelope: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("action envelope has no type")
	}

	payload := env.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	unmarshal := func(dst Action) (Action, error) {
		if err := json.Unmarshal(payload, dst); err != nil {
			return nil, fmt.Errorf("failed to parse %s payload: %w", env.Type, err)
		}
		return dst, nil
	}

	switch env.Type {
	case "SetScreen":
		a, err := unmarshal(&SetScreen{})
		if err != nil {
			return nil, err
		}
		return *a.(*SetScreen), nil
	case "SelectAvatar":
		a, err := unmarshal(&SelectAvatar{})
		if err != nil {
			return nil, err
		}
		return *a.(*SelectAvatar), nil
	case "UpdateProgress":
		a, err := unmarshal(&UpdateProgress{})
		if err != nil {
			return nil, err
		}
		return *a.(*UpdateProgress), nil
	case "AddToCart":
		a, err := unmarshal(&AddToCart{})
		if err != nil {
			return nil, err
		}
		return *a.(*AddToCart), nil
	case "RemoveFromCart":
		a, err := unmarshal(&RemoveFromCart{})
		if err != nil {
			return nil, err
		}
		return *a.(*RemoveFromCart), nil
	case "ResetCart":
		return ResetCart{}, nil
	case "EarnBadge":
		a, err := unmarshal(&EarnBadge{})
		if err != nil {
			return nil, err
		}
		return *a.(*EarnBadge), nil
	case "LoadState":
		a, err := unmarshal(&LoadState{})
		if err != nil {
			return nil, err
		}
		return *a.(*LoadState), nil
	case "InitShoppingGame":
		a, err := unmarshal(&InitShoppingGame{})
		if err != nil {
			return nil, err
		}
		return *a.(*InitShoppingGame), nil
	case "MoveCharacter":
		a, err := unmarshal(&MoveCharacter{})
		if err != nil {
			return nil, err
		}
		return *a.(*MoveCharacter), nil
	case "BuyItem":
		a, err := unmarshal(&BuyItem{})
		if err != nil {
			return nil, err
		}
		return *a.(*BuyItem), nil
	case "StartShoppingGame":
		return StartShoppingGame{}, nil
	case "EndShoppingGame":
		return EndShoppingGame{}, nil
	case "UpdateShoppingTimer":
		a, err := unmarshal(&UpdateShoppingTimer{})
		if err != nil {
			return nil, err
		}
		return *a.(*UpdateShoppingTimer), nil
	default:
		return Unknown{Type: env.Type}, nil
	}
}
