package sdpatch

import (
	"encoding/json"
	"fmt"
)

// SDPType describes the type of a SessionDescription. On the signaling
// channel it travels as its lowercase wire string.
type SDPType int

const (
	// SDPTypeOffer indicates that a description MUST be treated as an SDP offer.
	SDPTypeOffer SDPType = iota + 1

	// SDPTypePranswer indicates that a description MUST be treated as an SDP
	// answer, but not a final answer.
	SDPTypePranswer

	// SDPTypeAnswer indicates that a description MUST be treated as an SDP
	// final answer, and the offer-answer exchange MUST be considered complete.
	SDPTypeAnswer

	// SDPTypeRollback indicates that a description MUST be treated as
	// canceling the current SDP negotiation and moving the SDP offer and
	// answer back to what it was in the previous stable state.
	SDPTypeRollback
)

func newSDPType(raw string) SDPType {
	switch raw {
	case "offer":
		return SDPTypeOffer
	case "pranswer":
		return SDPTypePranswer
	case "answer":
		return SDPTypeAnswer
	case "rollback":
		return SDPTypeRollback
	default:
		return SDPType(Unknown)
	}
}

func (t SDPType) String() string {
	switch t {
	case SDPTypeOffer:
		return "offer"
	case SDPTypePranswer:
		return "pranswer"
	case SDPTypeAnswer:
		return "answer"
	case SDPTypeRollback:
		return "rollback"
	default:
		return ErrUnknownType.Error()
	}
}

// UnmarshalJSON parses the JSON-encoded data and stores the result
func (t *SDPType) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	tmp := newSDPType(val)
	if (tmp == SDPType(Unknown)) && (val != "") {
		return fmt.Errorf("%w: (%s)", errInvalidSDPTypeString, val)
	}

	*t = tmp
	return nil
}

// MarshalJSON returns the JSON encoding
func (t SDPType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
