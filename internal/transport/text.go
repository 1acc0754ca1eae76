package transport

import (
	"encoding/json"
	"fmt"
)

// Text is a form field that also accepts a bare JSON number or boolean and
// keeps its literal text, so "budget": 800000000 stores "800000000".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		return fmt.Errorf("expected a string or number, got %c", b[0])
	default:
		*t = Text(b)
	}
	return nil
}

func (t Text) String() string { return string(t) }

// Ptr keeps an absent field absent.
func (t *Text) Ptr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
