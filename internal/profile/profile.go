package profile

import (
	"fmt"
	"io"
)

// Expected is the only profile value the checker accepts.
const Expected = "valid"

const (
	validMessage   = "Profile is valid. Adding check..."
	invalidMessage = "Invalid profile. Check failed."
)

// Outcome is the result of checking a single profile value.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeValid
)

// Validate reports whether v is exactly the string "valid".
// Values of any other type, including named string types and nil, are rejected.
func Validate(v any) bool {
	s, ok := v.(string)
	return ok && s == Expected
}

// Check maps a profile value to its outcome.
func Check(v any) Outcome {
	if Validate(v) {
		return OutcomeValid
	}
	return OutcomeInvalid
}

// Message returns the fixed human-readable line for the outcome.
func (o Outcome) Message() string {
	if o == OutcomeValid {
		return validMessage
	}
	return invalidMessage
}

func (o Outcome) String() string {
	if o == OutcomeValid {
		return "valid"
	}
	return "invalid"
}

// Report writes the outcome message as a single line to w.
func Report(w io.Writer, o Outcome) error {
	if _, err := io.WriteString(w, o.Message()+"\n"); err != nil {
		return fmt.Errorf("writing outcome: %w", err)
	}
	return nil
}
