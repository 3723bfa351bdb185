// Package explain describes why a profile value was rejected.
package explain

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/profilecheck/internal/profile"
	"github.com/dshills/profilecheck/internal/redact"
)

// Diff returns a one-line description of how v differs from the accepted
// profile value. String values get a character diff rendered as
// [-deleted-]{+inserted+}; other values are described by type. Secrets are
// redacted before diffing so the result is safe to log.
func Diff(v any) string {
	s, ok := v.(string)
	if !ok {
		if v == nil {
			return "profile is absent"
		}
		return fmt.Sprintf("profile has type %T, want string", v)
	}
	if s == profile.Expected {
		return "profile matches"
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(profile.Expected, redact.Redact(s), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, d := range diffs {
		text := fmt.Sprintf("%q", d.Text)
		text = text[1 : len(text)-1]
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + text + "+}")
		default:
			sb.WriteString(text)
		}
	}
	return sb.String()
}
