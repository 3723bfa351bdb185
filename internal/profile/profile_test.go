package profile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedString string

func TestValidate_AcceptsExactLiteral(t *testing.T) {
	assert.True(t, Validate("valid"))
	assert.True(t, Validate(Expected))
}

func TestValidate_RejectsEverythingElse(t *testing.T) {
	inputs := map[string]any{
		"nil":            nil,
		"empty":          "",
		"invalid":        "invalid",
		"capitalized":    "Valid",
		"upper":          "VALID",
		"leading space":  " valid",
		"trailing nl":    "valid\n",
		"int":            42,
		"float":          1.5,
		"bool":           true,
		"bytes":          []byte("valid"),
		"slice":          []string{"valid"},
		"map":            map[string]string{"profile": "valid"},
		"named string":   namedString("valid"),
		"string pointer": ptr("valid"),
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.False(t, Validate(in))
		})
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	in := []string{"valid"}
	Validate(in)
	assert.Equal(t, []string{"valid"}, in)
}

func TestCheck_Outcomes(t *testing.T) {
	assert.Equal(t, OutcomeValid, Check("valid"))
	assert.Equal(t, OutcomeInvalid, Check("invalid"))
	assert.Equal(t, OutcomeInvalid, Check(nil))
}

func TestOutcome_Message(t *testing.T) {
	assert.Equal(t, "Profile is valid. Adding check...", OutcomeValid.Message())
	assert.Equal(t, "Invalid profile. Check failed.", OutcomeInvalid.Message())
}

func TestReport_WritesExactlyOneLine(t *testing.T) {
	for _, o := range []Outcome{OutcomeValid, OutcomeInvalid} {
		t.Run(o.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Report(&buf, o))
			assert.Equal(t, o.Message()+"\n", buf.String())
			assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReport_WriteError(t *testing.T) {
	err := Report(failingWriter{}, OutcomeValid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing outcome")
}

func ptr(s string) *string { return &s }
