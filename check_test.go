package jsoncodec_test

import (
	"testing"

	c "github.com/Gobd/jsoncodec"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positive(v int) bool { return v > 0 }
func even(v int) bool     { return v%2 == 0 }

func TestCheckAccumulatesAllPredicateFailures(t *testing.T) {
	r := c.Check(c.Valid(-3),
		c.P("must be positive", positive),
		c.P("must be even", even))
	assert.Equal(t, []string{"must be positive", "must be even"}, r.Errors())
}

func TestCheckPredicatesAreIndependent(t *testing.T) {
	// Each predicate sees the original value, not a chained state.
	var seen []int
	spy := func(name string) c.Pred[int] {
		return c.P(name, func(v int) bool {
			seen = append(seen, v)
			return false
		})
	}
	r := c.Check(c.Valid(7), spy("a"), spy("b"), spy("c"))
	assert.Equal(t, []int{7, 7, 7}, seen)
	assert.Equal(t, []string{"a", "b", "c"}, r.Errors())
}

func TestCheckPassesValidThrough(t *testing.T) {
	r := c.Check(c.Valid(4),
		c.P("must be positive", positive),
		c.P("must be even", even))
	require.True(t, r.IsValid())
	assert.Equal(t, 4, r.Get())
}

func TestCheckDeduplicatesIdenticalMessages(t *testing.T) {
	r := c.Check(c.Valid(-3),
		c.P("must be positive", positive),
		c.P("must be positive", positive))
	assert.Equal(t, []string{"must be positive"}, r.Errors())
}

func TestCheckOnInvalidBaseIsPassThrough(t *testing.T) {
	evaluated := false
	base := c.Invalid[int]("Missing value")
	r := c.Check(base,
		c.P("must be positive", func(int) bool { evaluated = true; return false }))
	assert.Equal(t, []string{"Missing value"}, r.Errors())
	assert.False(t, evaluated, "predicates never run without an extracted value")
}

func TestCheckIf(t *testing.T) {
	checks := []c.Pred[int]{c.P("must be positive", positive)}

	r := c.CheckIf(false, c.Valid(-3), checks...)
	require.True(t, r.IsValid())

	r = c.CheckIf(true, c.Valid(-3), checks...)
	assert.Equal(t, []string{"must be positive"}, r.Errors())
}

func TestRulePredAdaptsOzzoRules(t *testing.T) {
	lengthOK := c.RulePred[string]("name must be 1 to 5 chars", validation.Length(1, 5))

	r := c.Check(c.Valid("abc"), lengthOK)
	assert.True(t, r.IsValid())

	r = c.Check(c.Valid("abcdefgh"), lengthOK)
	assert.Equal(t, []string{"name must be 1 to 5 chars"}, r.Errors())
}

func TestStringPreds(t *testing.T) {
	tests := []struct {
		name string
		pred c.Pred[string]
		in   string
		ok   bool
	}{
		{"email ok", c.Email("bad email"), "test@test.com", true},
		{"email bad", c.Email("bad email"), "not-an-email", false},
		{"fqdn ok", c.AbsoluteFQDN("bad fqdn"), "ok.example.com.", true},
		{"fqdn missing trailing dot", c.AbsoluteFQDN("bad fqdn"), "ok.example.com", false},
		{"uuid ok", c.UUID("bad uuid"), "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"uuid bad", c.UUID("bad uuid"), "not-a-uuid", false},
		{"ip ok", c.IPAddress("bad ip"), "10.1.1.1", true},
		{"ip bad", c.IPAddress("bad ip"), "10.1.1", false},
		{"blank", c.NotBlank("blank"), "   ", false},
		{"not blank", c.NotBlank("blank"), "x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.Check(c.Valid(tt.in), tt.pred)
			assert.Equal(t, tt.ok, r.IsValid())
		})
	}
}
