package normaliser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalise_StripsTimestamps(t *testing.T) {
	in := "12/31/2024, 10:45 PM levy rates apply to all employers here"
	out := Normalise(in)
	assert.NotContains(t, out, "12/31/2024")
	assert.Contains(t, out, "levy rates apply")
}

func TestNormalise_StripsPagination(t *testing.T) {
	in := "the employer must maintain insurance coverage Page 3 of 12 at all times"
	out := Normalise(in)
	assert.NotContains(t, out, "Page 3 of 12")
	assert.Contains(t, out, "insurance coverage")
}

func TestNormalise_RemovesDisallowedCharacters(t *testing.T) {
	in := "levy © payment ★ is due: monthly, at $300 {net} of rebates"
	out := Normalise(in)
	assert.NotContains(t, out, "©")
	assert.NotContains(t, out, "★")
	assert.NotContains(t, out, "$")
	assert.NotContains(t, out, "{")
	// Allow-listed punctuation survives.
	assert.Contains(t, out, "due: monthly,")
}

func TestNormalise_CollapsesWhitespace(t *testing.T) {
	in := "the   levy\t\tis  payable   monthly by employers"
	out := Normalise(in)
	assert.Equal(t, "the levy is payable monthly by employers", out)
}

func TestNormalise_DropsShortLines(t *testing.T) {
	in := "MOM\nWork Permit\nthe employer must pay the levy\nAnnex B\nrest days are mandatory for helpers"
	out := Normalise(in)
	assert.NotContains(t, out, "MOM")
	assert.NotContains(t, out, "Annex B")
	assert.Contains(t, out, "the employer must pay the levy")
	assert.Contains(t, out, "rest days are mandatory for helpers")
}

func TestNormalise_Total(t *testing.T) {
	cases := []string{"", "   ", "\n\n\n", "ab", "☃☃☃"}
	for _, c := range cases {
		assert.Equal(t, "", Normalise(c))
	}
}
