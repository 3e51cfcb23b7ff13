package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermNext_FallToSpring(t *testing.T) {
	next := Term{Season: SeasonFall, Year: 2026}.Next(false)
	assert.Equal(t, Term{Season: SeasonSpring, Year: 2027}, next)
}

func TestTermNext_SpringToFall(t *testing.T) {
	next := Term{Season: SeasonSpring, Year: 2027}.Next(false)
	assert.Equal(t, Term{Season: SeasonFall, Year: 2027}, next)
}

func TestTermNext_SpringToSummerWhenAllowed(t *testing.T) {
	next := Term{Season: SeasonSpring, Year: 2027}.Next(true)
	assert.Equal(t, Term{Season: SeasonSummer, Year: 2027}, next)
}

func TestTermNext_SummerToFall(t *testing.T) {
	next := Term{Season: SeasonSummer, Year: 2027}.Next(true)
	assert.Equal(t, Term{Season: SeasonFall, Year: 2027}, next)
}

func TestTermNext_FullYearCycleWithSummers(t *testing.T) {
	term := Term{Season: SeasonFall, Year: 2026}
	var seen []string
	for i := 0; i < 4; i++ {
		seen = append(seen, term.Key())
		term = term.Next(true)
	}
	assert.Equal(t, []string{"fall-2026", "spring-2027", "summer-2027", "fall-2027"}, seen)
}

func TestTermLabel(t *testing.T) {
	assert.Equal(t, "Fall 2026", Term{Season: SeasonFall, Year: 2026}.Label())
	assert.Equal(t, "Spring 2027", Term{Season: SeasonSpring, Year: 2027}.Label())
}

func TestParseTerm_RoundTrip(t *testing.T) {
	orig := Term{Season: SeasonSummer, Year: 2027}
	parsed, err := ParseTerm(orig.Key())
	require.NoError(t, err)
	assert.Equal(t, orig, parsed)
}

func TestParseTerm_Invalid(t *testing.T) {
	for _, s := range []string{"", "fall", "winter-2026", "fall-abc", "fall-1200"} {
		_, err := ParseTerm(s)
		assert.Error(t, err, "input=%q", s)
	}
}

func TestTermValidate(t *testing.T) {
	require.NoError(t, Term{Season: SeasonFall, Year: 2026}.Validate())
	require.Error(t, Term{Season: "winter", Year: 2026}.Validate())
	require.Error(t, Term{Season: SeasonFall, Year: 0}.Validate())
}
