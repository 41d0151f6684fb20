package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func TestConstructorsClampNegative(t *testing.T) {
	assert.Equal(t, 0.0, NewHundredthsOfSeconds(-1).Value())
	assert.Equal(t, 0.0, NewTenthsOfSeconds(-0.5).Value())
	assert.Equal(t, 0.0, NewSeconds(-42).Value())
	assert.Equal(t, 0.0, NewMinutes(-3).Value())
	assert.Equal(t, 0.0, NewHours(-1e9).Value())
	assert.Equal(t, 0.0, NewSeconds(math.NaN()).Value())
	assert.Equal(t, 0.0, NewSeconds(math.Inf(1)).Value())
	assert.Equal(t, 0.0, NewHours(math.Inf(-1)).Value())

	assert.Equal(t, 12.5, NewSeconds(12.5).Value())
	assert.Equal(t, 0.0, NewSeconds(0).Value())
	assert.False(t, math.Signbit(NewSeconds(math.Copysign(0, -1)).Value()), "negative zero normalised")
}

func TestConversionFactors(t *testing.T) {
	assert.InDelta(t, 1.0, NewSeconds(60).Minutes().Value(), delta)
	assert.InDelta(t, 60.0, NewMinutes(1).Seconds().Value(), delta)
	assert.InDelta(t, 1.0, NewSeconds(3600).Hours().Value(), delta)
	assert.InDelta(t, 100.0, NewSeconds(1).Hundredths().Value(), delta)
	assert.InDelta(t, 10.0, NewSeconds(1).Tenths().Value(), delta)
	assert.InDelta(t, 1.0, NewMinutes(60).Hours().Value(), delta)
	assert.InDelta(t, 60.0, NewHours(1).Minutes().Value(), delta)
	assert.InDelta(t, 3600.0, NewHours(1).Seconds().Value(), delta)
	assert.InDelta(t, 1.0, NewHundredthsOfSeconds(100).Seconds().Value(), delta)
	assert.InDelta(t, 1.0, NewTenthsOfSeconds(10).Seconds().Value(), delta)
}

func TestConversionsDoNotRound(t *testing.T) {
	assert.InDelta(t, 0.5, NewSeconds(30).Minutes().Value(), delta)
	assert.InDelta(t, 1.0/3600, NewSeconds(1).Hours().Value(), delta)
	assert.InDelta(t, 1.23, NewSeconds(0.0123).Hundredths().Value(), delta)
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0, 0.01, 1, 9.99, 125.4, 3599.5, 86400}
	for _, v := range values {
		s := NewSeconds(v)
		assert.InDelta(t, v, s.Minutes().Seconds().Value(), delta, "minutes %v", v)
		assert.InDelta(t, v, s.Hours().Seconds().Value(), delta, "hours %v", v)
		assert.InDelta(t, v, s.Hours().Minutes().Seconds().Value(), delta, "hours/minutes %v", v)
		assert.InDelta(t, v, s.Tenths().Seconds().Value(), delta, "tenths %v", v)
		assert.InDelta(t, v, s.Hundredths().Seconds().Value(), delta, "hundredths %v", v)
	}
}

func TestFloor(t *testing.T) {
	assert.Equal(t, 9, NewSeconds(9.99).Floor())
	assert.Equal(t, 0, NewSeconds(0.999).Floor())
	assert.Equal(t, 2, NewMinutes(2.5).Floor())
	assert.Equal(t, 99, NewSeconds(0.999).Hundredths().Floor())
}

func TestRender(t *testing.T) {
	single, double, triple := Digits()

	assert.Equal(t, "9", NewSeconds(9.7).Render(single))
	assert.Equal(t, "09", NewSeconds(9.7).Render(double))
	assert.Equal(t, "009", NewSeconds(9.7).Render(triple))
	assert.Equal(t, "123", NewSeconds(123.9).Render(double))
	assert.Equal(t, "2 min", NewSeconds(150).Minutes().Render(NewFormat("%d min")))
	assert.Equal(t, "7", NewHours(7.2).Render(Format{}), "zero format renders like %d")
	assert.True(t, Format{}.IsZero())
	assert.True(t, NewFormat("").IsZero())
	assert.False(t, NewFormat("%d").IsZero())
}

func TestInfiniteInputFloorsAndRendersAsZero(t *testing.T) {
	s := NewSeconds(math.Inf(1))

	assert.Equal(t, 0, s.Floor())
	assert.Equal(t, "00", s.Render(NewFormat("%02d")))
	assert.Equal(t, 0.0, s.Minutes().Value())
}

func TestString(t *testing.T) {
	assert.Equal(t, "125.4", NewSeconds(125.4).String())
	assert.Equal(t, "0", NewHours(0).String())
}
