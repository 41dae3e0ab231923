package utils_test

import (
	"math"
	"regexp"
	"testing"
	"time"

	"fingenius/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"default currency", 1234.5, "", "$1,234.50"},
		{"usd", 1234.5, "USD", "$1,234.50"},
		{"lowercase code", -1234.5, "usd", "-$1,234.50"},
		{"zero", 0, "USD", "$0.00"},
		{"negative zero", math.Copysign(0, -1), "", "$0.00"},
		{"rounds cents", 0.125, "USD", "$0.13"},
		{"millions", 1250000, "USD", "$1,250,000.00"},
		{"euro grapheme", 99.9, "EUR", "€99.90"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.FormatCurrency(tt.amount, tt.currency)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCurrencyErrors(t *testing.T) {
	_, err := utils.FormatCurrency(1, "XYZ")
	assert.ErrorIs(t, err, utils.ErrUnknownCurrency)

	_, err = utils.FormatCurrency(math.NaN(), "USD")
	assert.ErrorIs(t, err, utils.ErrNonFinite)

	_, err = utils.FormatCurrency(math.Inf(-1), "USD")
	assert.ErrorIs(t, err, utils.ErrNonFinite)

	_, err = utils.FormatCurrency(1e18, "USD")
	assert.ErrorIs(t, err, utils.ErrOutOfRange)
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     string
	}{
		{1.005, 2, "1.01%"},
		{-1.005, 2, "-1.01%"},
		{12.5, 2, "12.50%"},
		{12.5, 0, "13%"},
		{2.345, 1, "2.3%"},
		{0, 1, "0.0%"},
		{math.Copysign(0, -1), 2, "0.00%"},
	}
	for _, tt := range tests {
		got, err := utils.FormatPercentage(tt.value, tt.decimals)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "FormatPercentage(%v, %d)", tt.value, tt.decimals)
	}

	// repeated calls agree
	for i := 0; i < 10; i++ {
		got, _ := utils.FormatPercentage(1.005, 2)
		assert.Equal(t, "1.01%", got)
	}
}

func TestFormatPercentageErrors(t *testing.T) {
	_, err := utils.FormatPercentage(1, -1)
	assert.ErrorIs(t, err, utils.ErrInvalidDecimals)

	_, err = utils.FormatPercentage(1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidDecimals)

	_, err = utils.FormatPercentage(math.Inf(1), 2)
	assert.ErrorIs(t, err, utils.ErrNonFinite)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{1000000, "1.0M"},
		{1500000, "1.5M"},
		{2500000000, "2.5B"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.5, "0.5"},
		{-5000, "-5000"},
	}
	for _, tt := range tests {
		got, err := utils.FormatNumber(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "FormatNumber(%v)", tt.value)
	}

	_, err := utils.FormatNumber(math.Inf(1))
	assert.ErrorIs(t, err, utils.ErrNonFinite)
}

func TestChangeColorClass(t *testing.T) {
	assert.Equal(t, utils.NeutralChange, utils.ChangeColorClass(0))
	assert.Equal(t, utils.NegativeChange, utils.ChangeColorClass(-0.01))
	assert.Equal(t, utils.PositiveChange, utils.ChangeColorClass(0.01))
	assert.Equal(t, utils.NeutralChange, utils.ChangeColorClass(math.NaN()))
	assert.Equal(t, "positive-change", string(utils.PositiveChange))
}

func TestGenerateID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-z]{9}$`)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := utils.GenerateID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 990)
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name+tag@example.co.uk", "a@b.c"}
	invalid := []string{"not-an-email", "", "a@b", "a b@c.com", "a@@b.com", "@b.com", "a@b.com "}

	for _, e := range valid {
		assert.True(t, utils.IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, utils.IsValidEmail(e), e)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", utils.Capitalize("hello"))
	assert.Equal(t, "Élan", utils.Capitalize("élan"))
	assert.Equal(t, "", utils.Capitalize(""))
	assert.Equal(t, "123abc", utils.Capitalize("123abc"))
	assert.Equal(t, "\xffabc", utils.Capitalize("\xffabc"))

	for _, s := range []string{"hello", "Hello", "élan", "x", "already Capital", "ß"} {
		once := utils.Capitalize(s)
		assert.Equal(t, once, utils.Capitalize(once), s)
	}
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "hello...", utils.TruncateText("hello world", 5))
	assert.Equal(t, "hi", utils.TruncateText("hi", 5))
	assert.Equal(t, "hello", utils.TruncateText("hello", 5))
	assert.Equal(t, "héllo...", utils.TruncateText("héllo wörld", 5))
	assert.Equal(t, "...", utils.TruncateText("abc", 0))
	assert.Equal(t, "...", utils.TruncateText("abc", -3))
	assert.Equal(t, "", utils.TruncateText("", 0))
}

func TestJoinClasses(t *testing.T) {
	assert.Equal(t, "a b", utils.JoinClasses("a", "", "b", "a"))
	assert.Equal(t, "px-2 py-1", utils.JoinClasses("px-2 py-1", "px-2"))
	assert.Equal(t, "", utils.JoinClasses())
	assert.Equal(t, "badge", utils.JoinClasses("  badge  "))
}

func TestSignPrefix(t *testing.T) {
	assert.Equal(t, "+", utils.SignPrefix(1))
	assert.Equal(t, "+", utils.SignPrefix(0))
	assert.Equal(t, "", utils.SignPrefix(-1))
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", utils.FormatRelativeTime(now.Add(-30*time.Minute), now))
	assert.Equal(t, "Just now", utils.FormatRelativeTime(now.Add(time.Hour), now))
	assert.Equal(t, "1h ago", utils.FormatRelativeTime(now.Add(-time.Hour), now))
	assert.Equal(t, "23h ago", utils.FormatRelativeTime(now.Add(-23*time.Hour), now))
	assert.Equal(t, "1d ago", utils.FormatRelativeTime(now.Add(-24*time.Hour), now))
	assert.Equal(t, "2d ago", utils.FormatRelativeTime(now.Add(-49*time.Hour), now))
}

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "92%", utils.FormatConfidence(0.92))
	assert.Equal(t, "100%", utils.FormatConfidence(1))
	assert.Equal(t, "0%", utils.FormatConfidence(0))
	assert.Equal(t, "0%", utils.FormatConfidence(math.NaN()))
}
