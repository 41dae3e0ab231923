package utils

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	ErrNonFinite       = errors.New("value is not a finite number")
	ErrUnknownCurrency = errors.New("unknown currency code")
	ErrInvalidDecimals = errors.New("decimals must be between 0 and 100")
	ErrOutOfRange      = errors.New("amount out of range")
)

// ChangeClass is the CSS class used to color a change value.
type ChangeClass string

const (
	PositiveChange ChangeClass = "positive-change"
	NegativeChange ChangeClass = "negative-change"
	NeutralChange  ChangeClass = "neutral-change"
)

const (
	maxPercentageDecimals = 100
	truncationSuffix      = "..."
	idLength              = 9
)

var (
	// JS-style whitespace: \s plus vertical tab and the unicode separators.
	emailRegex = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)

	maxCents = decimal.NewFromInt(math.MaxInt64)

	// 36^9, the number of distinct 9 character base36 ids.
	idSpace = int64(101559956668416)
)

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrNonFinite, v)
	}
	return nil
}

// FormatCurrency formats an amount as an en-US currency string with exactly
// two fractional digits, e.g. "$1,234.50". An empty currency means USD.
// Cents are rounded half away from zero.
func FormatCurrency(amount float64, currency string) (string, error) {
	if err := checkFinite(amount); err != nil {
		return "", err
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
	}

	cents := decimal.NewFromFloat(amount).Round(2).Shift(2)
	if cents.Abs().GreaterThan(maxCents) {
		return "", fmt.Errorf("%w: %v", ErrOutOfRange, amount)
	}

	// en-US layout regardless of the currency's own separators
	f := money.NewFormatter(2, ".", ",", cur.Grapheme, "$1")
	return f.Format(cents.IntPart()), nil
}

// FormatPercentage formats value with the given number of fractional digits
// followed by a percent sign. Ties round half away from zero, so 1.005 with
// two decimals gives "1.01%".
func FormatPercentage(value float64, decimals int) (string, error) {
	if err := checkFinite(value); err != nil {
		return "", err
	}
	if decimals < 0 || decimals > maxPercentageDecimals {
		return "", fmt.Errorf("%w: got %d", ErrInvalidDecimals, decimals)
	}
	return decimal.NewFromFloat(value).StringFixed(int32(decimals)) + "%", nil
}

// FormatNumber abbreviates large numbers with B, M and K suffixes and one
// decimal. Tiers are checked largest first and include their lower bound,
// so 1,000,000 is "1.0M". Smaller values are returned verbatim.
func FormatNumber(num float64) (string, error) {
	if err := checkFinite(num); err != nil {
		return "", err
	}
	d := decimal.NewFromFloat(num)
	switch {
	case num >= 1e9:
		return d.Shift(-9).StringFixed(1) + "B", nil
	case num >= 1e6:
		return d.Shift(-6).StringFixed(1) + "M", nil
	case num >= 1e3:
		return d.Shift(-3).StringFixed(1) + "K", nil
	case num == 0:
		// negative zero prints as "0"
		return "0", nil
	}
	return strconv.FormatFloat(num, 'f', -1, 64), nil
}

// ChangeColorClass classifies a change as positive, negative or neutral.
// NaN is neutral.
func ChangeColorClass(change float64) ChangeClass {
	if change > 0 {
		return PositiveChange
	}
	if change < 0 {
		return NegativeChange
	}
	return NeutralChange
}

// GenerateID returns a short random identifier for temporary use.
// It is NOT cryptographically secure and collides at scale; never use it
// where identity matters.
func GenerateID() string {
	id := strconv.FormatInt(rand.Int63n(idSpace), 36)
	if len(id) < idLength {
		id = strings.Repeat("0", idLength-len(id)) + id
	}
	return id
}

// IsValidEmail is a permissive local@domain.tld shape check, not RFC 5322.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Capitalize uppercases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TruncateText returns text unchanged when it fits in maxLength runes.
// Otherwise it keeps the first maxLength runes and appends "...", so the
// result is longer than maxLength by the suffix length.
func TruncateText(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	n := 0
	for i := range text {
		if n == maxLength {
			return text[:i] + truncationSuffix
		}
		n++
	}
	return text + truncationSuffix
}

// JoinClasses joins non-empty class names, dropping repeats.
func JoinClasses(classes ...string) string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		for _, token := range strings.Fields(c) {
			if seen[token] {
				continue
			}
			seen[token] = true
			out = append(out, token)
		}
	}
	return strings.Join(out, " ")
}

// SignPrefix returns "+" for non-negative values.
func SignPrefix(v float64) string {
	if v >= 0 {
		return "+"
	}
	return ""
}

// FormatRelativeTime describes how long ago ts was, relative to now.
func FormatRelativeTime(ts, now time.Time) string {
	hours := int(math.Floor(now.Sub(ts).Hours()))
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

// FormatConfidence renders a [0,1] confidence score as a whole percentage.
func FormatConfidence(c float64) string {
	if math.IsNaN(c) {
		return "0%"
	}
	return strconv.FormatFloat(math.Floor(c*100+0.5), 'f', 0, 64) + "%"
}
