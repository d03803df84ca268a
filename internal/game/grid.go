package game

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultSize is used whenever the requested grid size is invalid.
	DefaultSize = 4

	MinSize = 2
	MaxSize = 10
)

// sizeClasses maps a grid side to the card container modifier class.
var sizeClasses = map[int]string{
	2:  "card-container--two-cards",
	4:  "card-container--four-cards",
	6:  "card-container--six-cards",
	8:  "card-container--eight-cards",
	10: "card-container--ten-cards",
}

// ParseGridSize reads the grid side typed by the player. Like JavaScript's
// parseInt without a radix it skips leading white space, accepts a sign and
// a "0x" prefix, and reads the leading integer, so "6 cards" is 6 and "0xA"
// is 10. Anything that is not an even number in [MinSize, MaxSize] silently
// becomes DefaultSize.
func ParseGridSize(input string) int {
	n, ok := leadingInt(input)
	if !ok || n < MinSize || n > MaxSize || n%2 != 0 {
		return DefaultSize
	}
	return n
}

// isJSSpace matches the white space and line terminators parseInt skips.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, isJSSpace)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	base, isDigit := 10, func(b byte) bool { return b >= '0' && b <= '9' }
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, s = 16, s[2:]
		isDigit = func(b byte) bool {
			return (b >= '0' && b <= '9') || (b|0x20 >= 'a' && b|0x20 <= 'f')
		}
	}
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(sign+s[:i], base, 0)
	if err != nil {
		// Out of range: certainly not a valid size.
		return 0, false
	}
	return int(n), true
}

// SizeClass returns the card container class for a grid side.
func SizeClass(size int) string {
	if c, ok := sizeClasses[size]; ok {
		return c
	}
	return sizeClasses[DefaultSize]
}

// Values returns the ordered card values for a size×size grid: every value
// in [1, size²/2] twice, as 1, 1, 2, 2, ...
func Values(size int) []int {
	n := size * size
	values := make([]int, n)
	for i := range n {
		values[i] = i/2 + 1
	}
	return values
}

// Shuffle permutes values in place (Fisher-Yates).
func Shuffle(rng *rand.Rand, values []int) {
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}
