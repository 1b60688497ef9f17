package helpers

import (
	"math/rand"
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// Slugify lowercases the input, collapses every non-alphanumeric run into a
// single hyphen and trims leading/trailing hyphens. Idempotent.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeSKU uppercases a user-supplied SKU and replaces whitespace runs
// with hyphens.
func NormalizeSKU(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}

// SKUPrefix derives a 2-letter prefix from a category slug or name: the first
// two letters, padded with "X", or "PR" when no letters are available.
func SKUPrefix(category string) string {
	var letters []rune
	for _, r := range strings.ToUpper(category) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
			if len(letters) == 2 {
				break
			}
		}
	}
	switch len(letters) {
	case 0:
		return "PR"
	case 1:
		return string(letters) + "X"
	default:
		return string(letters)
	}
}

const (
	digitRunes  = "0123456789"
	letterRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func RandomDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = digitRunes[rand.Intn(len(digitRunes))]
	}
	return string(b)
}

func RandomLetters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}
	return string(b)
}
