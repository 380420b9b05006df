package util

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// Truncate cuts s to at most n characters (by rune count, not bytes or word
// boundary) and appends "..." only when something was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// TitleCase upper-cases the first letter of every space-separated word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		for j := 1; j < len(r); j++ {
			r[j] = unicode.ToLower(r[j])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// SymbolFromID derives a placeholder ticker symbol from a currency
// identifier: the first three characters upper-cased.
func SymbolFromID(id string) string {
	r := []rune(id)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}
