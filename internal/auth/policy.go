package auth

import (
	"strings"
	"unicode/utf8"
)

// passwordSymbols is the fixed set of symbols a password must draw from.
const passwordSymbols = "@$!%*?&"

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// ValidPassword reports whether a candidate password meets the signup policy:
// at least one letter, at least one digit, at least one symbol from the
// allowed set, and at least six characters. Pure and locale-insensitive;
// signin never re-checks this.
func ValidPassword(password string) bool {
	// Length is counted in characters, not bytes.
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		}
	}

	return hasLetter && hasDigit && hasSymbol
}
