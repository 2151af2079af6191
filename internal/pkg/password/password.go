package password

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt cost used by Hash. Tests lower it.
var Cost = 12

// MinLength is the minimum accepted password length (in characters)
const MinLength = 6

// Symbols is the punctuation set a password must draw at least one character from
const Symbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?`~"

// Rule names reported by Validate
const (
	RuleMinLength = "min_length"
	RuleDigit     = "digit"
	RuleLetter    = "letter"
	RuleSymbol    = "symbol"
)

// Hash hashes a password using bcrypt
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// HashToken hashes a token or one-time code using SHA256
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// Validate returns the rules the candidate does not satisfy, in a fixed order.
// An empty result means the password is acceptable.
func Validate(candidate string) []string {
	var hasDigit, hasLetter, hasSymbol bool
	for _, r := range candidate {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		case strings.ContainsRune(Symbols, r):
			hasSymbol = true
		}
	}

	var failed []string
	if utf8.RuneCountInString(candidate) < MinLength {
		failed = append(failed, RuleMinLength)
	}
	if !hasDigit {
		failed = append(failed, RuleDigit)
	}
	if !hasLetter {
		failed = append(failed, RuleLetter)
	}
	if !hasSymbol {
		failed = append(failed, RuleSymbol)
	}
	return failed
}

// RuleMessage returns the human-readable hint for a rule
func RuleMessage(rule string) string {
	switch rule {
	case RuleMinLength:
		return "Password must be at least 6 characters"
	case RuleDigit:
		return "Password must contain a number"
	case RuleLetter:
		return "Password must contain a letter"
	case RuleSymbol:
		return "Password must contain a special character"
	default:
		return rule
	}
}
