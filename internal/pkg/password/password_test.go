package password_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/pkg/password"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      []string
	}{
		{"strong", "abc12!", nil},
		{"empty", "", []string{password.RuleMinLength, password.RuleDigit, password.RuleLetter, password.RuleSymbol}},
		{"too short", "a1!", []string{password.RuleMinLength}},
		{"no digit", "abcdef!", []string{password.RuleDigit}},
		{"no letter", "123456!", []string{password.RuleLetter}},
		{"no symbol", "abc123", []string{password.RuleSymbol}},
		{"space is not a symbol", "abc 123", []string{password.RuleSymbol}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, password.Validate(tt.candidate))
		})
	}
}

func TestHashAndVerify(t *testing.T) {
	password.Cost = 4
	defer func() { password.Cost = 12 }()

	hash, err := password.Hash("s3cret!")
	require.NoError(t, err)
	assert.True(t, password.Verify("s3cret!", hash))
	assert.False(t, password.Verify("other", hash))
}

func TestValidateProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	candidate := gen.RegexMatch(`[a-zA-Z0-9!?#._ -]{0,12}`)

	properties.Property("empty violation set iff every rule holds", prop.ForAll(
		func(s string) bool {
			var digit, letter, symbol bool
			for _, r := range s {
				digit = digit || unicode.IsDigit(r)
				letter = letter || unicode.IsLetter(r)
				symbol = symbol || strings.ContainsRune(password.Symbols, r)
			}
			strong := len([]rune(s)) >= password.MinLength && digit && letter && symbol
			return (len(password.Validate(s)) == 0) == strong
		},
		candidate,
	))

	properties.TestingRun(t)
}
