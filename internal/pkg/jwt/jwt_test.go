package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/pkg/jwt"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := jwt.GenerateSessionToken("ana@co.com", "EMP001", "tid-1", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := jwt.ValidateSessionToken(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "ana@co.com", claims.Identifier)
	assert.Equal(t, "EMP001", claims.EmployeeID)
	assert.Equal(t, "tid-1", claims.ID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	tok, err := jwt.GenerateSessionToken("ana@co.com", "EMP001", "tid-1", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = jwt.ValidateSessionToken(tok, "other")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestSessionTokenExpired(t *testing.T) {
	tok, err := jwt.GenerateSessionToken("ana@co.com", "EMP001", "tid-1", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = jwt.ValidateSessionToken(tok, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
