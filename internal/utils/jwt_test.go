package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "campus-market-test"
	testSignKey = "test-sign-key"
	testPRN     = "123456789012"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, testPRN, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, testPRN, token.Claims.PRN)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		prn      string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", prn: testPRN, duration: time.Hour, signKey: testSignKey},
		{name: "empty prn", issuer: testIssuer, prn: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, prn: testPRN, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, prn: testPRN, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.prn, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 7, testPRN, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, testPRN, parsed.Claims.PRN)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 7, testPRN, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 7, testPRN, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, "someone-else")
	assert.Error(t, err)
}

// An expired token must be rejected the same way as a tampered one: by a
// non-nil error carrying no special typing for callers to branch on.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 7, testPRN, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("garbage.token.value", testSignKey, testIssuer)
	assert.Error(t, err)
}
