package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by every session token.
//
// It embeds [jwt.RegisteredClaims] for the standard fields (iss, sub, iat,
// exp) and adds the user's PRN as a custom claim so that handlers can log and
// authorize against the student identity without a database lookup.
// The "sub" claim holds the user ID encoded as a base-10 string.
type Claims struct {
	jwt.RegisteredClaims

	// PRN is the 12-digit student identifier of the token's subject.
	PRN string `json:"prn"`
}

// Token wraps a JWT session token with convenience accessors used by the
// authentication flow.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the Authorization header.
//
// UserID and PRN are parsed copies of the subject and prn claims, populated
// during token construction or validation so that callers never touch the
// raw claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set (standard fields plus PRN).
	Claims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim and
// parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
