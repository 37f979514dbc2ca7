package service

import "errors"

var (
	// ErrMalformedPRN is returned by Signup when the PRN is not exactly
	// twelve decimal digits. The check runs before any store access.
	ErrMalformedPRN = errors.New("prn must be exactly 12 digits")

	// ErrNotEligibleStudent is returned by Signup when no roster row matches
	// the supplied (prn, name, course, year) exactly.
	ErrNotEligibleStudent = errors.New("student details do not match the roster")

	// ErrNotRegistered is returned by Login when no account exists for the PRN.
	ErrNotRegistered = errors.New("user is not registered")

	// ErrWrongPassword is returned by Login when the password does not
	// reproduce the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidDataProvided is returned when required request fields are
	// empty or missing.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrMissingItemFields is returned by AddItem when title or price is absent.
	ErrMissingItemFields = errors.New("title and price are required")

	// ErrTokenIsExpiredOrInvalid is the single rejection class for every
	// token-verification failure. Expired, tampered, and malformed tokens
	// are deliberately indistinguishable to callers.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
