package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/campusmarket/campus-market/internal/config"
	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/store"
	"github.com/campusmarket/campus-market/internal/utils"
	"github.com/campusmarket/campus-market/models"
)

// prnPattern matches a Permanent Registration Number: exactly twelve decimal
// digits. The check is string-level; leading zeros are significant.
var prnPattern = regexp.MustCompile(`^\d{12}$`)

// authService is the concrete implementation of AuthService.
// It handles roster-validated signup, credential verification, and the JWT
// session token lifecycle, using bcrypt for password hashing.
type authService struct {
	// rosterRepository validates signup eligibility against the student roster.
	rosterRepository store.RosterRepository

	// userRepository is the data-access layer used to create and look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	// Expiry is the only invalidation mechanism; tokens are never revoked.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(rosterRepository store.RosterRepository, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		rosterRepository: rosterRepository,
		userRepository:   userRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Signup creates a new account for an eligible student.
//
// The pipeline short-circuits on the first failure:
//  1. PRN shape check (twelve digits) — runs before any store access.
//  2. Roster lookup requiring an exact (prn, name, course, year) match.
//  3. Duplicate check for an existing account with the same PRN. The check
//     gives the caller a precise error, but the invariant itself is enforced
//     by the unique constraint on users.prn, so a concurrent duplicate
//     signup still fails at insert with the same sentinel.
//  4. Password hashing and insert.
//
// Returns the persisted account or:
//   - ErrMalformedPRN, ErrInvalidDataProvided for shape failures.
//   - ErrNotEligibleStudent when the roster has no exact match.
//   - store.ErrPRNAlreadyRegistered when an account already exists.
//   - A wrapped storage error otherwise.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if !prnPattern.MatchString(req.PRN) {
		log.Error().Str("prn", req.PRN).Msg("malformed prn provided")
		return models.User{}, ErrMalformedPRN
	}

	if req.Password == "" || req.Name == "" {
		log.Error().Str("prn", req.PRN).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.rosterRepository.FindStudent(ctx, models.Student{
		PRN:    req.PRN,
		Name:   req.Name,
		Course: req.Course,
		Year:   req.Year,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoStudentWasFound) {
			log.Err(err).Str("prn", req.PRN).Msg("student not found in roster")
			return models.User{}, ErrNotEligibleStudent
		}
		log.Err(err).Str("prn", req.PRN).Msg("roster lookup failed")
		return models.User{}, fmt.Errorf("roster lookup failed: %w", err)
	}

	if _, err = a.userRepository.FindUserByPRN(ctx, req.PRN); err == nil {
		log.Error().Str("prn", req.PRN).Msg("prn already registered")
		return models.User{}, store.ErrPRNAlreadyRegistered
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("prn", req.PRN).Msg("duplicate check failed")
		return models.User{}, fmt.Errorf("duplicate check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		PRN:          req.PRN,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Course:       req.Course,
		Year:         req.Year,
		Interests:    req.Interests,
	})
	if err != nil {
		log.Err(err).Str("prn", req.PRN).Msg("user creation ended with error")
		if errors.Is(err, store.ErrPRNAlreadyRegistered) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// It looks up the account by PRN and verifies the password against the
// stored bcrypt hash.
//
// Returns the authenticated account record or:
//   - ErrInvalidDataProvided if PRN or password is empty.
//   - ErrNotRegistered when no account exists for the PRN.
//   - ErrWrongPassword when the password does not match.
func (a *authService) Login(ctx context.Context, prn, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if prn == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByPRN(ctx, prn)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("prn", prn).Msg("login for unregistered prn")
			return models.User{}, ErrNotRegistered
		}
		log.Err(err).Str("prn", prn).Msg("user search by prn failed")
		return models.User{}, fmt.Errorf("user search by prn failed: %w", err)
	}

	match, err := utils.CheckPassword(password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is malformed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Error().Int64("id", foundUser.UserID).Str("prn", prn).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the user's PRN as a custom
// claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.PRN, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// issuer, and expiry. Any validation failure (expired, tampered, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors — and cannot distinguish the cases.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UserByID returns the account with the given internal identifier.
//
// Returns store.ErrNoUserWasFound when the account does not exist.
func (a *authService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, err
	}

	return foundUser, nil
}
