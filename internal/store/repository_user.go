package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on users.prn → [ErrPRNAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.PRN, user.PasswordHash, user.Name, user.Course, user.Year, user.Interests)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrPRNAlreadyRegistered
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&user.UserID, &user.PRN, &user.PasswordHash, &user.Name, &user.Course, &user.Year, &user.Interests, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrPRNAlreadyRegistered
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByPRN retrieves the user record registered for the given PRN.
//
// Returns [ErrNoUserWasFound] when no account exists for the PRN.
func (r *userRepository) FindUserByPRN(ctx context.Context, prn string) (models.User, error) {
	return r.findUser(ctx, findUserByPRN, prn)
}

// FindUserByID retrieves the user record with the given internal identifier.
//
// Returns [ErrNoUserWasFound] when no account exists for the ID.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.UserID, &foundUser.PRN, &foundUser.PasswordHash, &foundUser.Name, &foundUser.Course, &foundUser.Year, &foundUser.Interests, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}
