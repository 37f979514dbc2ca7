package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/models"
)

// rosterRepository is the PostgreSQL-backed implementation of
// [RosterRepository]. It reads the "students" table, which is populated out
// of band by the institution and treated as read-only here.
type rosterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRosterRepository constructs a [RosterRepository] backed by the provided
// database connection and logger.
func NewRosterRepository(db *DB, logger *logger.Logger) RosterRepository {
	logger.Debug().Msg("creating roster repository")
	return &rosterRepository{
		db:     db,
		logger: logger,
	}
}

// FindStudent retrieves the roster row matching student exactly on all four
// fields. A partial match (e.g. right PRN but wrong course) counts as no
// match, so impersonating another student's PRN with different profile data
// fails eligibility.
//
// Returns [ErrNoStudentWasFound] when the roster holds no such row.
func (r *rosterRepository) FindStudent(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	var found models.Student
	row := r.db.QueryRowContext(ctx, findStudent, student.PRN, student.Name, student.Course, student.Year)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrNoStudentWasFound
		}

		log.Err(err).Str("func", "*rosterRepository.FindStudent").Msg("error: row is nil")
		return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.PRN, &found.Name, &found.Course, &found.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrNoStudentWasFound
		}

		log.Err(err).Str("func", "*rosterRepository.FindStudent").Msg("error: scanning error")
		return models.Student{}, err
	}

	return found, nil
}
