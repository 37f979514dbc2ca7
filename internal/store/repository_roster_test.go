package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/models"
)

func newTestRosterRepo(t *testing.T) (*rosterRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &rosterRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestFindStudent_ExactMatch(t *testing.T) {
	repo, mock, db := newTestRosterRepo(t)
	defer db.Close()

	ctx := context.Background()
	student := models.Student{PRN: "123456789012", Name: "Alice", Course: "CS", Year: 2}

	rows := sqlmock.
		NewRows([]string{"prn", "name", "course", "year"}).
		AddRow(student.PRN, student.Name, student.Course, student.Year)

	mock.ExpectQuery("SELECT (.+) FROM students").
		WithArgs(student.PRN, student.Name, student.Course, student.Year).
		WillReturnRows(rows)

	found, err := repo.FindStudent(ctx, student)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != student {
		t.Errorf("expected %+v, got %+v", student, found)
	}
}

// A right PRN with a wrong profile field must count as no match: the query
// conditions on all four fields, so the database returns no rows.
func TestFindStudent_PartialMatchIsNoMatch(t *testing.T) {
	repo, mock, db := newTestRosterRepo(t)
	defer db.Close()

	ctx := context.Background()
	student := models.Student{PRN: "123456789012", Name: "Alice", Course: "EE", Year: 2}

	mock.ExpectQuery("SELECT (.+) FROM students").
		WithArgs(student.PRN, student.Name, student.Course, student.Year).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindStudent(ctx, student)
	if !errors.Is(err, ErrNoStudentWasFound) {
		t.Fatalf("expected ErrNoStudentWasFound, got %v", err)
	}
}

func TestFindStudent_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestRosterRepo(t)
	defer db.Close()

	ctx := context.Background()
	student := models.Student{PRN: "123456789012", Name: "Alice", Course: "CS", Year: 2}

	mock.ExpectQuery("SELECT (.+) FROM students").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindStudent(ctx, student)
	if err == nil || errors.Is(err, ErrNoStudentWasFound) {
		t.Fatalf("expected generic DB error, got %v", err)
	}
}
