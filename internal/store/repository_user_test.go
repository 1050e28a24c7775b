package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, dialect: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	in := models.UserIn{
		Name:     "Ann",
		Surname:  "Lee",
		Email:    "ann@x.com",
		Password: "$2a$10$digest",
	}

	rows := sqlmock.NewRows([]string{"id"}).AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(in.Name, in.Surname, in.Email, in.Password).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != in.Email {
		t.Errorf("expected email %s, got %s", in.Email, created.Email)
	}
	if created.Password != in.Password {
		t.Errorf("expected stored digest to be echoed back, got %s", created.Password)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.UserIn{Email: "ann@x.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.UserIn{Email: "ann@x.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "surname", "email", "password"}).
		AddRow(1, "Ann", "Lee", "ann@x.com", "hash-1").
		AddRow(2, "Bob", "Roe", "bob@x.com", "hash-2")

	mock.ExpectQuery("SELECT id, name, surname, email, password").
		WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Email != "bob@x.com" {
		t.Errorf("expected second email bob@x.com, got %s", users[1].Email)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, surname, email, password").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "surname", "email", "password"}).
		AddRow(7, "Ann", "Lee", "ann@x.com", "hash")

	mock.ExpectQuery("SELECT id, name, surname, email, password").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	user, err := repo.GetUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 || user.Name != "Ann" {
		t.Errorf("unexpected user returned: %+v", user)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	in := models.UserIn{Name: "Ann", Surname: "Lee", Email: "new@x.com", Password: "hash"}

	mock.ExpectExec("UPDATE users").
		WithArgs(in.Name, in.Surname, in.Email, in.Password, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateUser(context.Background(), 7, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 7 || updated.Email != "new@x.com" {
		t.Errorf("unexpected user returned: %+v", updated)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateUser(context.Background(), 404, models.UserIn{})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on repeated delete, got %v", err)
	}
}
