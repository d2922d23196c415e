package demo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
	"github.com/rohanthewiz/serr"
)

const createUsersTable = `CREATE TABLE IF NOT EXISTS users (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT ''
)`

// SQLiteStore keeps users in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at path and creates the users table.
// The path can be ":memory:" for an in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}

	// ":memory:" databases live per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, serr.Wrap(err, "path", path)
	}

	if _, err := db.Exec(createUsersTable); err != nil {
		db.Close()
		return nil, serr.Wrap(err, "path", path)
	}

	return &SQLiteStore{db: db}, nil
}

// List returns all users ordered by id.
func (s *SQLiteStore) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email FROM users ORDER BY id`)
	if err != nil {
		return nil, serr.Wrap(err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, serr.Wrap(err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (User, error) {
	var user User
	err := s.db.QueryRowContext(ctx, `SELECT id, name, email FROM users WHERE id = ?`, id).
		Scan(&user.ID, &user.Name, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, serr.Wrap(err, "id", id)
	}
	return user, nil
}

func (s *SQLiteStore) Create(ctx context.Context, user User) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (id, name, email) VALUES (?, ?, ?)`,
		user.ID, user.Name, user.Email)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return ErrUserExists
	}
	if err != nil {
		return serr.Wrap(err, "id", user.ID)
	}
	return nil
}

func (s *SQLiteStore) Update(ctx context.Context, user User) error {
	result, err := s.db.ExecContext(ctx, `UPDATE users SET name = ?, email = ? WHERE id = ?`,
		user.Name, user.Email, user.ID)
	if err != nil {
		return serr.Wrap(err, "id", user.ID)
	}
	return requireRow(result, user.ID)
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return serr.Wrap(err, "id", id)
	}
	return requireRow(result, id)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// requireRow maps an update that touched nothing to ErrUserNotFound.
func requireRow(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return serr.Wrap(err, "id", id)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
