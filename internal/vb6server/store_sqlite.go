package vb6server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
)

// NewSQLiteStore opens (creating if absent) a sqlite-backed Store under
// storageDir, via modernc.org/sqlite's pure-Go driver.
func NewSQLiteStore(storageDir string) (Store, error) {
	file := filepath.Join(storageDir, "vb6p.db")
	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, wrapDBError(err)
	}

	st := &sqliteStore{db: db, users: &sqliteUsers{db: db}, subs: &sqliteSubmissions{db: db}}
	if err := st.users.init(); err != nil {
		return nil, err
	}
	if err := st.subs.init(); err != nil {
		return nil, err
	}
	return st, nil
}

type sqliteStore struct {
	db    *sql.DB
	users *sqliteUsers
	subs  *sqliteSubmissions
}

func (s *sqliteStore) Users() UserRepository             { return s.users }
func (s *sqliteStore) Submissions() SubmissionRepository { return s.subs }
func (s *sqliteStore) Close() error                      { return s.db.Close() }

type sqliteUsers struct {
	db *sql.DB
}

func (r *sqliteUsers) init() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role INTEGER NOT NULL,
		created INTEGER NOT NULL,
		last_logout_time INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (r *sqliteUsers) Close() error { return nil }

func (r *sqliteUsers) Create(ctx context.Context, u User) (User, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return User{}, fmt.Errorf("could not generate ID: %w", err)
	}
	u.ID = id
	u.Created = time.Now()
	u.LastLogoutTime = time.Now()

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, role, created, last_logout_time) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.Username, u.PasswordHash, int(u.Role), u.Created.Unix(), u.LastLogoutTime.Unix())
	if err != nil {
		return User{}, wrapDBError(err)
	}
	return u, nil
}

func (r *sqliteUsers) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role, created, last_logout_time FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

func (r *sqliteUsers) GetByUsername(ctx context.Context, username string) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role, created, last_logout_time FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *sqliteUsers) Update(ctx context.Context, u User) (User, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, password_hash = ?, role = ?, last_logout_time = ? WHERE id = ?`,
		u.Username, u.PasswordHash, int(u.Role), u.LastLogoutTime.Unix(), u.ID.String())
	if err != nil {
		return User{}, wrapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return User{}, ErrNotFound
	}
	return u, nil
}

func scanUser(row *sql.Row) (User, error) {
	var u User
	var id string
	var role int
	var created, logout int64

	err := row.Scan(&id, &u.Username, &u.PasswordHash, &role, &created, &logout)
	if err != nil {
		return User{}, wrapDBError(err)
	}
	u.ID, err = uuid.Parse(id)
	if err != nil {
		return User{}, fmt.Errorf("stored UUID %q is invalid: %w", id, err)
	}
	u.Role = Role(role)
	u.Created = time.Unix(created, 0)
	u.LastLogoutTime = time.Unix(logout, 0)
	return u, nil
}

type sqliteSubmissions struct {
	db *sql.DB
}

func (r *sqliteSubmissions) init() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS submissions (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL,
		file_name TEXT NOT NULL,
		kind TEXT NOT NULL,
		byte_size INTEGER NOT NULL,
		diagnostic_count INTEGER NOT NULL,
		form_name TEXT NOT NULL,
		created INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (r *sqliteSubmissions) Close() error { return nil }

func (r *sqliteSubmissions) Create(ctx context.Context, s Submission) (Submission, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Submission{}, fmt.Errorf("could not generate ID: %w", err)
	}
	s.ID = id
	s.Created = time.Now()

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO submissions (id, user_id, file_name, kind, byte_size, diagnostic_count, form_name, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.UserID.String(), s.FileName, s.Kind, s.ByteSize, s.DiagnosticCount, s.FormName, s.Created.Unix())
	if err != nil {
		return Submission{}, wrapDBError(err)
	}
	return s, nil
}

func (r *sqliteSubmissions) GetByID(ctx context.Context, id uuid.UUID) (Submission, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, file_name, kind, byte_size, diagnostic_count, form_name, created FROM submissions WHERE id = ?`, id.String())
	return scanSubmission(row)
}

func (r *sqliteSubmissions) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, file_name, kind, byte_size, diagnostic_count, form_name, created FROM submissions WHERE user_id = ? ORDER BY created ASC`,
		userID.String())
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []Submission
	for rows.Next() {
		s, err := scanSubmissionRows(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	return all, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row *sql.Row) (Submission, error)       { return scanSubmissionAny(row) }
func scanSubmissionRows(rows *sql.Rows) (Submission, error) { return scanSubmissionAny(rows) }

func scanSubmissionAny(row rowScanner) (Submission, error) {
	var s Submission
	var id, userID string
	var created int64

	err := row.Scan(&id, &userID, &s.FileName, &s.Kind, &s.ByteSize, &s.DiagnosticCount, &s.FormName, &created)
	if err != nil {
		return Submission{}, wrapDBError(err)
	}
	if s.ID, err = uuid.Parse(id); err != nil {
		return Submission{}, fmt.Errorf("stored UUID %q is invalid: %w", id, err)
	}
	if s.UserID, err = uuid.Parse(userID); err != nil {
		return Submission{}, fmt.Errorf("stored user UUID %q is invalid: %w", userID, err)
	}
	s.Created = time.Unix(created, 0)
	return s, nil
}

// wrapDBError maps modernc.org/sqlite's driver errors to the package's own
// sentinel errors, the same translation dekarrin-tunaq/server/dao/sqlite
// performs for its own store.
func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == 19 { // SQLITE_CONSTRAINT
			return ErrAlreadyExists
		}
		return fmt.Errorf("sqlite: %s", sqlite.ErrorCodeString[sqliteErr.Code()])
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
