// Package vb6server exposes vb6p's parser as an HTTP API: authenticated
// clients submit `.bas`/`.cls`/`.frm`/`.ctl`/`.vbp` source and get back a
// diagnostic report, with a history of past submissions kept per user. Its
// shape is adapted from dekarrin-tunaq/server: a Store interface fronting
// swappable repositories, JWT bearer auth over bcrypt-hashed passwords, and
// go-chi routing, scaled down to the two resources this domain actually
// needs (users and submissions) rather than tunaq's full game/session/
// command set.
package vb6server

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by a repository method when the requested
	// entity does not exist.
	ErrNotFound = errors.New("the requested resource was not found")

	// ErrAlreadyExists is returned by a repository Create when a uniqueness
	// constraint (username) is violated.
	ErrAlreadyExists = errors.New("resource with same identifying information already exists")
)

// Role is a user's access level. Accounts created through POST /users get
// Normal; no handler checks a user's Role.
type Role int

const (
	Unverified Role = iota
	Normal
	Admin
)

func (r Role) String() string {
	switch r {
	case Unverified:
		return "unverified"
	case Normal:
		return "normal"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// User is an account authorized to submit source for parsing.
type User struct {
	ID             uuid.UUID
	Username       string
	PasswordHash   string
	Role           Role
	Created        time.Time
	LastLogoutTime time.Time
}

// Submission is one parsed file's record: what was submitted, what kind of
// file it was taken to be, and a summary of the diagnostics that came back.
// The source text itself is not retained, only its accounting.
type Submission struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	FileName        string
	Kind            string
	ByteSize        int
	DiagnosticCount int
	FormName        string
	Created         time.Time
}

// UserRepository persists User accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, u User) (User, error)
	Close() error
}

// SubmissionRepository persists Submission records.
type SubmissionRepository interface {
	Create(ctx context.Context, s Submission) (Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (Submission, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]Submission, error)
	Close() error
}

// Store holds the repositories a Server needs.
type Store interface {
	Users() UserRepository
	Submissions() SubmissionRepository
	Close() error
}
