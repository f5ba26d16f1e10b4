package vb6server

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// NewInMemoryStore returns a Store backed entirely by in-process maps. It is
// lost on process exit. `vb6p --serve` uses it when no --db directory is
// given, and the server tests use it.
func NewInMemoryStore() Store {
	return &inmemStore{
		users: newInmemUsers(),
		subs:  newInmemSubmissions(),
	}
}

type inmemStore struct {
	users *inmemUsers
	subs  *inmemSubmissions
}

func (s *inmemStore) Users() UserRepository             { return s.users }
func (s *inmemStore) Submissions() SubmissionRepository { return s.subs }
func (s *inmemStore) Close() error                      { return nil }

type inmemUsers struct {
	byID       map[uuid.UUID]User
	byUsername map[string]uuid.UUID
}

func newInmemUsers() *inmemUsers {
	return &inmemUsers{
		byID:       make(map[uuid.UUID]User),
		byUsername: make(map[string]uuid.UUID),
	}
}

func (r *inmemUsers) Close() error { return nil }

func (r *inmemUsers) Create(ctx context.Context, u User) (User, error) {
	if _, ok := r.byUsername[u.Username]; ok {
		return User{}, ErrAlreadyExists
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return User{}, fmt.Errorf("could not generate ID: %w", err)
	}
	u.ID = id
	u.Created = time.Now()
	u.LastLogoutTime = time.Now()

	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID
	return u, nil
}

func (r *inmemUsers) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *inmemUsers) GetByUsername(ctx context.Context, username string) (User, error) {
	id, ok := r.byUsername[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *inmemUsers) Update(ctx context.Context, u User) (User, error) {
	if _, ok := r.byID[u.ID]; !ok {
		return User{}, ErrNotFound
	}
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID
	return u, nil
}

type inmemSubmissions struct {
	byID   map[uuid.UUID]Submission
	byUser map[uuid.UUID][]uuid.UUID
}

func newInmemSubmissions() *inmemSubmissions {
	return &inmemSubmissions{
		byID:   make(map[uuid.UUID]Submission),
		byUser: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *inmemSubmissions) Close() error { return nil }

func (r *inmemSubmissions) Create(ctx context.Context, s Submission) (Submission, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Submission{}, fmt.Errorf("could not generate ID: %w", err)
	}
	s.ID = id
	s.Created = time.Now()

	r.byID[s.ID] = s
	r.byUser[s.UserID] = append(r.byUser[s.UserID], s.ID)
	return s, nil
}

func (r *inmemSubmissions) GetByID(ctx context.Context, id uuid.UUID) (Submission, error) {
	s, ok := r.byID[id]
	if !ok {
		return Submission{}, ErrNotFound
	}
	return s, nil
}

func (r *inmemSubmissions) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]Submission, error) {
	ids := r.byUser[userID]
	all := make([]Submission, 0, len(ids))
	for _, id := range ids {
		all = append(all, r.byID[id])
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Created.Before(all[j].Created) })
	return all, nil
}
