package vb6server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned by login when the username doesn't exist or
// the password doesn't match.
var ErrBadCredentials = errors.New("the supplied username/password combination is incorrect")

// hashPassword bcrypt-hashes a plaintext password for storage.
func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("password is too long")
		}
		return "", fmt.Errorf("password could not be hashed: %w", err)
	}
	return string(hash), nil
}

// generateJWT signs a bearer token for u. The signing key is derived from
// the server secret plus the user's current password hash and last-logout
// time, so changing either (a password reset, or a forced logout) silently
// invalidates every token issued before that change, without needing a
// revocation list.
func generateJWT(secret []byte, u User) (string, error) {
	claims := &jwt.MapClaims{
		"iss": "vb6p",
		"sub": u.ID.String(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString(signingKey(secret, u))
}

// verifyJWT validates a bearer token and returns the User it was issued to.
func verifyJWT(ctx context.Context, users UserRepository, secret []byte, tokStr string) (User, error) {
	var user User

	_, err := jwt.Parse(tokStr, func(t *jwt.Token) (interface{}, error) {
		subj, err := t.Claims.GetSubject()
		if err != nil {
			return nil, fmt.Errorf("cannot get subject: %w", err)
		}
		id, err := uuid.Parse(subj)
		if err != nil {
			return nil, fmt.Errorf("cannot parse subject UUID: %w", err)
		}
		user, err = users.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("subject does not exist")
		}
		return signingKey(secret, user), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer("vb6p"), jwt.WithLeeway(time.Minute))

	if err != nil {
		return User{}, err
	}
	return user, nil
}

func signingKey(secret []byte, u User) []byte {
	var key []byte
	key = append(key, secret...)
	key = append(key, []byte(u.PasswordHash)...)
	key = append(key, []byte(fmt.Sprintf("%d", u.LastLogoutTime.UnixNano()))...)
	return key
}

// Login checks a username/password pair against the store and, on success,
// returns a signed bearer token.
func Login(ctx context.Context, store Store, secret []byte, username, password string) (string, error) {
	user, err := store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrBadCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}

	return generateJWT(secret, user)
}

// Logout advances a user's LastLogoutTime, which invalidates every token
// issued to them up to now (see generateJWT).
func Logout(ctx context.Context, store Store, userID uuid.UUID) error {
	user, err := store.Users().GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.LastLogoutTime = time.Now()
	_, err = store.Users().Update(ctx, user)
	return err
}
