// Package auth verifies the admin credentials and issues the JWTs that
// protect the admin routes.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	apperrors "go-gin-event-program/pkg/app_errors"

	"golang.org/x/crypto/bcrypt"
)

// Principal is the authenticated caller.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type CredentialVerifier interface {
	// Verify returns apperrors.ErrInvalidCredentials on any mismatch.
	Verify(ctx context.Context, username, password string) (*Principal, error)
}

// StaticAdminVerifier checks a single configured admin account.
type StaticAdminVerifier struct {
	username string
	hash     []byte
}

// NewStaticAdminVerifier accepts either a bcrypt hash or a plain password,
// which is hashed once at start-up. The hash wins when both are given.
func NewStaticAdminVerifier(username, password, passwordHash string) (CredentialVerifier, error) {
	if username == "" {
		return nil, errors.New("admin username is required")
	}

	var hash []byte
	switch {
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		hash = []byte(passwordHash)
	case password != "":
		generated, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = generated
	default:
		return nil, errors.New("admin password or password hash is required")
	}

	return &StaticAdminVerifier{username: username, hash: hash}, nil
}

func (v *StaticAdminVerifier) Verify(_ context.Context, username, password string) (*Principal, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	// bcrypt runs for unknown usernames too
	passErr := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	if !userOK || passErr != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &Principal{ID: v.username, Username: v.username, IsAdmin: true}, nil
}
