package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go-gin-event-program/internal/model"
	apperrors "go-gin-event-program/pkg/app_errors"

	"golang.org/x/crypto/bcrypt"
)

// AdminStore is the lookup side of repository.AdminRepository.
type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
}

// DBCredentialVerifier checks organizer accounts kept in the database.
type DBCredentialVerifier struct {
	store     AdminStore
	dummyHash []byte
}

func NewDBCredentialVerifier(store AdminStore) (CredentialVerifier, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("unknown-user"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare verifier: %w", err)
	}
	return &DBCredentialVerifier{store: store, dummyHash: dummy}, nil
}

func (v *DBCredentialVerifier) Verify(ctx context.Context, username, password string) (*Principal, error) {
	admin, err := v.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			// keep the timing of unknown usernames close to a real check
			_ = bcrypt.CompareHashAndPassword(v.dummyHash, []byte(password))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &Principal{ID: strconv.Itoa(admin.ID), Username: admin.Username, IsAdmin: admin.IsAdmin}, nil
}

// HashPassword returns the bcrypt hash stored for an account.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
