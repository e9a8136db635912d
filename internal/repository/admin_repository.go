package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-event-program/internal/model"
	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UpdateAdminParams struct {
	PasswordHash *string
	IsAdmin      *bool
}

type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) (*model.Admin, error)
	List(ctx context.Context) ([]*model.Admin, error)
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	Update(ctx context.Context, id int, params UpdateAdminParams) (*model.Admin, error)
	Delete(ctx context.Context, id int) error
}

type AdminRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &AdminRepositoryImpl{
		pool: pool,
	}
}

const adminColumns = `id, username, password_hash, is_admin, created_at, updated_at`

func scanAdmin(row rowScanner) (*model.Admin, error) {
	var admin model.Admin
	err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.IsAdmin,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *model.Admin) (*model.Admin, error) {
	query := `
		INSERT INTO admins (username, password_hash, is_admin)
		VALUES ($1, $2, $3)
		RETURNING ` + adminColumns

	created, err := scanAdmin(r.pool.QueryRow(ctx, query, admin.Username, admin.PasswordHash, admin.IsAdmin))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return created, nil
}

func (r *AdminRepositoryImpl) List(ctx context.Context) ([]*model.Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := make([]*model.Admin, 0)
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

func (r *AdminRepositoryImpl) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE username = $1 AND deleted_at IS NULL
	`

	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (r *AdminRepositoryImpl) Update(ctx context.Context, id int, params UpdateAdminParams) (*model.Admin, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.PasswordHash != nil {
		sets = append(sets, fmt.Sprintf("password_hash = $%d", argPos))
		args = append(args, *params.PasswordHash)
		argPos++
	}
	if params.IsAdmin != nil {
		sets = append(sets, fmt.Sprintf("is_admin = $%d", argPos))
		args = append(args, *params.IsAdmin)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE admins
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, adminColumns)

	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

// Delete is a soft delete; the username stays reserved.
func (r *AdminRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		UPDATE admins
		SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`

	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, now, now, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}
