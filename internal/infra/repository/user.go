package repository

import (
	"context"

	"venuehub/internal/infra"
	"venuehub/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const createUserSQL = `
INSERT INTO users (email, password_hash, role)
VALUES ($1, $2, $3)
RETURNING id
`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, email, passwordHash, role string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := tx.QueryRow(ctx, createUserSQL, email, passwordHash, role).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

const updateLastLoginSQL = `
UPDATE users
SET last_login_at = now(), updated_at = now()
WHERE id = $1
`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
