package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Xausdorf/vietqr-receive/internal/domain/entity"
	"github.com/Xausdorf/vietqr-receive/internal/domain/repository"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var name, accountNum string
	err := r.pool.QueryRow(ctx,
		`SELECT name, account_number FROM users WHERE id = $1`,
		id,
	).Scan(&name, &accountNum)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entity.NewUser(id, name, accountNum), nil
}
