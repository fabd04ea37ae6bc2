package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Xausdorf/vietqr-receive/internal/domain/entity"
)

var ErrNotFound = errors.New("not found")

//go:generate mockgen -destination=../../usecase/generateqr/mocks/repository.go -package=mocks . UserRepository

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
