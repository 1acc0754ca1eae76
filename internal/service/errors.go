package service

import (
	"errors"

	"github.com/autoshowroom/backend/internal/repo"
	"github.com/autoshowroom/backend/internal/validate"
)

var (
	ErrValidation         = validate.ErrValidation
	ErrNotFound           = repo.ErrNotFound
	ErrUserAlreadyExist   = repo.ErrUserAlreadyExist
	ErrInvalidCredentials = errors.New("invalid credentials")
)
