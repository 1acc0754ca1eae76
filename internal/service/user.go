package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/autoshowroom/backend/internal/passhash"
	"github.com/autoshowroom/backend/internal/logging"
	"github.com/autoshowroom/backend/internal/models"
	"github.com/autoshowroom/backend/internal/mykafka"
	"github.com/autoshowroom/backend/internal/transport"
)

type UserRepo interface {
	EmailOrPhoneTaken(ctx context.Context, email, phone string) (bool, error)
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserService struct {
	Repo   UserRepo
	Events mykafka.Publisher
}

func (s *UserService) Register(ctx context.Context, req transport.RegisterRequest) error {
	l := logging.FromContext(ctx).With("svc", "user.register")

	taken, err := s.Repo.EmailOrPhoneTaken(ctx, req.Email, req.Phone.String())
	if err != nil {
		return fmt.Errorf("check email/phone: %w", err)
	}
	if taken {
		return ErrUserAlreadyExist
	}

	pwHash, err := passhash.Hash(req.Password)
	if errors.Is(err, passhash.ErrTooLong) {
		return fmt.Errorf("%w: password must be at most 72 bytes", ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone.String(),
		Password: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, ErrUserAlreadyExist) {
			l.Warn("register_conflict", "reason", "lost race on unique index")
			return ErrUserAlreadyExist
		}
		return fmt.Errorf("create user: %w", err)
	}

	publish(ctx, s.Events, mykafka.TopicUsers, strconv.FormatUint(uint64(user.ID), 10), "user_registered", transport.ToUserResponse(user))
	l.Info("register_success", "user_id", user.ID)
	return nil
}

func (s *UserService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := s.Repo.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !passhash.Matches(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, mykafka.TopicUsers, strconv.FormatUint(uint64(id), 10), "user_deleted", map[string]any{"id": id})
	return nil
}
