package usecase

import (
	"context"
	"errors"
	"strings"

	"main/dto"
	"main/model"
	"main/repository"
	"main/services"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService struct {
	UsersRepo *repository.UsersRepo
}

// Register creates a new account. The email is normalized to lower case and
// must be unused; the unique index backs the pre-check.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		University: strings.TrimSpace(req.University),
		Password:   hash,
	}

	if err := s.UsersRepo.CreateUser(ctx, user); err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique index catches the loser.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials. Unknown email and wrong password
// fail identically.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
