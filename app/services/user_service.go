package services

import (
	"errors"
	"fmt"

	"blogsite/app/auth"
	"blogsite/app/models"
	"blogsite/app/repositories"
)

var (
	// ErrUnknownEmail means no account exists for the email.
	ErrUnknownEmail = errors.New("no account registered for this email")
	// ErrWrongPassword means the account exists but the password does not match.
	ErrWrongPassword = errors.New("incorrect password")
)

// UserService handles registration and authentication.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register hashes the password and creates the account. The repository
// rejects duplicate emails with repositories.ErrDuplicateEmail.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// EmailTaken reports whether an account already exists for the email.
func (s *UserService) EmailTaken(email string) (bool, error) {
	_, err := s.userRepo.GetByEmail(email)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Authenticate verifies the credentials and returns the matching user.
// Unknown emails and bad passwords are distinct failures because the
// login page redirects them differently.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
