package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/internal/store"
	"github.com/MKhiriev/go-market-api/internal/validators"
	"github.com/MKhiriev/go-market-api/models"
)

// userService is the concrete implementation of UserService.
// It validates incoming user data, hashes passwords with bcrypt, and
// delegates persistence to a UserRepository.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// ListUsers returns every registered user.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users ended with error")
		return nil, fmt.Errorf("listing users ended with error: %w", err)
	}

	return users, nil
}

// CreateUser registers a new user account.
//
// It validates the input, replaces the plaintext password with its bcrypt
// digest, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - A wrapped ErrValidation if any field fails validation.
//   - ErrHashingPassword if the digest could not be computed.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (s *userService) CreateUser(ctx context.Context, in models.UserIn) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Str("email", in.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hashedPassword, err := hashPassword(in.Password)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	in.Password = hashedPassword

	createdUser, err := s.userRepository.CreateUser(ctx, in)
	if err != nil {
		log.Err(err).Str("email", in.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// GetUser returns the user with the given id, or a wrapped
// store.ErrUserNotFound when no such user exists.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("getting user ended with error")
		return models.User{}, fmt.Errorf("getting user ended with error: %w", err)
	}

	return user, nil
}

// UpdateUser replaces every field of an existing user.
//
// The supplied password goes through the same bcrypt path as CreateUser, so
// an update never stores plaintext.
func (s *userService) UpdateUser(ctx context.Context, id int64, in models.UserIn) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Int64("user_id", id).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hashedPassword, err := hashPassword(in.Password)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	in.Password = hashedPassword

	updatedUser, err := s.userRepository.UpdateUser(ctx, id, in)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes the user with the given id, or returns a wrapped
// store.ErrUserNotFound when no such user exists.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("user_id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

// hashPassword is the single write path for user credentials: every password
// that reaches storage goes through it.
func hashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}
