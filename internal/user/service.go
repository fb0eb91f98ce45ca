package user

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength    = 255
	minEmailLength    = 3
	maxNameLength     = 150
	minPasswordLength = 6
	bcryptCost        = 12
)

var (
	ErrInvalidEmail       = fmt.Errorf("email address is not valid")
	ErrEmailLength        = fmt.Errorf("email address length must be between %d and %d characters", minEmailLength, maxEmailLength)
	ErrNameLength         = fmt.Errorf("first and last name must be at most %d characters", maxNameLength)
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInternalError      = errors.New("internal Server Error")
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	HashToken    string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileUpdate carries the self-service profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Password  *string
}

type Service interface {
	Register(email, firstName, lastName, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*User, error)
	VerifyPassword(user *User, password string) bool
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

// generateHashToken produces the per-user secret bound into refresh tokens.
// Rotating it invalidates every refresh token issued before the rotation.
func generateHashToken() (string, error) {
	token := make([]byte, 32)
	_, err := rand.Read(token)
	if err != nil {
		return "", fmt.Errorf("could not generate hash token: %v", err)
	}
	return hex.EncodeToString(token), nil
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	if len(email) > maxEmailLength || len(email) <= minEmailLength {
		return ErrEmailLength
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func (s *service) Register(email, firstName, lastName, password string) (*User, error) {
	// Email is the case-insensitive login key.
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if len(firstName) > maxNameLength || len(lastName) > maxNameLength {
		return nil, ErrNameLength
	}

	existingUser, err := s.repo.getUserByEmail(email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, ErrInternalError
	}
	if existingUser != nil {
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	hashToken, err := generateHashToken()
	if err != nil {
		return nil, ErrInternalError
	}

	newUser := &User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		HashToken:    hashToken,
	}

	if err := s.repo.createUser(newUser); err != nil {
		// The unique index on lower(email) is the authority; the lookup above
		// only narrows the race window.
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, ErrInternalError
	}

	return newUser, nil
}

func (s *service) UpdateProfile(userID string, update ProfileUpdate) (*User, error) {
	existingUser, err := s.repo.getUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternalError
	}

	if update.FirstName != nil {
		if len(*update.FirstName) > maxNameLength {
			return nil, ErrNameLength
		}
		existingUser.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		if len(*update.LastName) > maxNameLength {
			return nil, ErrNameLength
		}
		existingUser.LastName = *update.LastName
	}
	if update.Password != nil {
		if err := validatePassword(*update.Password); err != nil {
			return nil, err
		}
	}

	if update.FirstName != nil || update.LastName != nil {
		if err := s.repo.updateUserNames(userID, existingUser.FirstName, existingUser.LastName); err != nil {
			return nil, ErrInternalError
		}
	}

	if update.Password != nil {
		newPasswordHash, err := hashPassword(*update.Password)
		if err != nil {
			return nil, ErrInternalError
		}
		newHashToken, err := generateHashToken()
		if err != nil {
			return nil, ErrInternalError
		}
		if err := s.repo.updateUserPasswordAndHashToken(userID, newPasswordHash, newHashToken); err != nil {
			return nil, ErrInternalError
		}
		existingUser.PasswordHash = newPasswordHash
		existingUser.HashToken = newHashToken
	}

	return existingUser, nil
}

func (s *service) VerifyPassword(user *User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(strings.ToLower(strings.TrimSpace(email)))
}
