package auth

import (
	"errors"
	"net/http"

	"github.com/mwolczyk/BudgetManager/internal/user"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Login(email, password string) (*user.User, string, string, error)
	RefreshAccessToken(refreshToken string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Login verifies the credentials and issues a short-lived access token and a
// long-lived refresh token bound to the user's hash token.
func (s *service) Login(email, password string) (*user.User, string, string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", ErrInternalError
	}

	if !s.userService.VerifyPassword(existingUser, password) {
		return nil, "", "", ErrInvalidCredentials
	}

	jwtToken, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
	if err != nil {
		return nil, "", "", ErrInternalError
	}
	refreshToken, err := s.jwtManager.GenerateRefreshJWT(existingUser.ID, existingUser.HashToken, defaultJWTRefreshDuration)
	if err != nil {
		return nil, "", "", ErrInternalError
	}

	return existingUser, jwtToken, refreshToken, nil
}

// RefreshAccessToken exchanges a valid refresh token for a fresh access token.
// The refresh token itself is not rotated.
func (s *service) RefreshAccessToken(refreshToken string) (string, error) {
	userID, err := s.jwtManager.ExtractUserIDFromRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, ErrExpiredJWTToken) {
			return "", ErrExpiredJWTToken
		}
		return "", ErrInvalidJWTRefreshToken
	}

	existingUser, err := s.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidJWTRefreshToken
		}
		return "", ErrInternalError
	}

	if err := s.jwtManager.ValidateRefreshToken(refreshToken, existingUser.HashToken); err != nil {
		if errors.Is(err, ErrExpiredJWTToken) {
			return "", ErrExpiredJWTToken
		}
		return "", ErrInvalidJWTRefreshToken
	}

	jwtToken, err := s.jwtManager.GenerateAccessJWT(userID, defaultJWTDuration)
	if err != nil {
		return "", ErrInternalError
	}

	return jwtToken, nil
}
