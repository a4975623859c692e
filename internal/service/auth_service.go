package service

import (
	"errors"
	"time"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// resetTokenTTL bounds how long a forgot-password token stays usable.
const resetTokenTTL = 15 * time.Minute

type AuthService struct {
	UserRepo *repository.UserRepository
	JWT      *config.JWTConfig
}

func NewAuthService(userRepo *repository.UserRepository, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{UserRepo: userRepo, JWT: jwtCfg}
}

// Register creates an account with a bcrypt password hash.
func (s *AuthService) Register(email, password, name string) (*model.User, error) {
	if _, err := s.UserRepo.FindByEmail(email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Level:        1,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a session token. A wrong email and a
// wrong password produce the same error.
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, util.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(user.ID, user.Email, s.JWT.Secret, s.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ForgotPassword issues a short-lived reset token. An unknown email returns
// ("", nil) so the handler can respond identically either way.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	return util.GenerateResetToken(user.ID, user.Email, s.JWT.Secret, resetTokenTTL)
}

// ResetPassword validates a reset token and replaces the password hash.
// Session tokens are rejected here even when otherwise valid.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	claims, err := util.ParseJWT(token, s.JWT.Secret)
	if err != nil || claims.TokenType != util.TokenTypeReset {
		return util.ErrInvalidResetToken
	}

	user, err := s.UserRepo.FindByEmail(claims.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	return s.UserRepo.Update(user)
}

// UpdateProfile changes the mutable account fields; empty values are ignored.
func (s *AuthService) UpdateProfile(userID uint, name, avatar, bio string) (*model.User, error) {
	user, err := s.GetCurrentUser(userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}
	if bio != "" {
		user.Bio = bio
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
