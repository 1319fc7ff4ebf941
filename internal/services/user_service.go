package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"influBack/internal/models"
	"influBack/internal/repositories"
	"influBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 60 * 24 * time.Hour
)

type UserService struct {
	UserRepo       *repositories.UserRepository
	InfluencerRepo *repositories.InfluencerRepository
	BrandRepo      *repositories.BrandRepository
	TokenManager   *utils.Manager
	SigningKey     string
}

// SignUp creates the account plus an empty profile row for the chosen side of
// the marketplace and signs the new user in.
func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return models.SignUpResponse{}, fmt.Errorf("%w: email and password are required", models.ErrInvalidInput)
	}
	if req.Role != models.RoleInfluencer && req.Role != models.RoleBrand {
		return models.SignUpResponse{}, fmt.Errorf("%w: role must be influencer or brand", models.ErrInvalidInput)
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if existing.Email != "" {
		return models.SignUpResponse{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	user, err := s.UserRepo.CreateUser(ctx, models.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     req.Role,
	})
	if err != nil {
		return models.SignUpResponse{}, err
	}

	switch req.Role {
	case models.RoleInfluencer:
		_, err = s.InfluencerRepo.CreateInfluencer(ctx, models.Influencer{
			UserID:      user.ID,
			ChannelName: req.ChannelName,
		})
	case models.RoleBrand:
		_, err = s.BrandRepo.CreateBrand(ctx, models.Brand{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
		})
	}
	if err != nil {
		return models.SignUpResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	user.Password = ""
	return models.SignUpResponse{User: user, Tokens: tokens}, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return models.Tokens{}, err
	}
	if user.Email == "" {
		return models.Tokens{}, models.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Tokens{}, models.ErrInvalidPassword
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	var tokens models.Tokens

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uint(user.ID),
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})

	accessToken, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		return models.Tokens{}, err
	}
	tokens.AccessToken = accessToken

	tokens.RefreshToken = uuid.New().String()
	if s.TokenManager != nil {
		tokens.RefreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return models.Tokens{}, err
		}
	}

	session := models.Session{
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.SetSession(ctx, user.ID, session); err != nil {
		return models.Tokens{}, err
	}
	return tokens, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) LogOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}
