package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/mailer"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"
	"github.com/RishavSingh2203/freaky-fit/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthService struct {
	uowFactory  unitofwork.RepositoryFactory
	publisher   IPublisherService
	mailer      mailer.IEmailService
	logger      logger.ILogger
	eventsTopic string
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	emailService mailer.IEmailService,
	logger logger.ILogger,
	eventsTopic string,
) IAuthService {
	return &AuthService{
		uowFactory:  uowFactory,
		publisher:   publisher,
		mailer:      emailService,
		logger:      logger,
		eventsTopic: eventsTopic,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: &hashStr,
		FullName:     req.FullName,
		Role:         entity.UserRoleUser,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(s.eventsTopic, events.NewUserRegistered(user.Id, user.FullName)); err != nil {
		s.logger.Warn("auth", "failed to publish registration event", map[string]interface{}{
			"user":  user.Id.String(),
			"error": err.Error(),
		})
	}

	// Welcome mail is best effort and must not block the response.
	go func(email, name string) {
		if err := s.mailer.SendWelcome(email, name); err != nil {
			s.logger.Warn("auth", "failed to send welcome email", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
		}
	}(user.Email, user.FullName)

	s.logger.Info("auth", "user registered", map[string]interface{}{
		"user": user.Id.String(),
	})

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserDTO(user),
	}, nil
}

func (s *AuthService) generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
