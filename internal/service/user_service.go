package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/fsdevblog/groph-receipts/internal/service/tokens"
	"github.com/fsdevblog/groph-receipts/pkg/uow"
)

const DefaultJWTTokenExpire = 1 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
	jwtTokenExpire time.Duration
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
		jwtTokenExpire: DefaultJWTTokenExpire,
	}, nil
}

// WithTokenExpire задает время жизни выдаваемых токенов.
func (s *UserService) WithTokenExpire(expire time.Duration) *UserService {
	if expire > 0 {
		s.jwtTokenExpire = expire
	}
	return s
}

type RegisterUserArgs struct {
	FullName string
	Username string
	Email    string
	Password string
}

// Register создает пользователя. Если логин или email заняты, вернется ошибка domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering user: %w", hashErr)
	}

	var user *domain.User
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var createErr error
		user, createErr = repo.CreateUser(c, repoargs.CreateUser{
			FullName: args.FullName,
			Username: args.Username,
			Email:    args.Email,
			Password: password,
		})
		return createErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}
	return user, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login проверяет пару логин/пароль и выдает jwt токен. Возвращает 3 значения: юзер, токен и ошибку.
// Ошибки: domain.ErrRecordNotFound, domain.ErrPasswordMissMatch, domain.ErrUserInactive.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, args.Username)
	if err != nil {
		return nil, "", fmt.Errorf("login user: %w", err)
	}

	if !s.hasher.ComparePassword(args.Password, user.Password) {
		return nil, "", fmt.Errorf("login user: %w", domain.ErrPasswordMissMatch)
	}
	if !user.IsActive {
		return nil, "", fmt.Errorf("login user: %w", domain.ErrUserInactive)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, s.jwtTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", errors.Join(errors.New("login user"), tokenErr)
	}
	return user, token, nil
}
