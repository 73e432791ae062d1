package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type BalanceRepo interface {
	EnsureUserBalance(ctx context.Context, userID int) error
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type WalletRepo interface {
	GetBalance(ctx context.Context, userID int) (float64, error)
}

var (
	ErrInvalidCredentials = errors.New("Credenziali non valide")
	ErrUserBlocked        = errors.New("Account bloccato")
	ErrUserNotFound       = errors.New("Utente non trovato")
)

type Service struct {
	userRepo    UserRepo
	balanceRepo BalanceRepo
	walletRepo  WalletRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
	now         func() time.Time
}

func New(userRepo UserRepo, balanceRepo BalanceRepo, walletRepo WalletRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    userRepo,
		balanceRepo: balanceRepo,
		walletRepo:  walletRepo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		zap.L().Info("login for unknown email")
		return nil, ErrInvalidCredentials
	}
	if user.IsBlocked {
		zap.L().Info("login refused for blocked user", zap.Int("userID", user.ID))
		return nil, ErrUserBlocked
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid password", zap.Int("userID", user.ID))
		return nil, ErrInvalidCredentials
	}

	if err := s.balanceRepo.EnsureUserBalance(ctx, user.ID); err != nil {
		zap.L().Error("can't create balance", zap.Error(err))
		return nil, err
	}
	profile, err := s.profile(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateJWT(user.ID, user.IsAdmin, s.now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user successfully authenticated", zap.Int("userID", user.ID))
	return &domain.Session{Token: token, Profile: *profile}, nil
}

func (s *Service) Me(ctx context.Context, userID int) (*domain.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.profile(ctx, user)
}

func (s *Service) profile(ctx context.Context, user *domain.User) (*domain.Profile, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, user.ID)
	if err != nil {
		zap.L().Error("can't get balance", zap.Error(err))
		return nil, err
	}
	gp := domain.DefaultBalance
	if balance != nil {
		gp = balance.Balance
	}
	wallet, err := s.walletRepo.GetBalance(ctx, user.ID)
	if err != nil {
		zap.L().Error("can't get advisor wallet", zap.Error(err))
		return nil, err
	}
	return &domain.Profile{User: *user, Balance: gp, WalletBalance: wallet}, nil
}
