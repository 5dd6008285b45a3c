package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"thaimusic_backend/internal/config"
	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"
	"thaimusic_backend/pkg/mailer"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpKeyPrefix = "otp:"
	otpTTL       = 10 * time.Minute
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
	Redis    *redis.Client
	Mailer   *mailer.Mailer
	Logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config, rdb *redis.Client, m *mailer.Mailer, logger *zap.Logger) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
		Redis:    rdb,
		Mailer:   m,
		Logger:   logger,
	}
}

func (s *AuthService) Register(email, password, username string) (*model.User, error) {
	existing, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, util.ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Password: string(hashed),
		Username: username,
		Role:     model.RoleUser,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, util.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}
	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}

func (s *AuthService) UpdateProfile(userID uint, username string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.Username = username
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset issues a six-digit one-time code, valid for ten
// minutes, and mails it to the account address. Unknown addresses return
// ErrUserNotFound so the controller can keep the reply generic.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return util.ErrUserNotFound
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.Redis.Set(ctx, otpKeyPrefix+email, code, otpTTL).Err(); err != nil {
		return err
	}

	body := fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes.", code)
	if err := s.Mailer.Send(email, "Password reset code", body); err != nil {
		s.Logger.Error("otp mail delivery failed", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

// ResetPassword consumes the one-time code and replaces the password. The
// code is deleted before the write so it cannot be replayed.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	stored, err := s.Redis.Get(ctx, otpKeyPrefix+email).Result()
	if err == redis.Nil {
		return util.ErrInvalidOTP
	}
	if err != nil {
		return err
	}
	if stored != code {
		return util.ErrInvalidOTP
	}

	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return util.ErrUserNotFound
	}

	if err := s.Redis.Del(ctx, otpKeyPrefix+email).Err(); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(user.ID, string(hashed))
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
