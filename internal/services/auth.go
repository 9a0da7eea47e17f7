package services

import (
	"errors"
	"time"

	"github.com/studyring/reputation-backend/internal/config"
	"github.com/studyring/reputation-backend/internal/models"
	"github.com/studyring/reputation-backend/internal/utils"
	"github.com/studyring/reputation-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrUsernameTaken      = errors.New("username already taken")
)

// AuthService resolves callers to account identities. The ledger only
// ever sees the numeric account id carried in the JWT.
type AuthService struct {
	db  *gorm.DB
	jwt *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwt *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwt: jwt}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"account"`
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=100"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var account models.Account
	if err := s.db.Where("username = ?", req.Username).First(&account).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, ErrAccountDisabled
	}
	if !utils.CheckPassword(req.Password, account.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID, account.Username, account.Role, s.jwt.ExpireHour)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account.LastLogin = &now
	s.db.Model(&account).Update("last_login", now)

	return &LoginResponse{Token: token, Account: &account}, nil
}

func (s *AuthService) Register(req *RegisterRequest) (*models.Account, error) {
	var count int64
	s.db.Model(&models.Account{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Username:    req.Username,
		Password:    hash,
		DisplayName: req.DisplayName,
		Role:        "member",
		IsActive:    true,
	}
	if err := s.db.Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AuthService) GetAccountByID(id uint64) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAdminIfNotExists seeds the default admin account on first boot.
func (s *AuthService) CreateAdminIfNotExists() error {
	var count int64
	s.db.Model(&models.Account{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin123456")
	if err != nil {
		return err
	}

	admin := &models.Account{
		Username:    "admin",
		Password:    hash,
		DisplayName: "Administrator",
		Role:        "admin",
		IsActive:    true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}
	logger.Warn().Msg("created default admin account, change its password")
	return nil
}
