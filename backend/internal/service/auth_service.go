package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/config"
	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/jwt"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/metrics"
)

// 账号长度限制，密码上限为 bcrypt 的 72 字节
const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 6
	passwordMaxLen = 72
)

// 登录结果标签
const (
	loginSuccess = "success"
	loginInvalid = "invalid"
	loginError   = "error"
)

// SessionRevoker 会话吊销名单（Redis），不可用时传 nil
type SessionRevoker interface {
	RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, meta dto.SessionMeta) (*dto.LoginResult, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	// Logout 吊销令牌对应的会话，令牌无效时视为已登出
	Logout(ctx context.Context, token string) error
	// Authenticate 校验令牌签名、吊销名单与会话记录
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
}

type authService struct {
	cfg          *config.Config
	repo         *repository.Repository
	jwtMgr       *jwt.Manager
	revoker      SessionRevoker
	notification NotificationService
	metrics      metrics.Recorder
	logger       *zap.Logger
	now          func() time.Time
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	revoker SessionRevoker,
	notification NotificationService,
	rec metrics.Recorder,
	logger *zap.Logger,
) AuthService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &authService{
		cfg:          cfg,
		repo:         repo,
		jwtMgr:       jwtMgr,
		revoker:      revoker,
		notification: notification,
		metrics:      rec,
		logger:       logger,
		now:          time.Now,
	}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, meta dto.SessionMeta) (*dto.LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		s.metrics.RecordLogin(loginInvalid)
		return nil, ErrMissingCredentials
	}

	// 1. 查询用户
	user, err := s.repo.User.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.metrics.RecordLogin(loginInvalid)
			return nil, ErrInvalidCredentials
		}
		s.metrics.RecordLogin(loginError)
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	// 2. 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.metrics.RecordLogin(loginInvalid)
		return nil, ErrInvalidCredentials
	}

	// 3. 签发令牌并记录会话
	token, claims, err := s.jwtMgr.GenerateSessionToken(user.UserID, user.Username, user.Role)
	if err != nil {
		s.metrics.RecordLogin(loginError)
		s.logger.Error("生成会话令牌失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	session := &model.Session{
		SessionID: claims.ID,
		UserID:    user.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
		UserAgent: truncate(meta.UserAgent, 255),
		IP:        truncate(meta.IP, 64),
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.metrics.RecordLogin(loginError)
		s.logger.Error("保存会话失败", zap.String("user_id", user.UserID), zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	now := s.now()
	if err := s.repo.User.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		s.logger.Warn("更新最后登录时间失败", zap.String("user_id", user.UserID), zap.Error(err))
	} else {
		user.LastLoginAt = &now
	}

	s.metrics.RecordLogin(loginSuccess)
	s.logger.Info("用户登录", zap.String("user_id", user.UserID), zap.String("ip", meta.IP))

	return &dto.LoginResult{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.TTL().Seconds()),
		User:      *toUserResponse(user),
	}, nil
}

// ────────────────────── Signup ──────────────────────

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// 唯一性检查
	if _, err := s.repo.User.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户名失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}
	if email != nil {
		if _, err := s.repo.User.GetByEmail(ctx, *email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询邮箱失败", zap.Error(err))
			return nil, apperrors.ErrInternal.Wrap(err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.Auth.BcryptCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if req.Nickname != nil {
		user.Nickname = strings.TrimSpace(*req.Nickname)
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// 并发注册时由唯一索引兜底，再查一次邮箱区分冲突来源
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if email != nil {
				if _, lookupErr := s.repo.User.GetByEmail(ctx, *email); lookupErr == nil {
					return nil, ErrEmailTaken
				}
			}
			return nil, ErrUsernameTaken
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	s.logger.Info("新用户注册", zap.String("user_id", user.UserID), zap.String("username", username))
	s.notification.NotifyRegistration(ctx, EntityUser, username, "")

	return toUserResponse(user), nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		return nil
	}

	now := s.now()
	if err := s.repo.Session.Revoke(ctx, claims.ID, now); err != nil {
		s.logger.Error("吊销会话失败", zap.String("session_id", claims.ID), zap.Error(err))
		return apperrors.ErrInternal.Wrap(err)
	}

	if s.revoker != nil {
		ttl := claims.ExpiresAt.Time.Sub(now)
		if ttl > 0 {
			if err := s.revoker.RevokeSession(ctx, claims.ID, ttl); err != nil {
				s.logger.Warn("写入吊销名单失败", zap.String("session_id", claims.ID), zap.Error(err))
			}
		}
	}

	s.logger.Info("用户登出", zap.String("user_id", claims.UserID))
	return nil
}

// ────────────────────── Authenticate ──────────────────────

func (s *authService) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	if s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("查询吊销名单失败，回退到数据库校验", zap.Error(err))
		} else if revoked {
			return nil, ErrSessionInvalid
		}
	}

	session, err := s.repo.Session.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		s.logger.Error("查询会话失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}
	if !session.Active(s.now()) || session.UserID != claims.UserID {
		return nil, ErrSessionInvalid
	}

	return claims, nil
}

// ── 内部辅助方法 ──

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < usernameMinLen {
		return ErrUsernameTooShort
	}
	if n > usernameMaxLen {
		return ErrUsernameTooLong
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < passwordMinLen {
		return ErrPasswordTooShort
	}
	if len(password) > passwordMaxLen {
		return ErrPasswordTooLong
	}
	return nil
}

// normalizeEmail 去除空白、校验格式并转为小写，空值返回 nil
func normalizeEmail(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	email := strings.TrimSpace(*raw)
	if email == "" {
		return nil, nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}
	email = strings.ToLower(email)
	return &email, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.ToValidUTF8(s[:max], "")
}
