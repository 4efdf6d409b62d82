package auth

import (
	"context"
	"time"

	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookreview/pkg/jwt"
)

// SignupUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排：注册 → 签发Token → 保存会话
// 2. 注册成功即视为登录（与登录返回相同的Token响应）
type SignupUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewSignupUseCase 创建注册用例
func NewSignupUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *SignupUseCase {
	return &SignupUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// Execute 执行注册
func (uc *SignupUseCase) Execute(ctx context.Context, req SignupRequest) (*TokenResponse, error) {
	u, err := uc.userService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return issueToken(ctx, uc.jwtManager, uc.sessionStore, u)
}

// issueToken 签发Token并保存会话（注册/登录共用）
func issueToken(ctx context.Context, jwtManager *jwt.Manager, sessionStore *redis.SessionStore, u *user.User) (*TokenResponse, error) {
	token, err := jwtManager.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}

	// 会话保存失败不影响注册/登录结果
	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"username": u.Username,
		"login_at": time.Now().Unix(),
	}
	_ = sessionStore.SaveSession(ctx, u.ID, sessionData, jwtManager.Expire())

	return &TokenResponse{
		Token: token,
		User: UserInfo{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
		},
	}, nil
}

// =========================================
// 应用层DTO（数据传输对象）
// =========================================

// SignupRequest 注册请求
type SignupRequest struct {
	Username string
	Email    string
	Password string
}

// TokenResponse 注册/登录响应
// 说明：不返回密码字段（安全考虑）
type TokenResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
