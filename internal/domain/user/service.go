package user

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// bcryptCost 密码加密强度
// cost=10约70ms，注册/登录接口可接受；cost每+1耗时翻倍
const bcryptCost = 10

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（如密码加密、验证）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, username, email, password string) (*User, error)

	// Authenticate 验证邮箱+密码，返回用户
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// ValidatePassword 验证密码
	ValidatePassword(hashedPassword, plainPassword string) error
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则：
// 1. 用户名长度3-30
// 2. 邮箱格式校验
// 3. 密码长度6-100（加密前的明文长度）
// 4. 邮箱/用户名唯一性：先查询给出友好错误，最终由数据库UNIQUE索引兜底
func (s *service) Register(ctx context.Context, username, email, password string) (*User, error) {
	if len(username) < 3 || len(username) > 30 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "用户名长度应为3-30个字符")
	}

	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	if len(password) < 6 || len(password) > 100 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "密码长度应为6-100个字符")
	}

	// 预检查邮箱/用户名是否已占用
	// 注意：并发注册时预检查存在时间窗口，真正的保证是数据库UNIQUE索引
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrUserDuplicate
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUserDuplicate
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	// bcrypt自动加盐，相同密码每次加密结果都不同
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	u := NewUser(username, email, string(hashedPassword))

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return u, nil
}

// Authenticate 用户登录验证
// 注意：邮箱不存在和密码错误必须返回同一个ErrInvalidCredentials，防止账号枚举
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.ValidatePassword(u.Password, password); err != nil {
		return nil, err
	}

	return u, nil
}

// ValidatePassword 验证明文密码与哈希值是否匹配
func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidCredentials
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

// isValidEmail 邮箱格式校验
// 简单的正则校验，生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}
