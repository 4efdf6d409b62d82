package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "github.com/xiebiao/bookreview/internal/application/auth"
	"github.com/xiebiao/bookreview/internal/interface/http/dto"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/response"
)

// AuthHandler 认证相关HTTP处理器
// 职责：
// 1. 参数绑定与基础校验（binding tag）
// 2. 调用Application层用例
// 3. 组装HTTP响应
type AuthHandler struct {
	signupUseCase *authapp.SignupUseCase
	loginUseCase  *authapp.LoginUseCase
	logoutUseCase *authapp.LogoutUseCase
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(
	signupUseCase *authapp.SignupUseCase,
	loginUseCase *authapp.LoginUseCase,
	logoutUseCase *authapp.LogoutUseCase,
) *AuthHandler {
	return &AuthHandler{
		signupUseCase: signupUseCase,
		loginUseCase:  loginUseCase,
		logoutUseCase: logoutUseCase,
	}
}

// Signup 用户注册
// @Summary 用户注册
// @Description 注册新用户，成功后直接返回会话Token（注册即登录）
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "注册信息"
// @Success 201 {object} authapp.TokenResponse
// @Failure 400 {object} response.Response "参数错误或邮箱/用户名已被注册"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	resp, err := h.signupUseCase.Execute(c.Request.Context(), authapp.SignupRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// token和user在响应体顶层（不包在data中）
	response.SuccessRaw(c, http.StatusCreated, gin.H{
		"token": resp.Token,
		"user":  resp.User,
	})
}

// Login 用户登录
// @Summary 用户登录
// @Description 邮箱+密码登录，返回会话Token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} authapp.TokenResponse
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "邮箱或密码错误"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	resp, err := h.loginUseCase.Execute(c.Request.Context(), authapp.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessRaw(c, http.StatusOK, gin.H{
		"token": resp.Token,
		"user":  resp.User,
	})
}

// Logout 用户登出
// @Summary 用户登出
// @Description 删除会话并将当前Token加入黑名单
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response "未登录"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	token := middleware.GetToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), userID, token); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessRaw(c, http.StatusOK, gin.H{
		"message": "已退出登录",
	})
}
