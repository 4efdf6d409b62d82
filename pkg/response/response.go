package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Success表示业务是否成功，客户端优先判断此字段
// 2. 成功时返回Data（失败时省略），失败时返回Message
// 3. 列表接口附带Pagination块
// 4. HTTP状态码与错误类别对应（400/401/404/500），成功为200/201
type Response struct {
	Success    bool        `json:"success"`
	Message    interface{} `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessRaw 成功响应，但由调用方完全控制响应体顶层字段
// 用途：登录/注册等接口的响应在顶层携带token字段，而非包在data中
func SuccessRaw(c *gin.Context, status int, body gin.H) {
	body["success"] = true
	c.JSON(status, body)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误只进日志，不透给客户端
	if appErr.Err != nil {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
	}

	c.JSON(apperrors.HTTPStatus(appErr), Response{
		Success: false,
		Message: appErr.Message,
	})
}

// ErrorWithStatus 自定义状态码和消息
// 用途：参数绑定失败等不经过AppError的场景
func ErrorWithStatus(c *gin.Context, status int, message interface{}) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// =========================================
// 分页响应结构
// =========================================

// Pagination 分页信息
// totalPages = ceil(totalItems/limit)
// hasNextPage ⇔ page < totalPages，hasPrevPage ⇔ page > 1
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination 计算分页信息
func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &Pagination{
		Page:        page,
		Limit:       limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Map 以自定义总数字段名导出分页信息
// 各列表接口的总数字段名不同（totalBooks/totalReviews），由Handler指定
func (p *Pagination) Map(totalKey string) gin.H {
	return gin.H{
		"page":        p.Page,
		"limit":       p.Limit,
		totalKey:      p.TotalItems,
		"totalPages":  p.TotalPages,
		"hasNextPage": p.HasNextPage,
		"hasPrevPage": p.HasPrevPage,
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	})
}
