package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeBookNotFound, "图书不存在")
	assert.Equal(t, "[40402] 图书不存在", err.Error())

	wrapped := Wrap(fmt.Errorf("connection refused"), "数据库错误")
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.Equal(t, ErrCodeInternal, wrapped.Code)
}

func TestWrap_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	wrapped := Wrap(inner, "外层")

	assert.ErrorIs(t, wrapped, inner)
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		appErr := GetAppError(ErrBookNotFound)
		assert.Equal(t, ErrCodeBookNotFound, appErr.Code)
	})

	t.Run("包装过的AppError可以提取", func(t *testing.T) {
		err := fmt.Errorf("查询图书: %w", ErrBookNotFound)
		appErr := GetAppError(err)
		assert.Equal(t, ErrCodeBookNotFound, appErr.Code)
	})

	t.Run("普通error包装为内部错误", func(t *testing.T) {
		appErr := GetAppError(errors.New("boom"))
		assert.Equal(t, ErrCodeInternal, appErr.Code)
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"未登录", ErrUnauthorized, 401},
		{"Token过期", ErrTokenExpired, 401},
		{"登录失败", ErrInvalidCredentials, 401},
		{"无权操作按401处理", ErrForbidden, 401},
		{"图书不存在", ErrBookNotFound, 404},
		{"书评不存在", ErrReviewNotFound, 404},
		{"重复书评", ErrReviewDuplicate, 400},
		{"重复账号", ErrUserDuplicate, 400},
		{"参数错误", ErrInvalidParams, 400},
		{"内部错误", ErrInternal, 500},
		{"普通error", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
