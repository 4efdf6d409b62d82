package review

import (
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 书评领域错误定义
var (
	// ErrReviewNotFound 书评不存在
	ErrReviewNotFound = apperrors.ErrReviewNotFound

	// ErrReviewDuplicate 重复书评（同一用户对同一本书）
	ErrReviewDuplicate = apperrors.ErrReviewDuplicate

	// ErrNotOwner 非书评作者
	ErrNotOwner = apperrors.ErrForbidden

	// ErrInvalidRating 评分不合法
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须是1-5的整数")

	// ErrInvalidComment 评论长度不合法
	ErrInvalidComment = apperrors.New(apperrors.ErrCodeInvalidParams, "评论长度应为1-500个字符")
)
