package book

import (
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrInvalidTitle 书名长度不合法
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名长度应为1-100个字符")

	// ErrInvalidAuthor 作者不能为空
	ErrInvalidAuthor = apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空")

	// ErrInvalidGenre 类型不在枚举范围内
	ErrInvalidGenre = apperrors.New(apperrors.ErrCodeInvalidParams, "图书类型不合法")

	// ErrInvalidDescription 简介长度不合法
	ErrInvalidDescription = apperrors.New(apperrors.ErrCodeInvalidParams, "简介长度应为1-500个字符")

	// ErrInvalidPublishedYear 出版年份不合法
	ErrInvalidPublishedYear = apperrors.New(apperrors.ErrCodeInvalidParams, "出版年份不合法")

	// ErrEmptySearchQuery 搜索关键词为空
	ErrEmptySearchQuery = apperrors.New(apperrors.ErrCodeInvalidParams, "请提供搜索关键词")
)
