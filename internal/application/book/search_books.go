package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// SearchBooksUseCase 图书搜索用例
// 书名或作者的子串匹配，结果不分页（全量返回+计数）
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookService: bookService}
}

// SearchBooksResponse 搜索响应
type SearchBooksResponse struct {
	Count int       `json:"count"`
	Books []BookDTO `json:"data"`
}

// Execute 执行搜索
func (uc *SearchBooksUseCase) Execute(ctx context.Context, query string) (*SearchBooksResponse, error) {
	books, err := uc.bookService.SearchBooks(ctx, query)
	if err != nil {
		return nil, err
	}

	return &SearchBooksResponse{
		Count: len(books),
		Books: toBookDTOs(books),
	}, nil
}
