package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
)

// ListBooksUseCase 图书列表用例
// 分页+作者/类型过滤，每本书嵌套其全部书评（含评论者用户名）
type ListBooksUseCase struct {
	bookService book.Service
	reviewRepo  review.Repository
}

// NewListBooksUseCase 创建图书列表用例
func NewListBooksUseCase(bookService book.Service, reviewRepo review.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService, reviewRepo: reviewRepo}
}

// ListBooksRequest 列表请求
type ListBooksRequest struct {
	Page   int
	Limit  int
	Author string
	Genre  string
}

// ListBooksResponse 列表响应
type ListBooksResponse struct {
	Books []BookWithReviewsDTO
	Total int64
	Page  int
	Limit int
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:   page,
		Limit:  limit,
		Author: req.Author,
		Genre:  book.Genre(req.Genre),
	})
	if err != nil {
		return nil, err
	}

	// 批量查询当前页图书的全部书评，按图书分组嵌套
	bookIDs := make([]uint, len(books))
	for i, b := range books {
		bookIDs[i] = b.ID
	}
	reviews, err := uc.reviewRepo.ListByBookIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	reviewsByBook := make(map[uint][]ReviewDTO, len(books))
	for _, rv := range reviews {
		reviewsByBook[rv.BookID] = append(reviewsByBook[rv.BookID], toReviewDTO(rv))
	}

	items := make([]BookWithReviewsDTO, len(books))
	for i, b := range books {
		nested := reviewsByBook[b.ID]
		if nested == nil {
			nested = []ReviewDTO{}
		}
		items[i] = BookWithReviewsDTO{
			BookDTO: toBookDTO(b),
			Reviews: nested,
		}
	}

	return &ListBooksResponse{
		Books: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// normalizePage 分页参数归一化（默认第1页，每页10条）
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
