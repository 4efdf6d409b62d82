package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
)

// GetBookUseCase 图书详情用例
// 返回图书+实时评分统计+分页书评
// 注意：统计从当前书评实时计算（AVG/COUNT），不读图书表的冗余字段，
// 保证详情页展示与书评数据强一致
type GetBookUseCase struct {
	bookService book.Service
	reviewRepo  review.Repository
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(bookService book.Service, reviewRepo review.Repository) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService, reviewRepo: reviewRepo}
}

// GetBookRequest 详情请求
type GetBookRequest struct {
	BookID uint
	Page   int
	Limit  int
}

// GetBookResponse 详情响应
type GetBookResponse struct {
	Book         BookDTO
	Statistics   StatisticsDTO
	Reviews      []ReviewDTO
	ReviewsTotal int64
	Page         int
	Limit        int
}

// Execute 执行详情查询
func (uc *GetBookUseCase) Execute(ctx context.Context, req GetBookRequest) (*GetBookResponse, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	b, err := uc.bookService.GetBookByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	averageRating, totalReviews, err := uc.bookService.ComputeRatingStats(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	reviews, reviewsTotal, err := uc.reviewRepo.ListByBookID(ctx, req.BookID, page, limit)
	if err != nil {
		return nil, err
	}

	reviewDTOs := make([]ReviewDTO, len(reviews))
	for i, rv := range reviews {
		reviewDTOs[i] = toReviewDTO(rv)
	}

	return &GetBookResponse{
		Book: toBookDTO(b),
		Statistics: StatisticsDTO{
			AverageRating: averageRating,
			TotalReviews:  totalReviews,
		},
		Reviews:      reviewDTOs,
		ReviewsTotal: reviewsTotal,
		Page:         page,
		Limit:        limit,
	}, nil
}
