package review

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/review"
)

// MyReviewsUseCase 我的书评用例
// 返回当前用户的全部书评（含图书摘要），按创建时间倒序分页
type MyReviewsUseCase struct {
	reviewRepo review.Repository
}

// NewMyReviewsUseCase 创建我的书评用例
func NewMyReviewsUseCase(reviewRepo review.Repository) *MyReviewsUseCase {
	return &MyReviewsUseCase{reviewRepo: reviewRepo}
}

// MyReviewsResponse 我的书评响应
type MyReviewsResponse struct {
	Reviews []ReviewDTO
	Total   int64
	Page    int
	Limit   int
}

// Execute 执行查询
func (uc *MyReviewsUseCase) Execute(ctx context.Context, userID uint, page, limit int) (*MyReviewsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	reviews, total, err := uc.reviewRepo.ListByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]ReviewDTO, len(reviews))
	for i, rv := range reviews {
		dtos[i] = toReviewDTO(rv)
	}

	return &MyReviewsResponse{
		Reviews: dtos,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}
