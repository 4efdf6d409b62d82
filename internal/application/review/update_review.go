package review

import (
	"context"
	"time"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
	"github.com/xiebiao/bookreview/internal/infrastructure/event"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// UpdateReviewUseCase 更新书评用例
// 业务规则：只有书评作者本人可以修改；评分变更后同一事务内重算统计
type UpdateReviewUseCase struct {
	reviewRepo  review.Repository
	bookService book.Service
	txManager   TxManager
	events      *event.Publisher
}

// NewUpdateReviewUseCase 创建更新书评用例
func NewUpdateReviewUseCase(
	reviewRepo review.Repository,
	bookService book.Service,
	txManager TxManager,
	events *event.Publisher,
) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo:  reviewRepo,
		bookService: bookService,
		txManager:   txManager,
		events:      events,
	}
}

// UpdateReviewRequest 更新书评请求
type UpdateReviewRequest struct {
	ReviewID uint
	UserID   uint // 调用者（从JWT中提取）
	Rating   int
	Comment  string
}

// Execute 执行更新书评
func (uc *UpdateReviewUseCase) Execute(ctx context.Context, req UpdateReviewRequest) (*ReviewDTO, error) {
	rv, err := uc.reviewRepo.FindByID(ctx, req.ReviewID)
	if err != nil {
		return nil, err
	}

	// 权限检查：只有作者本人可以修改
	if !rv.IsOwnedBy(req.UserID) {
		return nil, review.ErrNotOwner
	}

	if err := rv.UpdateContent(req.Rating, req.Comment); err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.Update(txCtx, rv); err != nil {
			return err
		}

		start := time.Now()
		if err := uc.bookService.RefreshRatingStats(txCtx, rv.BookID); err != nil {
			return err
		}
		metrics.RatingRecomputeDuration.Observe(time.Since(start).Seconds())

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.events.Publish(event.ReviewUpdated, event.ReviewEvent{
		ReviewID:   rv.ID,
		BookID:     rv.BookID,
		UserID:     rv.UserID,
		Rating:     rv.Rating,
		OccurredAt: time.Now(),
	})

	dto := toReviewDTO(rv)
	return &dto, nil
}
