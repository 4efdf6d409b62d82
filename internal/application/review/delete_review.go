package review

import (
	"context"
	"time"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
	"github.com/xiebiao/bookreview/internal/infrastructure/event"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// DeleteReviewUseCase 删除书评用例
// 业务规则：只有书评作者本人可以删除；
// 物理删除后同一事务内重算统计（删除唯一书评时平均分归0）
type DeleteReviewUseCase struct {
	reviewRepo  review.Repository
	bookService book.Service
	txManager   TxManager
	events      *event.Publisher
}

// NewDeleteReviewUseCase 创建删除书评用例
func NewDeleteReviewUseCase(
	reviewRepo review.Repository,
	bookService book.Service,
	txManager TxManager,
	events *event.Publisher,
) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo:  reviewRepo,
		bookService: bookService,
		txManager:   txManager,
		events:      events,
	}
}

// Execute 执行删除书评
func (uc *DeleteReviewUseCase) Execute(ctx context.Context, reviewID, userID uint) error {
	rv, err := uc.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}

	// 权限检查：只有作者本人可以删除
	if !rv.IsOwnedBy(userID) {
		return review.ErrNotOwner
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.Delete(txCtx, reviewID); err != nil {
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
		return err
	}

	metrics.ReviewsDeletedTotal.Inc()
	uc.events.Publish(event.ReviewDeleted, event.ReviewEvent{
		ReviewID:   rv.ID,
		BookID:     rv.BookID,
		UserID:     rv.UserID,
		OccurredAt: time.Now(),
	})

	return nil
}
