package review

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
	"github.com/xiebiao/bookreview/internal/infrastructure/event"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// TxManager 事务管理器接口
// 由infrastructure/persistence/mysql.TxManager实现；
// 用例只依赖接口，单元测试可注入内存实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateReviewUseCase 创建书评用例
// 这是整个系统的核心写路径：
// 1. 图书必须存在
// 2. 字段校验（评分1-5、评论1-500）
// 3. 事务内：插入书评（复合唯一索引拒绝重复）→ 重算图书评分统计
// 4. 事务提交后尽力而为地发布领域事件
type CreateReviewUseCase struct {
	reviewRepo  review.Repository
	bookService book.Service
	txManager   TxManager
	events      *event.Publisher
}

// NewCreateReviewUseCase 创建书评用例
func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	bookService book.Service,
	txManager TxManager,
	events *event.Publisher,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo:  reviewRepo,
		bookService: bookService,
		txManager:   txManager,
		events:      events,
	}
}

// CreateReviewRequest 创建书评请求
type CreateReviewRequest struct {
	BookID  uint
	UserID  uint // 从JWT中提取
	Rating  int
	Comment string
}

// Execute 执行创建书评
//
// 并发说明：两个请求同时为同一(用户,图书)创建书评时，
// 数据库唯一索引保证只有一个INSERT成功，另一个收到ErrReviewDuplicate；
// 评分统计在同一事务内重算，统计失败则书评插入一并回滚
func (uc *CreateReviewUseCase) Execute(ctx context.Context, req CreateReviewRequest) (*ReviewDTO, error) {
	// 图书存在性检查（不存在返回404而非400）
	if _, err := uc.bookService.GetBookByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	rv := review.NewReview(req.UserID, req.BookID, req.Rating, req.Comment)
	if err := rv.Validate(); err != nil {
		return nil, err
	}

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.Create(txCtx, rv); err != nil {
			return err
		}

		// 同一事务内重算统计，保证书评与冗余统计字段的原子一致
		start := time.Now()
		if err := uc.bookService.RefreshRatingStats(txCtx, req.BookID); err != nil {
			return err
		}
		metrics.RatingRecomputeDuration.Observe(time.Since(start).Seconds())

		return nil
	})
	if err != nil {
		if errors.Is(err, review.ErrReviewDuplicate) {
			metrics.ReviewConflictsTotal.Inc()
		}
		return nil, err
	}

	metrics.ReviewsCreatedTotal.Inc()
	uc.events.Publish(event.ReviewCreated, event.ReviewEvent{
		ReviewID:   rv.ID,
		BookID:     rv.BookID,
		UserID:     rv.UserID,
		Rating:     rv.Rating,
		OccurredAt: time.Now(),
	})

	dto := toReviewDTO(rv)
	return &dto, nil
}
