package book

import (
	"context"
	"math"
)

// ReviewStats 评分统计数据源
// 由review仓储实现，book领域只依赖这个最小接口
type ReviewStats interface {
	// RatingStats 查询某本书当前所有书评的平均分与数量
	RatingStats(ctx context.Context, bookID uint) (average float64, total int64, err error)
}

// Service 图书领域服务接口
// 设计说明：
// 1. 领域服务封装跨实体的业务逻辑和业务规则校验
// 2. 评分聚合（RefreshRatingStats）跨越图书与书评两个聚合，放在领域服务中
type Service interface {
	// CreateBook 创建图书
	// 业务规则：字段校验见Book.Validate
	CreateBook(ctx context.Context, title, author string, genre Genre, description string, publishedYear int) (*Book, error)

	// CreateBooks 批量创建图书
	// 业务规则：任意一本校验失败则整批拒绝
	CreateBooks(ctx context.Context, books []*Book) error

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// SearchBooks 关键词搜索
	// 业务规则：关键词不能为空
	SearchBooks(ctx context.Context, query string) ([]*Book, error)

	// RefreshRatingStats 重算并持久化某本书的评分统计
	// 必须在书评变更的同一事务内调用（通过context传递事务）
	RefreshRatingStats(ctx context.Context, bookID uint) error

	// ComputeRatingStats 只读统计（详情页展示用，不写库）
	ComputeRatingStats(ctx context.Context, bookID uint) (average float64, total int64, err error)
}

// service 领域服务实现
type service struct {
	repo  Repository
	stats ReviewStats
}

// NewService 创建图书领域服务
func NewService(repo Repository, stats ReviewStats) Service {
	return &service{repo: repo, stats: stats}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title, author string, genre Genre, description string, publishedYear int) (*Book, error) {
	b := NewBook(title, author, genre, description, publishedYear)

	if err := b.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// CreateBooks 批量创建图书
func (s *service) CreateBooks(ctx context.Context, books []*Book) error {
	for _, b := range books {
		if err := b.Validate(); err != nil {
			return err
		}
	}

	return s.repo.CreateBatch(ctx, books)
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	if params.Genre != "" && !IsValidGenre(params.Genre) {
		return nil, 0, ErrInvalidGenre
	}
	return s.repo.List(ctx, params)
}

// SearchBooks 关键词搜索
func (s *service) SearchBooks(ctx context.Context, query string) ([]*Book, error) {
	if query == "" {
		return nil, ErrEmptySearchQuery
	}
	return s.repo.Search(ctx, query)
}

// RefreshRatingStats 重算评分统计
// 书评为空时平均分归0；统计与写回使用同一个context，
// 由调用方保证在书评变更的事务内执行
func (s *service) RefreshRatingStats(ctx context.Context, bookID uint) error {
	average, total, err := s.stats.RatingStats(ctx, bookID)
	if err != nil {
		return err
	}

	return s.repo.UpdateRatingStats(ctx, bookID, roundRating(average), total)
}

// ComputeRatingStats 只读统计
func (s *service) ComputeRatingStats(ctx context.Context, bookID uint) (float64, int64, error) {
	average, total, err := s.stats.RatingStats(ctx, bookID)
	if err != nil {
		return 0, 0, err
	}
	return roundRating(average), total, nil
}

// roundRating 平均分保留一位小数（四舍五入）
func roundRating(average float64) float64 {
	return math.Round(average*10) / 10
}
