package book

import (
	"context"
)

// Repository 图书仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 便于Mock测试，不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// CreateBatch 批量创建图书（一次事务插入）
	CreateBatch(ctx context.Context, books []*Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// UpdateRatingStats 更新评分统计字段（参与事务）
	UpdateRatingStats(ctx context.Context, id uint, averageRating float64, totalReviews int64) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Search 关键词搜索（书名或作者的子串匹配，不分页）
	Search(ctx context.Context, query string) ([]*Book, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page   int    // 页码（从1开始）
	Limit  int    // 每页数量
	Author string // 作者过滤（子串匹配，不区分大小写）
	Genre  Genre  // 类型过滤（精确匹配）
}
