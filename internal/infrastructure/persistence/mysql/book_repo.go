package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookreview/internal/domain/book"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// CreateBatch 批量创建图书
// GORM的批量Create在一条INSERT中完成，整批原子成功或失败
func (r *bookRepository) CreateBatch(ctx context.Context, books []*book.Book) error {
	if len(books) == 0 {
		return nil
	}

	models := make([]*BookModel, len(books))
	for i, b := range books {
		models[i] = toBookModel(b)
	}

	if err := getDB(ctx, r.db).Create(&models).Error; err != nil {
		return apperrors.Wrap(err, "批量创建图书失败")
	}

	for i, model := range models {
		books[i].ID = model.ID
		books[i].CreatedAt = model.CreatedAt
		books[i].UpdatedAt = model.UpdatedAt
	}

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateRatingStats 更新评分统计字段
// 只更新统计列，避免覆盖并发修改的其他字段；参与调用方事务
func (r *bookRepository) UpdateRatingStats(ctx context.Context, id uint, averageRating float64, totalReviews int64) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating": averageRating,
			"total_reviews":  totalReviews,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新评分统计失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 分页查询图书列表
// 过滤条件:作者子串匹配(utf8mb4默认排序规则不区分大小写)、类型精确匹配
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookModel{})

	if params.Author != "" {
		query = query.Where("author LIKE ?", "%"+params.Author+"%")
	}
	if params.Genre != "" {
		query = query.Where("genre = ?", string(params.Genre))
	}

	// 先查总数(不带分页)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at DESC").
		Limit(params.Limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i, model := range models {
		books[i] = toBookEntity(&model)
	}

	return books, total, nil
}

// Search 关键词搜索(书名或作者子串匹配,不分页)
func (r *bookRepository) Search(ctx context.Context, query string) ([]*book.Book, error) {
	var models []BookModel

	keyword := "%" + query + "%"
	err := getDB(ctx, r.db).Model(&BookModel{}).
		Where("title LIKE ? OR author LIKE ?", keyword, keyword).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}

	books := make([]*book.Book, len(models))
	for i, model := range models {
		books[i] = toBookEntity(&model)
	}

	return books, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Author:        model.Author,
		Genre:         book.Genre(model.Genre),
		Description:   model.Description,
		PublishedYear: model.PublishedYear,
		AverageRating: model.AverageRating,
		TotalReviews:  model.TotalReviews,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		Title:         b.Title,
		Author:        b.Author,
		Genre:         string(b.Genre),
		Description:   b.Description,
		PublishedYear: b.PublishedYear,
		AverageRating: b.AverageRating,
		TotalReviews:  b.TotalReviews,
	}
}
