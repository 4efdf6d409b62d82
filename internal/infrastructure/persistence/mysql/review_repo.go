package mysql

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookreview/internal/domain/review"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// reviewRepository 书评仓储实现(MySQL)
// 设计说明:
// 1. 写操作全部通过getDB(ctx)参与TxManager开启的事务
// 2. 读操作联表users/books填充冗余展示字段
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建书评仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// reviewRow 联表查询的扫描结构
type reviewRow struct {
	ReviewModel
	Username   string
	BookTitle  string
	BookAuthor string
	BookGenre  string
}

// Create 创建书评
// 重复书评由(user_id, book_id)复合唯一索引原子拒绝:
// 并发下两个请求同时通过"未评价过"检查时,只有一个INSERT能成功
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		Rating:  rv.Rating,
		Comment: rv.Comment,
		UserID:  rv.UserID,
		BookID:  rv.BookID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return review.ErrReviewDuplicate
		}
		return apperrors.Wrap(err, "创建书评失败")
	}

	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	rv.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找书评
func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询书评失败")
	}

	return toReviewEntity(&model), nil
}

// Update 更新书评(只更新可编辑字段)
func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) error {
	result := getDB(ctx, r.db).Model(&ReviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]interface{}{
			"rating":  rv.Rating,
			"comment": rv.Comment,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新书评失败")
	}

	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// Delete 删除书评(物理删除)
// ReviewModel没有DeletedAt字段,GORM执行真正的DELETE,
// 删除后该用户可以重新评价这本书
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ReviewModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除书评失败")
	}

	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// ListByBookID 分页查询某本书的书评(按创建时间倒序,含评论者用户名)
func (r *reviewRepository) ListByBookID(ctx context.Context, bookID uint, page, limit int) ([]*review.Review, int64, error) {
	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&ReviewModel{}).Where("book_id = ?", bookID).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评总数失败")
	}

	var rows []reviewRow
	offset := (page - 1) * limit
	err := db.Table("reviews").
		Select("reviews.*, users.username AS username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.book_id = ?", bookID).
		Order("reviews.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评列表失败")
	}

	reviews := make([]*review.Review, len(rows))
	for i, row := range rows {
		rv := toReviewEntity(&row.ReviewModel)
		rv.Username = row.Username
		reviews[i] = rv
	}

	return reviews, total, nil
}

// ListByBookIDs 查询一组图书的全部书评(列表页嵌套展示用)
func (r *reviewRepository) ListByBookIDs(ctx context.Context, bookIDs []uint) ([]*review.Review, error) {
	if len(bookIDs) == 0 {
		return nil, nil
	}

	var rows []reviewRow
	err := getDB(ctx, r.db).Table("reviews").
		Select("reviews.*, users.username AS username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.book_id IN ?", bookIDs).
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询书评列表失败")
	}

	reviews := make([]*review.Review, len(rows))
	for i, row := range rows {
		rv := toReviewEntity(&row.ReviewModel)
		rv.Username = row.Username
		reviews[i] = rv
	}

	return reviews, nil
}

// ListByUserID 分页查询某用户的书评(按创建时间倒序,含图书摘要)
func (r *reviewRepository) ListByUserID(ctx context.Context, userID uint, page, limit int) ([]*review.Review, int64, error) {
	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&ReviewModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评总数失败")
	}

	var rows []reviewRow
	offset := (page - 1) * limit
	err := db.Table("reviews").
		Select("reviews.*, books.title AS book_title, books.author AS book_author, books.genre AS book_genre").
		Joins("JOIN books ON books.id = reviews.book_id").
		Where("reviews.user_id = ?", userID).
		Order("reviews.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评列表失败")
	}

	reviews := make([]*review.Review, len(rows))
	for i, row := range rows {
		rv := toReviewEntity(&row.ReviewModel)
		rv.Book = &review.BookSummary{
			ID:     row.BookID,
			Title:  row.BookTitle,
			Author: row.BookAuthor,
			Genre:  row.BookGenre,
		}
		reviews[i] = rv
	}

	return reviews, total, nil
}

// RatingStats 统计某本书当前书评的平均分与数量
// 无书评时AVG返回NULL,用NullFloat64处理为0
func (r *reviewRepository) RatingStats(ctx context.Context, bookID uint) (float64, int64, error) {
	var result struct {
		Average sql.NullFloat64
		Total   int64
	}

	err := getDB(ctx, r.db).Model(&ReviewModel{}).
		Select("AVG(rating) AS average, COUNT(*) AS total").
		Where("book_id = ?", bookID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, apperrors.Wrap(err, "统计书评失败")
	}

	if !result.Average.Valid {
		return 0, 0, nil
	}

	return result.Average.Float64, result.Total, nil
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:        model.ID,
		Rating:    model.Rating,
		Comment:   model.Comment,
		UserID:    model.UserID,
		BookID:    model.BookID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
