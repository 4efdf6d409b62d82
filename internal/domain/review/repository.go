package review

import (
	"context"
)

// Repository 书评仓储接口
// 设计说明：
// 1. 写操作全部支持通过context传递事务（配合TxManager）
// 2. Delete是物理删除：软删除会继续占用(user_id, book_id)唯一索引，
//    并污染AVG/COUNT统计
type Repository interface {
	// Create 创建书评
	// 同一用户重复评价同一本书时，返回errors.ErrReviewDuplicate
	// （由数据库复合唯一索引保证，应用层不做先查后插）
	Create(ctx context.Context, review *Review) error

	// FindByID 根据ID查找书评
	FindByID(ctx context.Context, id uint) (*Review, error)

	// Update 更新书评
	Update(ctx context.Context, review *Review) error

	// Delete 删除书评（物理删除）
	Delete(ctx context.Context, id uint) error

	// ListByBookID 分页查询某本书的书评（按创建时间倒序，含评论者用户名）
	ListByBookID(ctx context.Context, bookID uint, page, limit int) ([]*Review, int64, error)

	// ListByBookIDs 查询一组图书的全部书评（列表页嵌套展示用，含评论者用户名）
	ListByBookIDs(ctx context.Context, bookIDs []uint) ([]*Review, error)

	// ListByUserID 分页查询某用户的书评（按创建时间倒序，含图书摘要）
	ListByUserID(ctx context.Context, userID uint, page, limit int) ([]*Review, int64, error)

	// RatingStats 统计某本书当前书评的平均分与数量
	// 无书评时返回(0, 0, nil)
	RatingStats(ctx context.Context, bookID uint) (average float64, total int64, err error)
}
