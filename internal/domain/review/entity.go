package review

import (
	"time"
)

// Review 书评实体（聚合根）
// 设计说明：
// 1. 一个用户对一本书只能有一条书评，由数据库(user_id, book_id)复合唯一索引保证
// 2. Username和Book是查询时联表填充的只读冗余字段，写入时忽略
type Review struct {
	ID        uint
	Rating    int    // 评分（1-5整数）
	Comment   string // 评论内容（1-500字符）
	UserID    uint
	BookID    uint
	CreatedAt time.Time
	UpdatedAt time.Time

	Username string       // 评论者用户名（联表查询填充）
	Book     *BookSummary // 所评图书摘要（联表查询填充）
}

// BookSummary 书评关联的图书摘要（我的书评列表用）
type BookSummary struct {
	ID     uint
	Title  string
	Author string
	Genre  string
}

// NewReview 创建新书评（工厂方法）
func NewReview(userID, bookID uint, rating int, comment string) *Review {
	now := time.Now()
	return &Review{
		Rating:    rating,
		Comment:   comment,
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate 书评字段校验（业务规则）
func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	if len(r.Comment) < 1 || len(r.Comment) > 500 {
		return ErrInvalidComment
	}
	return nil
}

// IsOwnedBy 检查书评是否属于指定用户
func (r *Review) IsOwnedBy(userID uint) bool {
	return r.UserID == userID
}

// UpdateContent 更新评分和评论（领域行为）
func (r *Review) UpdateContent(rating int, comment string) error {
	r.Rating = rating
	r.Comment = comment
	if err := r.Validate(); err != nil {
		return err
	}
	r.UpdatedAt = time.Now()
	return nil
}
