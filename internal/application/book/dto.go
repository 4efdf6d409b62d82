package book

import (
	"time"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
)

// =========================================
// 应用层DTO（数据传输对象）
// 说明：不直接返回领域实体，领域模型变更不影响API契约
// =========================================

// BookDTO 图书信息
type BookDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	Description   string    `json:"description"`
	PublishedYear int       `json:"publishedYear"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int64     `json:"totalReviews"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookWithReviewsDTO 图书信息+嵌套书评（列表页）
type BookWithReviewsDTO struct {
	BookDTO
	Reviews []ReviewDTO `json:"reviews"`
}

// ReviewDTO 书评信息（嵌套在图书下，含评论者用户名）
type ReviewDTO struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserID    uint      `json:"userId"`
	BookID    uint      `json:"bookId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      UserRef   `json:"user"`
}

// UserRef 评论者引用
type UserRef struct {
	Username string `json:"username"`
}

// StatisticsDTO 图书评分统计（详情页实时计算）
type StatisticsDTO struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

// toBookDTO 领域实体 → DTO
func toBookDTO(b *book.Book) BookDTO {
	return BookDTO{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         string(b.Genre),
		Description:   b.Description,
		PublishedYear: b.PublishedYear,
		AverageRating: b.AverageRating,
		TotalReviews:  b.TotalReviews,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// toBookDTOs 批量转换
func toBookDTOs(books []*book.Book) []BookDTO {
	dtos := make([]BookDTO, len(books))
	for i, b := range books {
		dtos[i] = toBookDTO(b)
	}
	return dtos
}

// toReviewDTO 书评实体 → DTO
func toReviewDTO(rv *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:        rv.ID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		UserID:    rv.UserID,
		BookID:    rv.BookID,
		CreatedAt: rv.CreatedAt,
		UpdatedAt: rv.UpdatedAt,
		User:      UserRef{Username: rv.Username},
	}
}
