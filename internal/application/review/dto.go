package review

import (
	"time"

	"github.com/xiebiao/bookreview/internal/domain/review"
)

// ReviewDTO 书评信息
type ReviewDTO struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserID    uint      `json:"userId"`
	BookID    uint      `json:"bookId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Book 所评图书摘要（我的书评列表填充）
	Book *BookSummaryDTO `json:"book,omitempty"`
}

// BookSummaryDTO 图书摘要
type BookSummaryDTO struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// toReviewDTO 领域实体 → DTO
func toReviewDTO(rv *review.Review) ReviewDTO {
	dto := ReviewDTO{
		ID:        rv.ID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		UserID:    rv.UserID,
		BookID:    rv.BookID,
		CreatedAt: rv.CreatedAt,
		UpdatedAt: rv.UpdatedAt,
	}
	if rv.Book != nil {
		dto.Book = &BookSummaryDTO{
			ID:     rv.Book.ID,
			Title:  rv.Book.Title,
			Author: rv.Book.Author,
			Genre:  rv.Book.Genre,
		}
	}
	return dto
}
