package book

import (
	"time"
)

// Genre 图书类型（封闭枚举）
type Genre string

const (
	GenreFiction        Genre = "Fiction"
	GenreNonFiction     Genre = "Non-Fiction"
	GenreScienceFiction Genre = "Science Fiction"
	GenreFantasy        Genre = "Fantasy"
	GenreMystery        Genre = "Mystery"
	GenreThriller       Genre = "Thriller"
	GenreRomance        Genre = "Romance"
	GenreOther          Genre = "Other"
)

// Genres 所有合法类型
var Genres = []Genre{
	GenreFiction,
	GenreNonFiction,
	GenreScienceFiction,
	GenreFantasy,
	GenreMystery,
	GenreThriller,
	GenreRomance,
	GenreOther,
}

// IsValidGenre 校验类型是否在枚举范围内
func IsValidGenre(g Genre) bool {
	for _, genre := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Book 图书实体（聚合根）
// DDD设计说明：
// 1. Book是图书聚合的根实体
// 2. AverageRating和TotalReviews是冗余统计字段，由评分聚合服务维护，
//    与书评的增删改在同一事务中更新
// 3. 领域实体不依赖GORM tag
type Book struct {
	ID            uint
	Title         string  // 书名（1-100字符）
	Author        string  // 作者
	Genre         Genre   // 类型（枚举）
	Description   string  // 简介（1-500字符）
	PublishedYear int     // 出版年份
	AverageRating float64 // 平均评分（0-5，保留一位小数）
	TotalReviews  int64   // 书评总数
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook 创建新图书（工厂方法）
// 调用方应先通过Validate校验字段
func NewBook(title, author string, genre Genre, description string, publishedYear int) *Book {
	now := time.Now()
	return &Book{
		Title:         title,
		Author:        author,
		Genre:         genre,
		Description:   description,
		PublishedYear: publishedYear,
		AverageRating: 0,
		TotalReviews:  0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate 图书字段校验（业务规则）
func (b *Book) Validate() error {
	if len(b.Title) < 1 || len(b.Title) > 100 {
		return ErrInvalidTitle
	}
	if b.Author == "" {
		return ErrInvalidAuthor
	}
	if !IsValidGenre(b.Genre) {
		return ErrInvalidGenre
	}
	if len(b.Description) < 1 || len(b.Description) > 500 {
		return ErrInvalidDescription
	}
	if b.PublishedYear <= 0 {
		return ErrInvalidPublishedYear
	}
	return nil
}

// SetRatingStats 更新评分统计（由评分聚合服务调用）
func (b *Book) SetRatingStats(averageRating float64, totalReviews int64) {
	b.AverageRating = averageRating
	b.TotalReviews = totalReviews
	b.UpdatedAt = time.Now()
}
