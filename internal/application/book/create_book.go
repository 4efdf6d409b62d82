package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/infrastructure/event"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// CreateBookUseCase 创建图书用例
// 支持单本和批量两种模式（请求体为对象或数组）
type CreateBookUseCase struct {
	bookService book.Service
	events      *event.Publisher
}

// NewCreateBookUseCase 创建图书用例
func NewCreateBookUseCase(bookService book.Service, events *event.Publisher) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService, events: events}
}

// CreateBookInput 单本图书入参
type CreateBookInput struct {
	Title         string
	Author        string
	Genre         string
	Description   string
	PublishedYear int
}

// Execute 创建单本图书
func (uc *CreateBookUseCase) Execute(ctx context.Context, input CreateBookInput) (*BookDTO, error) {
	b, err := uc.bookService.CreateBook(ctx, input.Title, input.Author, book.Genre(input.Genre), input.Description, input.PublishedYear)
	if err != nil {
		return nil, err
	}

	metrics.BooksCreatedTotal.Inc()
	uc.events.Publish(event.BookCreated, event.BookEvent{
		BookID:     b.ID,
		Title:      b.Title,
		OccurredAt: time.Now(),
	})

	dto := toBookDTO(b)
	return &dto, nil
}

// ExecuteBatch 批量创建图书
// 任意一本校验失败则整批拒绝（批量INSERT原子执行）
func (uc *CreateBookUseCase) ExecuteBatch(ctx context.Context, inputs []CreateBookInput) ([]BookDTO, error) {
	books := make([]*book.Book, len(inputs))
	for i, input := range inputs {
		books[i] = book.NewBook(input.Title, input.Author, book.Genre(input.Genre), input.Description, input.PublishedYear)
	}

	if err := uc.bookService.CreateBooks(ctx, books); err != nil {
		return nil, err
	}

	for _, b := range books {
		metrics.BooksCreatedTotal.Inc()
		uc.events.Publish(event.BookCreated, event.BookEvent{
			BookID:     b.ID,
			Title:      b.Title,
			OccurredAt: time.Now(),
		})
	}

	return toBookDTOs(books), nil
}
