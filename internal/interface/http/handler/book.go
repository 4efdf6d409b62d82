package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	bookapp "github.com/xiebiao/bookreview/internal/application/book"
	"github.com/xiebiao/bookreview/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/response"
)

// BookHandler 图书相关HTTP处理器
type BookHandler struct {
	createUseCase *bookapp.CreateBookUseCase
	listUseCase   *bookapp.ListBooksUseCase
	getUseCase    *bookapp.GetBookUseCase
	searchUseCase *bookapp.SearchBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createUseCase *bookapp.CreateBookUseCase,
	listUseCase *bookapp.ListBooksUseCase,
	getUseCase *bookapp.GetBookUseCase,
	searchUseCase *bookapp.SearchBooksUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		searchUseCase: searchUseCase,
	}
}

// Create 创建图书（单本或批量）
// @Summary 创建图书
// @Description 请求体为单个图书对象时创建一本，为数组时批量创建（任一校验失败整批拒绝）
// @Tags 图书
// @Accept json
// @Produce json
// @Param request body dto.CreateBookRequest true "图书信息（或图书数组）"
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Router /api/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	// 按首个非空白字节区分单本/批量，再交回gin做绑定和校验
	trimmed := bytes.TrimSpace(body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if len(trimmed) > 0 && trimmed[0] == '[' {
		h.createBatch(c)
		return
	}
	h.createOne(c)
}

// createOne 创建单本图书
func (h *BookHandler) createOne(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	book, err := h.createUseCase.Execute(c.Request.Context(), toCreateBookInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, book)
}

// createBatch 批量创建图书
func (h *BookHandler) createBatch(c *gin.Context) {
	var reqs []dto.CreateBookRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}
	if len(reqs) == 0 {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, "图书列表不能为空"))
		return
	}

	inputs := make([]bookapp.CreateBookInput, len(reqs))
	for i, req := range reqs {
		inputs[i] = toCreateBookInput(req)
	}

	books, err := h.createUseCase.ExecuteBatch(c.Request.Context(), inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessRaw(c, http.StatusCreated, gin.H{
		"count": len(books),
		"data":  books,
	})
}

// toCreateBookInput HTTP DTO → 用例入参
func toCreateBookInput(req dto.CreateBookRequest) bookapp.CreateBookInput {
	return bookapp.CreateBookInput{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		Description:   req.Description,
		PublishedYear: req.PublishedYear,
	}
}

// List 图书列表
// @Summary 图书列表
// @Description 分页列出图书，支持作者（子串匹配）和类型（精确匹配）过滤，每本书嵌套其全部书评
// @Tags 图书
// @Produce json
// @Param page query int false "页码（默认1）"
// @Param limit query int false "每页条数（默认10）"
// @Param author query string false "作者过滤（子串匹配）"
// @Param genre query string false "类型过滤（精确匹配）"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "无效的类型"
// @Router /api/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	resp, err := h.listUseCase.Execute(c.Request.Context(), bookapp.ListBooksRequest{
		Page:   query.Page,
		Limit:  query.Limit,
		Author: query.Author,
		Genre:  query.Genre,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	pagination := response.NewPagination(resp.Page, resp.Limit, resp.Total)
	response.SuccessRaw(c, http.StatusOK, gin.H{
		"data":       resp.Books,
		"pagination": pagination.Map("totalBooks"),
	})
}

// Search 图书搜索
// @Summary 图书搜索
// @Description 按书名或作者子串搜索，全量返回（不分页）
// @Tags 图书
// @Produce json
// @Param query query string true "搜索关键词"
// @Success 200 {object} bookapp.SearchBooksResponse
// @Failure 400 {object} response.Response "搜索词为空"
// @Router /api/books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	var query dto.SearchBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	resp, err := h.searchUseCase.Execute(c.Request.Context(), query.Query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessRaw(c, http.StatusOK, gin.H{
		"count": resp.Count,
		"data":  resp.Books,
	})
}

// bookDetail 详情响应：图书字段平铺在data顶层，附statistics和reviews
type bookDetail struct {
	bookapp.BookDTO
	Statistics bookapp.StatisticsDTO `json:"statistics"`
	Reviews    []bookapp.ReviewDTO   `json:"reviews"`
}

// Get 图书详情
// @Summary 图书详情
// @Description 返回图书信息、实时评分统计和分页书评（按创建时间倒序）
// @Tags 图书
// @Produce json
// @Param id path int true "图书ID"
// @Param page query int false "书评页码（默认1）"
// @Param limit query int false "书评每页条数（默认10）"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response "图书不存在"
// @Router /api/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	resp, err := h.getUseCase.Execute(c.Request.Context(), bookapp.GetBookRequest{
		BookID: bookID,
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	pagination := response.NewPagination(resp.Page, resp.Limit, resp.ReviewsTotal)
	response.SuccessRaw(c, http.StatusOK, gin.H{
		"data": bookDetail{
			BookDTO:    resp.Book,
			Statistics: resp.Statistics,
			Reviews:    resp.Reviews,
		},
		"pagination": pagination.Map("totalReviews"),
	})
}

// parseIDParam 解析路径中的数字ID
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidParams
	}
	return uint(id), nil
}
