package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reviewapp "github.com/xiebiao/bookreview/internal/application/review"
	"github.com/xiebiao/bookreview/internal/interface/http/dto"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/response"
)

// ReviewHandler 书评相关HTTP处理器
type ReviewHandler struct {
	createUseCase    *reviewapp.CreateReviewUseCase
	updateUseCase    *reviewapp.UpdateReviewUseCase
	deleteUseCase    *reviewapp.DeleteReviewUseCase
	myReviewsUseCase *reviewapp.MyReviewsUseCase
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(
	createUseCase *reviewapp.CreateReviewUseCase,
	updateUseCase *reviewapp.UpdateReviewUseCase,
	deleteUseCase *reviewapp.DeleteReviewUseCase,
	myReviewsUseCase *reviewapp.MyReviewsUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		myReviewsUseCase: myReviewsUseCase,
	}
}

// Create 创建书评
// @Summary 创建书评
// @Description 为指定图书创建书评，每个用户对每本书只能评价一次，评分统计同步更新
// @Tags 书评
// @Accept json
// @Produce json
// @Param id path int true "图书ID"
// @Param request body dto.CreateReviewRequest true "书评内容"
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response "参数错误或已评价过这本书"
// @Failure 401 {object} response.Response "未登录"
// @Failure 404 {object} response.Response "图书不存在"
// @Router /api/books/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	review, err := h.createUseCase.Execute(c.Request.Context(), reviewapp.CreateReviewRequest{
		BookID:  bookID,
		UserID:  middleware.MustGetUserID(c),
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, review)
}

// Update 更新书评
// @Summary 更新书评
// @Description 修改自己的书评（评分和评论全量更新），评分统计同步更新
// @Tags 书评
// @Accept json
// @Produce json
// @Param id path int true "书评ID"
// @Param request body dto.UpdateReviewRequest true "书评内容"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response "未登录或非书评作者"
// @Failure 404 {object} response.Response "书评不存在"
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	review, err := h.updateUseCase.Execute(c.Request.Context(), reviewapp.UpdateReviewRequest{
		ReviewID: reviewID,
		UserID:   middleware.MustGetUserID(c),
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, review)
}

// Delete 删除书评
// @Summary 删除书评
// @Description 删除自己的书评（物理删除，可重新评价），评分统计同步更新
// @Tags 书评
// @Produce json
// @Param id path int true "书评ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response "未登录或非书评作者"
// @Failure 404 {object} response.Response "书评不存在"
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), reviewID, middleware.MustGetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{})
}

// MyContent 我的内容
// @Summary 我的书评列表
// @Description 返回当前用户发表的全部书评（含所评图书摘要），按创建时间倒序分页
// @Tags 书评
// @Produce json
// @Param page query int false "页码（默认1）"
// @Param limit query int false "每页条数（默认10）"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response "未登录"
// @Router /api/books/me/content [get]
func (h *ReviewHandler) MyContent(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	resp, err := h.myReviewsUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c), query.Page, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	pagination := response.NewPagination(resp.Page, resp.Limit, resp.Total)
	response.SuccessRaw(c, http.StatusOK, gin.H{
		"data": gin.H{
			"reviews": resp.Reviews,
		},
		"pagination": pagination.Map("totalReviews"),
	})
}
