package dto

// CreateReviewRequest 创建书评请求
// 评分为1-5整数，评论1-500字符
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,min=1,max=500"`
}

// UpdateReviewRequest 更新书评请求
// 更新时评分和评论都必须提供（全量更新，不支持部分字段）
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,min=1,max=500"`
}
