package dto

// CreateBookRequest 创建图书请求
// 请求体可以是单个对象，也可以是对象数组（批量录入），
// Handler按首字节区分两种形态，元素结构一致
type CreateBookRequest struct {
	Title         string `json:"title" binding:"required,min=1,max=100"`
	Author        string `json:"author" binding:"required,min=1,max=100"`
	Genre         string `json:"genre" binding:"required"`
	Description   string `json:"description" binding:"required,min=1,max=500"`
	PublishedYear int    `json:"publishedYear" binding:"required"`
}

// ListBooksQuery 图书列表查询参数
// page/limit缺省时由用例层归一化（第1页，每页10条）
type ListBooksQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Author string `form:"author"`
	Genre  string `form:"genre"`
}

// SearchBooksQuery 图书搜索查询参数
// query为空时返回400（搜索词必填）
type SearchBooksQuery struct {
	Query string `form:"query"`
}

// PageQuery 通用分页查询参数（书评列表、我的内容）
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
