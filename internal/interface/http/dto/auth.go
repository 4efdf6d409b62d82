package dto

// SignupRequest HTTP层注册请求
// 说明：HTTP层的DTO负责参数绑定与基础校验（binding tag），
// 业务规则校验（如用户名字符集）在domain层
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// LoginRequest HTTP层登录请求
// 注意：密码不做长度校验，登录失败统一返回"邮箱或密码错误"
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
