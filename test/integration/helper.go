package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 这些测试对着真实运行的服务发请求（需要先启动服务和依赖的MySQL/Redis），
// 服务未运行时整体跳过。
//
// 运行方式：
//   go run ./cmd/api &
//   go test -v ./test/integration/...

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:7000/api"
	// PingURL 健康检查URL（判断服务是否在运行）
	PingURL = "http://localhost:7000/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Envelope 统一响应结构
// 成功时data有值；失败时message有值；列表接口附带pagination；
// 注册/登录的token/user、搜索的count在顶层
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination json.RawMessage `json:"pagination"`
	Token      string          `json:"token"`
	User       json.RawMessage `json:"user"`
	Count      int             `json:"count"`
}

// PaginationData 分页信息（totalBooks/totalReviews按接口不同取其一）
type PaginationData struct {
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalBooks   int64 `json:"totalBooks"`
	TotalReviews int64 `json:"totalReviews"`
	TotalPages   int   `json:"totalPages"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// UserData 注册/登录返回的用户信息
type UserData struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// BookData 图书响应数据
type BookData struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Genre         string  `json:"genre"`
	Description   string  `json:"description"`
	PublishedYear int     `json:"publishedYear"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

// ReviewData 书评响应数据
type ReviewData struct {
	ID      uint   `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	UserID  uint   `json:"userId"`
	BookID  uint   `json:"bookId"`
	User    struct {
		Username string `json:"username"`
	} `json:"user"`
	Book *struct {
		ID     uint   `json:"id"`
		Title  string `json:"title"`
		Author string `json:"author"`
		Genre  string `json:"genre"`
	} `json:"book"`
}

// RequireServer 检查服务是否在运行，未运行则跳过测试
func RequireServer(t *testing.T) {
	t.Helper()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("服务未运行（%s不可达），跳过集成测试: %v", PingURL, err)
	}
	resp.Body.Close()
}

// DoJSON 发送HTTP请求并解析统一响应
// 返回响应Envelope和HTTP状态码
func DoJSON(t *testing.T, method, url string, data interface{}, token string) (*Envelope, int) {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Envelope
	err = json.Unmarshal(respBody, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(respBody))

	return &result, resp.StatusCode
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) (*Envelope, int) {
	t.Helper()
	return DoJSON(t, http.MethodPost, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) (*Envelope, int) {
	t.Helper()
	return DoJSON(t, http.MethodGet, url, nil, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) (*Envelope, int) {
	t.Helper()
	return DoJSON(t, http.MethodPut, url, data, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) (*Envelope, int) {
	t.Helper()
	return DoJSON(t, http.MethodDelete, url, nil, token)
}

// seq 测试数据序号（同一纳秒内多次调用也不重复）
var seq uint64

// UniqueName 生成唯一测试标识
func UniqueName(prefix string) string {
	n := atomic.AddUint64(&seq, 1)
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), n)
}

// SignupTestUser 注册一个测试用户，返回Token和用户信息
func SignupTestUser(t *testing.T, prefix string) (string, UserData) {
	t.Helper()

	name := UniqueName(prefix)
	resp, status := PostJSON(t, BaseURL+"/auth/signup", map[string]string{
		"username": name,
		"email":    name + "@test.example.com",
		"password": "test123456",
	}, "")

	require.Equal(t, http.StatusCreated, status, "注册应该成功: %s", resp.Message)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token, "注册应该返回Token")

	var user UserData
	require.NoError(t, json.Unmarshal(resp.User, &user))

	return resp.Token, user
}

// CreateTestBook 创建一本测试图书，返回图书信息
func CreateTestBook(t *testing.T, token, title string) BookData {
	t.Helper()

	resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title":         title,
		"author":        "测试作者",
		"genre":         "Fiction",
		"description":   "集成测试用图书",
		"publishedYear": 2020,
	}, token)

	require.Equal(t, http.StatusCreated, status, "创建图书应该成功: %s", resp.Message)

	var book BookData
	require.NoError(t, json.Unmarshal(resp.Data, &book))
	require.NotZero(t, book.ID)

	return book
}
