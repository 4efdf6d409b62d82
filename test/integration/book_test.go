package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 图书模块集成测试

// TestCreateBook 测试创建图书
func TestCreateBook(t *testing.T) {
	RequireServer(t)

	token, _ := SignupTestUser(t, "book_create")

	t.Run("未登录不能创建", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":         "未授权图书",
			"author":        "某作者",
			"genre":         "Fiction",
			"description":   "描述",
			"publishedYear": 2020,
		}, "")

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.False(t, resp.Success)
	})

	t.Run("单本创建", func(t *testing.T) {
		title := UniqueName("单本图书")
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":         title,
			"author":        "王小明",
			"genre":         "Science Fiction",
			"description":   "一本科幻小说",
			"publishedYear": 2021,
		}, token)

		assert.Equal(t, http.StatusCreated, status, "创建失败: %s", resp.Message)

		var book BookData
		require.NoError(t, json.Unmarshal(resp.Data, &book))
		assert.NotZero(t, book.ID)
		assert.Equal(t, title, book.Title)
		assert.Equal(t, "Science Fiction", book.Genre)
		assert.Zero(t, book.AverageRating, "新书平均分应该为0")
		assert.Zero(t, book.TotalReviews)
	})

	t.Run("批量创建", func(t *testing.T) {
		books := []map[string]interface{}{
			{
				"title":         UniqueName("批量图书A"),
				"author":        "作者A",
				"genre":         "Fantasy",
				"description":   "描述A",
				"publishedYear": 2018,
			},
			{
				"title":         UniqueName("批量图书B"),
				"author":        "作者B",
				"genre":         "Mystery",
				"description":   "描述B",
				"publishedYear": 2019,
			},
		}

		resp, status := PostJSON(t, BaseURL+"/books", books, token)

		assert.Equal(t, http.StatusCreated, status, "批量创建失败: %s", resp.Message)
		assert.Equal(t, 2, resp.Count, "批量创建应该返回count")

		var created []BookData
		require.NoError(t, json.Unmarshal(resp.Data, &created))
		require.Len(t, created, 2)
		assert.NotZero(t, created[0].ID)
		assert.NotZero(t, created[1].ID)
	})

	t.Run("无效类型应失败", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":         UniqueName("无效类型"),
			"author":        "某作者",
			"genre":         "NotARealGenre",
			"description":   "描述",
			"publishedYear": 2020,
		}, token)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, resp.Success)
	})

	t.Run("缺少必填字段应失败", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title": UniqueName("缺字段"),
		}, token)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, resp.Success)
	})
}

// TestListBooks 测试图书列表
func TestListBooks(t *testing.T) {
	RequireServer(t)

	token, _ := SignupTestUser(t, "book_list")
	author := UniqueName("list_author")

	// 准备3本同一作者的书
	for i := 0; i < 3; i++ {
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":         UniqueName(fmt.Sprintf("列表图书%d", i)),
			"author":        author,
			"genre":         "Romance",
			"description":   "列表测试",
			"publishedYear": 2020,
		}, token)
		require.Equal(t, http.StatusCreated, status, "准备数据失败: %s", resp.Message)
	}

	t.Run("按作者过滤并分页", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books?author="+author+"&page=1&limit=2", "")

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Success)

		var books []json.RawMessage
		require.NoError(t, json.Unmarshal(resp.Data, &books))
		assert.Len(t, books, 2, "第1页应该有2本")

		var p PaginationData
		require.NoError(t, json.Unmarshal(resp.Pagination, &p))
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 2, p.Limit)
		assert.Equal(t, int64(3), p.TotalBooks)
		assert.Equal(t, 2, p.TotalPages)
		assert.True(t, p.HasNextPage)
		assert.False(t, p.HasPrevPage)
	})

	t.Run("作者子串匹配", func(t *testing.T) {
		// 取作者名中段作为搜索子串
		sub := author[2 : len(author)-2]
		resp, status := GetJSON(t, BaseURL+"/books?author="+sub, "")

		assert.Equal(t, http.StatusOK, status)

		var p PaginationData
		require.NoError(t, json.Unmarshal(resp.Pagination, &p))
		assert.GreaterOrEqual(t, p.TotalBooks, int64(3))
	})

	t.Run("每本书嵌套reviews数组", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books?author="+author+"&limit=1", "")
		require.Equal(t, http.StatusOK, status)

		var books []struct {
			BookData
			Reviews []ReviewData `json:"reviews"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &books))
		require.Len(t, books, 1)
		assert.NotNil(t, books[0].Reviews, "无书评时reviews应该是空数组而非null")
	})

	t.Run("无效类型过滤应失败", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books?genre=NotARealGenre", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, resp.Success)
	})
}

// TestGetBook 测试图书详情
func TestGetBook(t *testing.T) {
	RequireServer(t)

	token, _ := SignupTestUser(t, "book_get")
	book := CreateTestBook(t, token, UniqueName("详情图书"))

	t.Run("正常获取详情", func(t *testing.T) {
		resp, status := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), "")

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Success)

		var detail struct {
			BookData
			Statistics struct {
				AverageRating float64 `json:"averageRating"`
				TotalReviews  int64   `json:"totalReviews"`
			} `json:"statistics"`
			Reviews []ReviewData `json:"reviews"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &detail))
		assert.Equal(t, book.ID, detail.ID)
		assert.Zero(t, detail.Statistics.TotalReviews)
		assert.NotNil(t, detail.Reviews)

		var p PaginationData
		require.NoError(t, json.Unmarshal(resp.Pagination, &p))
		assert.Equal(t, int64(0), p.TotalReviews)
	})

	t.Run("不存在的图书返回404", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books/99999999", "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.False(t, resp.Success)
	})
}

// TestSearchBooks 测试图书搜索
func TestSearchBooks(t *testing.T) {
	RequireServer(t)

	token, _ := SignupTestUser(t, "book_search")
	title := UniqueName("search_title")
	CreateTestBook(t, token, title)

	t.Run("按标题搜索", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books/search?query="+title, "")

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Count)

		var books []BookData
		require.NoError(t, json.Unmarshal(resp.Data, &books))
		require.Len(t, books, 1)
		assert.Equal(t, title, books[0].Title)
	})

	t.Run("无结果时count为0", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books/search?query="+UniqueName("no_such_book"), "")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, 0, resp.Count)
	})

	t.Run("空搜索词返回400", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books/search", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, resp.Success)
	})
}
