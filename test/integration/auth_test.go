package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 认证模块集成测试
// 覆盖注册、登录、登出的完整流程（Handler → UseCase → Service → Repository → MySQL/Redis）

// TestSignup 测试用户注册
func TestSignup(t *testing.T) {
	RequireServer(t)

	t.Run("正常注册", func(t *testing.T) {
		name := UniqueName("signup_ok")
		resp, status := PostJSON(t, BaseURL+"/auth/signup", map[string]string{
			"username": name,
			"email":    name + "@test.example.com",
			"password": "test123456",
		}, "")

		assert.Equal(t, http.StatusCreated, status, "注册应该返回201")
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token, "注册应该直接返回会话Token")

		var user UserData
		require.NoError(t, json.Unmarshal(resp.User, &user))
		assert.NotZero(t, user.ID)
		assert.Equal(t, name, user.Username)
		assert.Equal(t, name+"@test.example.com", user.Email)
	})

	t.Run("重复邮箱注册应失败", func(t *testing.T) {
		name := UniqueName("signup_dup")
		req := map[string]string{
			"username": name,
			"email":    name + "@test.example.com",
			"password": "test123456",
		}

		_, status1 := PostJSON(t, BaseURL+"/auth/signup", req, "")
		require.Equal(t, http.StatusCreated, status1, "第一次注册应该成功")

		// 相同邮箱、不同用户名
		req["username"] = UniqueName("signup_dup2")
		resp2, status2 := PostJSON(t, BaseURL+"/auth/signup", req, "")

		assert.Equal(t, http.StatusBadRequest, status2, "重复邮箱应该返回400")
		assert.False(t, resp2.Success)
		assert.NotEmpty(t, resp2.Message)
	})

	t.Run("密码过短应失败", func(t *testing.T) {
		name := UniqueName("signup_pwd")
		resp, status := PostJSON(t, BaseURL+"/auth/signup", map[string]string{
			"username": name,
			"email":    name + "@test.example.com",
			"password": "123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, resp.Success)
	})

	t.Run("邮箱格式错误应失败", func(t *testing.T) {
		name := UniqueName("signup_email")
		resp, status := PostJSON(t, BaseURL+"/auth/signup", map[string]string{
			"username": name,
			"email":    "not-an-email",
			"password": "test123456",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, resp.Success)
	})

	t.Run("用户名过短应失败", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/auth/signup", map[string]string{
			"username": "ab",
			"email":    UniqueName("u") + "@test.example.com",
			"password": "test123456",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, resp.Success)
	})
}

// TestLogin 测试用户登录
func TestLogin(t *testing.T) {
	RequireServer(t)

	name := UniqueName("login")
	email := name + "@test.example.com"
	password := "test123456"

	_, status := PostJSON(t, BaseURL+"/auth/signup", map[string]string{
		"username": name,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, status)

	t.Run("正常登录", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email":    email,
			"password": password,
		}, "")

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)

		var user UserData
		require.NoError(t, json.Unmarshal(resp.User, &user))
		assert.Equal(t, name, user.Username)
	})

	t.Run("密码错误返回401", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email":    email,
			"password": "wrong-password",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.False(t, resp.Success)
	})

	t.Run("未注册邮箱与密码错误返回相同错误", func(t *testing.T) {
		// 防账号枚举：两种失败不可区分
		respWrongPwd, statusWrongPwd := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email":    email,
			"password": "wrong-password",
		}, "")
		respNoUser, statusNoUser := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email":    UniqueName("nobody") + "@test.example.com",
			"password": "test123456",
		}, "")

		assert.Equal(t, statusWrongPwd, statusNoUser)
		assert.Equal(t, respWrongPwd.Message, respNoUser.Message)
	})
}

// TestLogout 测试用户登出
func TestLogout(t *testing.T) {
	RequireServer(t)

	token, _ := SignupTestUser(t, "logout")

	t.Run("登出成功", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/auth/logout", nil, token)

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Success)
	})

	t.Run("登出后Token失效", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books/me/content", token)

		assert.Equal(t, http.StatusUnauthorized, status, "已登出的Token应该被黑名单拒绝")
		assert.False(t, resp.Success)
	})

	t.Run("未登录不能登出", func(t *testing.T) {
		_, status := PostJSON(t, BaseURL+"/auth/logout", nil, "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}
