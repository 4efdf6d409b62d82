package user

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// mockUserRepo 内存用户仓储（Mock）
type mockUserRepo struct {
	users  map[uint]*User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*User), nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, u *User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return apperrors.ErrUserDuplicate
		}
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// TestRegister 测试用户注册
func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockUserRepo())

	u, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("期望注册成功，实际%v", err)
	}

	if u.ID == 0 {
		t.Error("期望回填用户ID")
	}
	if u.Password == "secret123" {
		t.Error("密码不应明文存储")
	}

	// 注册后可用密码登录
	logged, err := svc.Authenticate(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("期望登录成功，实际%v", err)
	}
	if logged.ID != u.ID {
		t.Errorf("登录用户ID错误: expected=%d, got=%d", u.ID, logged.ID)
	}
}

// TestRegister_Validation 测试注册参数校验
func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockUserRepo())

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"用户名过短", "ab", "a@example.com", "secret123"},
		{"用户名过长", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "a@example.com", "secret123"},
		{"邮箱格式错误", "alice", "not-an-email", "secret123"},
		{"密码过短", "alice", "a@example.com", "12345"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Register(ctx, c.username, c.email, c.password)
			if err == nil {
				t.Error("期望注册失败")
			}
		})
	}
}

// TestRegister_Duplicate 测试重复注册
func TestRegister_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockUserRepo())

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("期望注册成功，实际%v", err)
	}

	// 邮箱重复
	_, err := svc.Register(ctx, "alice2", "alice@example.com", "secret123")
	if !errors.Is(err, apperrors.ErrUserDuplicate) {
		t.Errorf("期望ErrUserDuplicate，实际%v", err)
	}

	// 用户名重复
	_, err = svc.Register(ctx, "alice", "alice2@example.com", "secret123")
	if !errors.Is(err, apperrors.ErrUserDuplicate) {
		t.Errorf("期望ErrUserDuplicate，实际%v", err)
	}
}

// TestAuthenticate_InvalidCredentials 测试登录失败
// 邮箱不存在与密码错误必须返回同一个错误（防止账号枚举）
func TestAuthenticate_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockUserRepo())

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("期望注册成功，实际%v", err)
	}

	_, errUnknown := svc.Authenticate(ctx, "nobody@example.com", "secret123")
	if !errors.Is(errUnknown, apperrors.ErrInvalidCredentials) {
		t.Errorf("邮箱不存在期望ErrInvalidCredentials，实际%v", errUnknown)
	}

	_, errWrongPwd := svc.Authenticate(ctx, "alice@example.com", "wrong-password")
	if !errors.Is(errWrongPwd, apperrors.ErrInvalidCredentials) {
		t.Errorf("密码错误期望ErrInvalidCredentials，实际%v", errWrongPwd)
	}

	if errUnknown.Error() != errWrongPwd.Error() {
		t.Error("两种失败场景的错误信息必须一致")
	}
}
