package review

import (
	"strings"
	"testing"
)

// TestReviewValidate 测试书评字段校验
func TestReviewValidate(t *testing.T) {
	t.Run("合法书评", func(t *testing.T) {
		r := NewReview(1, 2, 5, "写得很好")
		if err := r.Validate(); err != nil {
			t.Errorf("期望校验通过，实际%v", err)
		}
	})

	t.Run("评分边界", func(t *testing.T) {
		for _, rating := range []int{1, 2, 3, 4, 5} {
			r := NewReview(1, 2, rating, "ok")
			if err := r.Validate(); err != nil {
				t.Errorf("评分%d应合法，实际%v", rating, err)
			}
		}
		for _, rating := range []int{0, -1, 6, 100} {
			r := NewReview(1, 2, rating, "ok")
			if err := r.Validate(); err != ErrInvalidRating {
				t.Errorf("评分%d期望ErrInvalidRating，实际%v", rating, err)
			}
		}
	})

	t.Run("评论为空", func(t *testing.T) {
		r := NewReview(1, 2, 3, "")
		if err := r.Validate(); err != ErrInvalidComment {
			t.Errorf("期望ErrInvalidComment，实际%v", err)
		}
	})

	t.Run("评论过长", func(t *testing.T) {
		r := NewReview(1, 2, 3, strings.Repeat("a", 501))
		if err := r.Validate(); err != ErrInvalidComment {
			t.Errorf("期望ErrInvalidComment，实际%v", err)
		}
	})
}

// TestReviewIsOwnedBy 测试作者归属判断
func TestReviewIsOwnedBy(t *testing.T) {
	r := NewReview(42, 1, 4, "不错")

	if !r.IsOwnedBy(42) {
		t.Error("期望属于用户42")
	}
	if r.IsOwnedBy(43) {
		t.Error("不应属于用户43")
	}
}

// TestReviewUpdateContent 测试更新书评内容
func TestReviewUpdateContent(t *testing.T) {
	r := NewReview(1, 2, 3, "一般")

	if err := r.UpdateContent(5, "再读之后改观了"); err != nil {
		t.Fatalf("期望更新成功，实际%v", err)
	}
	if r.Rating != 5 || r.Comment != "再读之后改观了" {
		t.Errorf("更新后内容错误: rating=%d, comment=%s", r.Rating, r.Comment)
	}

	if err := r.UpdateContent(0, "x"); err != ErrInvalidRating {
		t.Errorf("期望ErrInvalidRating，实际%v", err)
	}
}
