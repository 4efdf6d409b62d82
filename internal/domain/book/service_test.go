package book

import (
	"testing"
)

// TestRoundRating 测试平均分保留一位小数
func TestRoundRating(t *testing.T) {
	cases := []struct {
		name    string
		average float64
		want    float64
	}{
		{"无书评", 0, 0},
		{"整数分", 4, 4},
		{"向下舍", 4.44, 4.4},
		{"向上入", 4.45, 4.5},
		{"三分之一", 10.0 / 3.0, 3.3},
		{"三分之二", 5.0 / 3.0, 1.7},
		{"满分", 5, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := roundRating(c.average)
			if got != c.want {
				t.Errorf("roundRating(%v) = %v, 期望%v", c.average, got, c.want)
			}
		})
	}
}

// TestBookValidate 测试图书字段校验
func TestBookValidate(t *testing.T) {
	valid := func() *Book {
		return NewBook("Go语言实战", "William Kennedy", GenreNonFiction, "一本关于Go的书", 2015)
	}

	t.Run("合法图书", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("期望校验通过，实际%v", err)
		}
	})

	t.Run("书名为空", func(t *testing.T) {
		b := valid()
		b.Title = ""
		if err := b.Validate(); err != ErrInvalidTitle {
			t.Errorf("期望ErrInvalidTitle，实际%v", err)
		}
	})

	t.Run("书名过长", func(t *testing.T) {
		b := valid()
		for len(b.Title) <= 100 {
			b.Title += "a"
		}
		if err := b.Validate(); err != ErrInvalidTitle {
			t.Errorf("期望ErrInvalidTitle，实际%v", err)
		}
	})

	t.Run("作者为空", func(t *testing.T) {
		b := valid()
		b.Author = ""
		if err := b.Validate(); err != ErrInvalidAuthor {
			t.Errorf("期望ErrInvalidAuthor，实际%v", err)
		}
	})

	t.Run("类型不合法", func(t *testing.T) {
		b := valid()
		b.Genre = "Poetry"
		if err := b.Validate(); err != ErrInvalidGenre {
			t.Errorf("期望ErrInvalidGenre，实际%v", err)
		}
	})

	t.Run("简介为空", func(t *testing.T) {
		b := valid()
		b.Description = ""
		if err := b.Validate(); err != ErrInvalidDescription {
			t.Errorf("期望ErrInvalidDescription，实际%v", err)
		}
	})

	t.Run("出版年份不合法", func(t *testing.T) {
		b := valid()
		b.PublishedYear = 0
		if err := b.Validate(); err != ErrInvalidPublishedYear {
			t.Errorf("期望ErrInvalidPublishedYear，实际%v", err)
		}
	})
}

// TestIsValidGenre 测试类型枚举校验
func TestIsValidGenre(t *testing.T) {
	for _, g := range Genres {
		if !IsValidGenre(g) {
			t.Errorf("%s应为合法类型", g)
		}
	}

	invalid := []Genre{"", "fiction", "Poetry", "SciFi"}
	for _, g := range invalid {
		if IsValidGenre(g) {
			t.Errorf("%q不应为合法类型", g)
		}
	}
}
