package memory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcart/internal/domain/catalog"
)

func TestNewCatalogStore_DefaultSeed(t *testing.T) {
	s, err := NewCatalogStore(DefaultSeed())
	require.NoError(t, err)

	assert.Equal(t, Stats{Authors: 3, Publishers: 3, Books: 5, Comments: 2}, s.Stats())

	t.Run("图书字段", func(t *testing.T) {
		b := s.FindBook(3)
		require.NotNil(t, b)
		assert.Equal(t, "Я, робот", b.Name)
		assert.Equal(t, []uint{1}, b.AuthorIDs)
		require.NotNil(t, b.PublisherID)
		assert.Equal(t, uint(2), *b.PublisherID)
		assert.Equal(t, []catalog.Genre{catalog.GenreFantasy}, b.Genres)
		assert.Equal(t, "239.9", b.Price.String())
		assert.True(t, b.InStock)
	})

	t.Run("年份未知", func(t *testing.T) {
		b := s.FindBook(5)
		require.NotNil(t, b)
		assert.Nil(t, b.Year)
		assert.False(t, b.InStock)
	})

	t.Run("出版社地址为空", func(t *testing.T) {
		p := s.FindPublisher(1)
		require.NotNil(t, p)
		assert.Nil(t, p.Address)
		require.NotNil(t, p.Telephone)
		assert.Equal(t, "+7(123)456-7890", *p.Telephone)
	})

	t.Run("评论时间", func(t *testing.T) {
		comments := s.CommentsForBook(4)
		require.Len(t, comments, 1)
		assert.Equal(t, "Elena", comments[0].Author)
		assert.Equal(t, time.Unix(1578025705, 0).UTC(), comments[0].PublishedAt)
	})

	t.Run("查不到返回nil", func(t *testing.T) {
		assert.Nil(t, s.FindAuthor(99))
		assert.Nil(t, s.FindPublisher(99))
		assert.Nil(t, s.FindBook(99))
		assert.Empty(t, s.CommentsForBook(1))
	})

	t.Run("Books保持插入顺序", func(t *testing.T) {
		var ids []uint
		for _, b := range s.Books() {
			ids = append(ids, b.ID)
		}
		assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids)
	})
}

func TestNewCatalogStore_Invalid(t *testing.T) {
	const base = `
authors:
  - {id: 1, name: A, surname: B}
publishers:
  - {id: 1, name: P}
`
	tests := []struct {
		name string
		seed string
	}{
		{"YAML格式错误", "authors: [oops"},
		{"出版社ID重复", base + "  - {id: 1, name: P2}\n"},
		{"作者ID重复", "authors:\n  - {id: 1, name: A}\n  - {id: 1, name: B}\n"},
		{"图书没有作者", base + "books:\n  - {id: 1, name: X, authors: [], price: '1'}\n"},
		{"图书引用不存在的作者", base + "books:\n  - {id: 1, name: X, authors: [2], price: '1'}\n"},
		{"图书引用不存在的出版社", base + "books:\n  - {id: 1, name: X, authors: [1], publisher: 9, price: '1'}\n"},
		{"价格为负", base + "books:\n  - {id: 1, name: X, authors: [1], price: '-1'}\n"},
		{"价格无法解析", base + "books:\n  - {id: 1, name: X, authors: [1], price: 'free'}\n"},
		{"未知体裁", base + "books:\n  - {id: 1, name: X, authors: [1], genre: [poetry], price: '1'}\n"},
		{"图书ID重复", base + "books:\n  - {id: 1, name: X, authors: [1], price: '1'}\n  - {id: 1, name: Y, authors: [1], price: '1'}\n"},
		{"评论引用不存在的图书", base + "comments:\n  - {id: 1, book_id: 7, author: a, text: t}\n"},
		{"ID为0", "authors:\n  - {id: 0, name: A}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogStore([]byte(tt.seed))
			require.Error(t, err)
			assert.ErrorIs(t, err, catalog.ErrInvalidSeed)
		})
	}
}

func TestLoadCatalogStore(t *testing.T) {
	t.Run("空路径使用内置种子", func(t *testing.T) {
		s, err := LoadCatalogStore("")
		require.NoError(t, err)
		assert.Equal(t, 5, s.Stats().Books)
	})

	t.Run("从文件加载", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		seed := `
authors:
  - {id: 7, name: Lev, surname: Tolstoy}
books:
  - {id: 70, name: War and Peace, authors: [7], genre: [CLASSIC], in_stock: true, price: "1500"}
`
		require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

		s, err := LoadCatalogStore(path)
		require.NoError(t, err)
		b := s.FindBook(70)
		require.NotNil(t, b)
		assert.Nil(t, b.PublisherID)
		assert.Equal(t, []catalog.Genre{catalog.GenreClassic}, b.Genres)
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadCatalogStore(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
