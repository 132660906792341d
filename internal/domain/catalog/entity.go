package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Genre 图书体裁(封闭集合)
type Genre string

const (
	GenreBiography Genre = "biography"
	GenreClassic   Genre = "classic"
	GenreCrime     Genre = "crime"
	GenreFantasy   Genre = "fantasy"
	GenreHumor     Genre = "humor"
	GenreRomantic  Genre = "romantic"
	GenreOther     Genre = "other"
)

// Genres 全部体裁,顺序固定
var Genres = []Genre{
	GenreBiography,
	GenreClassic,
	GenreCrime,
	GenreFantasy,
	GenreHumor,
	GenreRomantic,
	GenreOther,
}

// ParseGenre 解析体裁
// 同时接受取值(fantasy)和枚举名(FANTASY)
func ParseGenre(s string) (Genre, error) {
	g := Genre(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Genres {
		if g == known {
			return g, nil
		}
	}
	return "", ErrUnknownGenre
}

// Author 作者
type Author struct {
	ID      uint
	Name    string
	Surname string
	About   *string
	Email   *string
	Site    *string
}

// Publisher 出版社
type Publisher struct {
	ID        uint
	Name      string
	Address   *string
	Telephone *string
	Email     *string
	Site      *string
}

// Book 图书
// AuthorIDs和PublisherID只是标识引用,解析时再到Store里查
type Book struct {
	ID          uint
	Name        string
	AuthorIDs   []uint
	PublisherID *uint
	Genres      []Genre
	Year        *int // nil表示年份未知
	Pages       *int
	InStock     bool
	Price       decimal.Decimal
}

// HasAuthor 作者列表是否包含id
func (b *Book) HasAuthor(id uint) bool {
	for _, a := range b.AuthorIDs {
		if a == id {
			return true
		}
	}
	return false
}

// HasGenre 体裁列表是否包含g
func (b *Book) HasGenre(g Genre) bool {
	for _, bg := range b.Genres {
		if bg == g {
			return true
		}
	}
	return false
}

// PublishedBy 是否由指定出版社出版
func (b *Book) PublishedBy(id uint) bool {
	return b.PublisherID != nil && *b.PublisherID == id
}

// Comment 图书评论
// Author是展示用的昵称,不关联Author实体
type Comment struct {
	ID          uint
	BookID      uint
	Author      string
	Text        string
	PublishedAt time.Time
}
