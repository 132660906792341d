package book

import (
	"time"

	"github.com/xiebiao/bookcart/internal/application/author"
	"github.com/xiebiao/bookcart/internal/domain/book"
	"github.com/xiebiao/bookcart/internal/domain/catalog"
)

// PublisherView 出版社DTO
type PublisherView struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	Telephone *string `json:"telephone"`
	Email     *string `json:"email"`
	Site      *string `json:"site"`
}

// CommentView 评论DTO
type CommentView struct {
	ID          uint      `json:"id"`
	BookID      uint      `json:"book_id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
}

// BookView 图书DTO(作者、出版社、评论已解析)
type BookView struct {
	ID        uint                `json:"id"`
	Name      string              `json:"name"`
	Authors   []author.AuthorView `json:"authors"`
	Publisher *PublisherView      `json:"publisher"`
	Genres    []string            `json:"genres"`
	Year      *int                `json:"year"` // null表示年份未知
	Pages     *int                `json:"pages"`
	InStock   bool                `json:"in_stock"`
	Price     float64             `json:"price"`
	Comments  []CommentView       `json:"comments"`
}

// Assembler 把图书实体和它的关联组装成BookView
type Assembler struct {
	resolver *book.Resolver
}

// NewAssembler 创建组装器
func NewAssembler(resolver *book.Resolver) *Assembler {
	return &Assembler{resolver: resolver}
}

// BookView 组装单本书,commentsLimit为负数时返回ErrInvalidLimit
func (a *Assembler) BookView(b *catalog.Book, commentsLimit *int) (*BookView, error) {
	comments, err := a.resolver.Comments(b, commentsLimit)
	if err != nil {
		return nil, err
	}

	authors := a.resolver.Authors(b)
	view := &BookView{
		ID:       b.ID,
		Name:     b.Name,
		Authors:  make([]author.AuthorView, 0, len(authors)),
		Genres:   make([]string, 0, len(b.Genres)),
		Year:     b.Year,
		Pages:    b.Pages,
		InStock:  b.InStock,
		Price:    b.Price.InexactFloat64(),
		Comments: NewCommentViews(comments),
	}
	for _, au := range authors {
		view.Authors = append(view.Authors, author.NewAuthorView(au))
	}
	for _, g := range b.Genres {
		view.Genres = append(view.Genres, string(g))
	}
	if p := a.resolver.Publisher(b); p != nil {
		view.Publisher = &PublisherView{
			ID:        p.ID,
			Name:      p.Name,
			Address:   p.Address,
			Telephone: p.Telephone,
			Email:     p.Email,
			Site:      p.Site,
		}
	}
	return view, nil
}

// BookViews 组装多本书,保持顺序
func (a *Assembler) BookViews(books []*catalog.Book, commentsLimit *int) ([]BookView, error) {
	views := make([]BookView, 0, len(books))
	for _, b := range books {
		v, err := a.BookView(b, commentsLimit)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// NewCommentViews 评论实体转DTO
func NewCommentViews(comments []*catalog.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ID:          c.ID,
			BookID:      c.BookID,
			Author:      c.Author,
			Text:        c.Text,
			PublishedAt: c.PublishedAt,
		})
	}
	return views
}
