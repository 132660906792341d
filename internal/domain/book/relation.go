package book

import (
	"github.com/xiebiao/bookcart/internal/domain/catalog"
)

// Resolver 关联解析
// 图书只保存作者/出版社的ID,这里按ID到Store查实体
type Resolver struct {
	store catalog.Store
}

// NewResolver 创建关联解析器
func NewResolver(store catalog.Store) *Resolver {
	return &Resolver{store: store}
}

// Authors 按AuthorIDs的顺序返回作者,找不到的ID直接跳过
func (r *Resolver) Authors(b *catalog.Book) []*catalog.Author {
	authors := make([]*catalog.Author, 0, len(b.AuthorIDs))
	for _, id := range b.AuthorIDs {
		if a := r.store.FindAuthor(id); a != nil {
			authors = append(authors, a)
		}
	}
	return authors
}

// Publisher 未设置或找不到时返回nil
func (r *Resolver) Publisher(b *catalog.Book) *catalog.Publisher {
	if b.PublisherID == nil {
		return nil
	}
	return r.store.FindPublisher(*b.PublisherID)
}

// Comments 返回该书的评论,最多limit条;limit为nil时不截断
// limit为负数是参数违约,直接返回ErrInvalidLimit
func (r *Resolver) Comments(b *catalog.Book, limit *int) ([]*catalog.Comment, error) {
	if limit != nil && *limit < 0 {
		return nil, ErrInvalidLimit
	}

	comments := make([]*catalog.Comment, 0)
	for _, c := range r.store.CommentsForBook(b.ID) {
		if c.BookID == b.ID {
			comments = append(comments, c)
		}
	}
	if limit != nil && *limit < len(comments) {
		comments = comments[:*limit]
	}
	return comments, nil
}
