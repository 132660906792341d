package book

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookcart/internal/domain/catalog"
)

// fakeStore 测试用的内存目录
type fakeStore struct {
	authors    map[uint]*catalog.Author
	publishers map[uint]*catalog.Publisher
	books      []*catalog.Book
	comments   []*catalog.Comment
}

func (s *fakeStore) FindAuthor(id uint) *catalog.Author       { return s.authors[id] }
func (s *fakeStore) FindPublisher(id uint) *catalog.Publisher { return s.publishers[id] }

func (s *fakeStore) FindBook(id uint) *catalog.Book {
	for _, b := range s.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *fakeStore) CommentsForBook(bookID uint) []*catalog.Comment {
	var out []*catalog.Comment
	for _, c := range s.comments {
		if c.BookID == bookID {
			out = append(out, c)
		}
	}
	return out
}

func (s *fakeStore) Books() []*catalog.Book { return s.books }

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// newFakeStore 与默认种子数据一致的小目录
func newFakeStore() *fakeStore {
	return &fakeStore{
		authors: map[uint]*catalog.Author{
			1: {ID: 1, Name: "Айзек", Surname: "Азимов"},
			2: {ID: 2, Name: "Клиффорд", Surname: "Саймак"},
			3: {ID: 3, Name: "Артур Конан", Surname: "Дойл"},
		},
		publishers: map[uint]*catalog.Publisher{
			1: {ID: 1, Name: "Издательство АСТ"},
			2: {ID: 2, Name: "Издательство Эксмо"},
			3: {ID: 3, Name: "Издательство Азбука"},
		},
		books: []*catalog.Book{
			{ID: 1, Name: "Заповедник гоблинов", AuthorIDs: []uint{2}, PublisherID: uintPtr(2), Genres: []catalog.Genre{catalog.GenreFantasy}, InStock: true, Price: decimal.RequireFromString("289.00")},
			{ID: 2, Name: "Звездное наследие", AuthorIDs: []uint{2}, PublisherID: uintPtr(1), Genres: []catalog.Genre{catalog.GenreFantasy}, InStock: true, Price: decimal.RequireFromString("129.00")},
			{ID: 3, Name: "Я, робот", AuthorIDs: []uint{1}, PublisherID: uintPtr(2), Genres: []catalog.Genre{catalog.GenreFantasy}, InStock: true, Price: decimal.RequireFromString("239.90")},
			{ID: 4, Name: "Собака Баскервилей", AuthorIDs: []uint{3}, PublisherID: uintPtr(3), Genres: []catalog.Genre{catalog.GenreCrime}, InStock: true, Price: decimal.RequireFromString("199.00")},
			{ID: 5, Name: "Рассказы о Шерлоке Холмсе (сборник)", AuthorIDs: []uint{3}, PublisherID: uintPtr(2), Genres: []catalog.Genre{catalog.GenreCrime}, InStock: false, Price: decimal.RequireFromString("119.90")},
		},
		comments: []*catalog.Comment{
			{ID: 1, BookID: 3, Author: "Ivan", Text: "Замечательная книга."},
			{ID: 2, BookID: 4, Author: "Elena", Text: "Очень интересно, рекомендую."},
		},
	}
}
