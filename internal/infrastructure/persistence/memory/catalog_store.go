package memory

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/xiebiao/bookcart/internal/domain/catalog"
)

//go:embed seed.yaml
var defaultSeed []byte

// DefaultSeed 内置种子数据
func DefaultSeed() []byte {
	return defaultSeed
}

// 种子文件的YAML结构,与领域实体分开:价格用字符串保存精确小数
type seedDocument struct {
	Authors    []authorRecord    `yaml:"authors"`
	Publishers []publisherRecord `yaml:"publishers"`
	Books      []bookRecord      `yaml:"books"`
	Comments   []commentRecord   `yaml:"comments"`
}

type authorRecord struct {
	ID      uint    `yaml:"id"`
	Name    string  `yaml:"name"`
	Surname string  `yaml:"surname"`
	About   *string `yaml:"about"`
	Email   *string `yaml:"email"`
	Site    *string `yaml:"site"`
}

type publisherRecord struct {
	ID        uint    `yaml:"id"`
	Name      string  `yaml:"name"`
	Address   *string `yaml:"address"`
	Telephone *string `yaml:"telephone"`
	Email     *string `yaml:"email"`
	Site      *string `yaml:"site"`
}

type bookRecord struct {
	ID        uint     `yaml:"id"`
	Name      string   `yaml:"name"`
	Authors   []uint   `yaml:"authors"`
	Publisher *uint    `yaml:"publisher"`
	Genre     []string `yaml:"genre"`
	Year      *int     `yaml:"year"`
	Pages     *int     `yaml:"pages"`
	InStock   bool     `yaml:"in_stock"`
	Price     string   `yaml:"price"`
}

type commentRecord struct {
	ID          uint   `yaml:"id"`
	BookID      uint   `yaml:"book_id"`
	Author      string `yaml:"author"`
	Text        string `yaml:"text"`
	PublishedAt int64  `yaml:"published_at"` // Unix秒
}

// CatalogStore 内存目录
// 构造后只读,所有方法可以并发调用而不加锁
type CatalogStore struct {
	authors    map[uint]*catalog.Author
	publishers map[uint]*catalog.Publisher
	books      []*catalog.Book
	bookIndex  map[uint]*catalog.Book
	comments   map[uint][]*catalog.Comment
	nComments  int
}

var _ catalog.Store = (*CatalogStore)(nil)

// LoadCatalogStore 从种子文件加载,path为空时使用内置种子
func LoadCatalogStore(path string) (*CatalogStore, error) {
	if path == "" {
		return NewCatalogStore(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取种子文件失败: %w", err)
	}
	return NewCatalogStore(data)
}

// NewCatalogStore 解析并校验种子数据
// 校验:ID唯一、作者列表非空、引用完整、价格非负、体裁合法
func NewCatalogStore(seed []byte) (*CatalogStore, error) {
	var doc seedDocument
	if err := yaml.Unmarshal(seed, &doc); err != nil {
		return nil, fmt.Errorf("%w: 解析YAML失败: %v", catalog.ErrInvalidSeed, err)
	}

	s := &CatalogStore{
		authors:    make(map[uint]*catalog.Author, len(doc.Authors)),
		publishers: make(map[uint]*catalog.Publisher, len(doc.Publishers)),
		books:      make([]*catalog.Book, 0, len(doc.Books)),
		bookIndex:  make(map[uint]*catalog.Book, len(doc.Books)),
		comments:   make(map[uint][]*catalog.Comment),
	}

	for _, r := range doc.Authors {
		if _, dup := s.authors[r.ID]; dup || r.ID == 0 {
			return nil, invalidSeed("作者ID非法或重复: %d", r.ID)
		}
		s.authors[r.ID] = &catalog.Author{
			ID:      r.ID,
			Name:    r.Name,
			Surname: r.Surname,
			About:   r.About,
			Email:   r.Email,
			Site:    r.Site,
		}
	}

	for _, r := range doc.Publishers {
		if _, dup := s.publishers[r.ID]; dup || r.ID == 0 {
			return nil, invalidSeed("出版社ID非法或重复: %d", r.ID)
		}
		s.publishers[r.ID] = &catalog.Publisher{
			ID:        r.ID,
			Name:      r.Name,
			Address:   r.Address,
			Telephone: r.Telephone,
			Email:     r.Email,
			Site:      r.Site,
		}
	}

	for _, r := range doc.Books {
		b, err := s.toBook(r)
		if err != nil {
			return nil, err
		}
		s.books = append(s.books, b)
		s.bookIndex[b.ID] = b
	}

	seen := make(map[uint]bool, len(doc.Comments))
	for _, r := range doc.Comments {
		if seen[r.ID] || r.ID == 0 {
			return nil, invalidSeed("评论ID非法或重复: %d", r.ID)
		}
		seen[r.ID] = true
		if _, ok := s.bookIndex[r.BookID]; !ok {
			return nil, invalidSeed("评论%d引用了不存在的图书%d", r.ID, r.BookID)
		}
		s.comments[r.BookID] = append(s.comments[r.BookID], &catalog.Comment{
			ID:          r.ID,
			BookID:      r.BookID,
			Author:      r.Author,
			Text:        r.Text,
			PublishedAt: time.Unix(r.PublishedAt, 0).UTC(),
		})
		s.nComments++
	}

	return s, nil
}

func (s *CatalogStore) toBook(r bookRecord) (*catalog.Book, error) {
	if _, dup := s.bookIndex[r.ID]; dup || r.ID == 0 {
		return nil, invalidSeed("图书ID非法或重复: %d", r.ID)
	}
	if len(r.Authors) == 0 {
		return nil, invalidSeed("图书%d没有作者", r.ID)
	}
	for _, id := range r.Authors {
		if _, ok := s.authors[id]; !ok {
			return nil, invalidSeed("图书%d引用了不存在的作者%d", r.ID, id)
		}
	}
	if r.Publisher != nil {
		if _, ok := s.publishers[*r.Publisher]; !ok {
			return nil, invalidSeed("图书%d引用了不存在的出版社%d", r.ID, *r.Publisher)
		}
	}

	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return nil, invalidSeed("图书%d的价格%q无法解析", r.ID, r.Price)
	}
	if price.IsNegative() {
		return nil, invalidSeed("图书%d的价格为负数", r.ID)
	}

	genres := make([]catalog.Genre, 0, len(r.Genre))
	for _, g := range r.Genre {
		genre, err := catalog.ParseGenre(g)
		if err != nil {
			return nil, invalidSeed("图书%d的体裁%q未知", r.ID, g)
		}
		genres = append(genres, genre)
	}

	return &catalog.Book{
		ID:          r.ID,
		Name:        r.Name,
		AuthorIDs:   r.Authors,
		PublisherID: r.Publisher,
		Genres:      genres,
		Year:        r.Year,
		Pages:       r.Pages,
		InStock:     r.InStock,
		Price:       price,
	}, nil
}

func invalidSeed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", catalog.ErrInvalidSeed, fmt.Sprintf(format, args...))
}

// FindAuthor 根据ID查找作者
func (s *CatalogStore) FindAuthor(id uint) *catalog.Author {
	return s.authors[id]
}

// FindPublisher 根据ID查找出版社
func (s *CatalogStore) FindPublisher(id uint) *catalog.Publisher {
	return s.publishers[id]
}

// FindBook 根据ID查找图书
func (s *CatalogStore) FindBook(id uint) *catalog.Book {
	return s.bookIndex[id]
}

// CommentsForBook 按插入顺序返回评论
func (s *CatalogStore) CommentsForBook(bookID uint) []*catalog.Comment {
	return s.comments[bookID]
}

// Books 按插入顺序返回全部图书
func (s *CatalogStore) Books() []*catalog.Book {
	return s.books
}

// Stats 各集合的数量(启动日志用)
type Stats struct {
	Authors, Publishers, Books, Comments int
}

// Stats 返回各集合的数量
func (s *CatalogStore) Stats() Stats {
	return Stats{
		Authors:    len(s.authors),
		Publishers: len(s.publishers),
		Books:      len(s.books),
		Comments:   s.nComments,
	}
}
