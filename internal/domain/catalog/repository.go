package catalog

// Store 目录存储接口
// 设计说明:
// 1. 启动时一次性加载,运行期只读,并发读不需要加锁
// 2. 查不到返回nil/空切片,不返回错误,由调用方决定是否致命
type Store interface {
	// FindAuthor 根据ID查找作者
	FindAuthor(id uint) *Author

	// FindPublisher 根据ID查找出版社
	FindPublisher(id uint) *Publisher

	// FindBook 根据ID查找图书
	FindBook(id uint) *Book

	// CommentsForBook 某本书的全部评论(按插入顺序,不截断)
	CommentsForBook(bookID uint) []*Comment

	// Books 全部图书(按插入顺序)
	Books() []*Book
}
