package order

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookcart/internal/domain/catalog"
)

var (
	// discountThreshold 总价严格大于该值才给折扣
	discountThreshold = decimal.NewFromInt(1000)
	// discountRate 折扣比例
	discountRate = decimal.RequireFromString("0.05")
)

// PriceLookup 按ID查图书价格,catalog.Store满足该接口
type PriceLookup interface {
	FindBook(id uint) *catalog.Book
}

// Entry 购物车中的一行
type Entry struct {
	BookID   uint
	Quantity int
}

// Snapshot 购物车某一时刻的一致性副本
type Snapshot struct {
	Entries                []Entry // 按BookID升序
	DiscountPercentForUser decimal.Decimal
	PriceAll               decimal.Decimal
}

// Cart 购物车(整个进程只有一个)
// 设计说明:
// 1. books里不会出现数量为0的行,减到0直接删除
// 2. priceAll/discountPercentForUser是派生字段,每次成功变更后在锁内同步重算
// 3. 失败的变更不修改任何状态,也不重算
type Cart struct {
	mu     sync.Mutex
	prices PriceLookup

	books                  map[uint]int
	discountPercentForUser decimal.Decimal
	priceAll               decimal.Decimal
	now                    func() time.Time
}

// NewCart 创建空购物车
func NewCart(prices PriceLookup) *Cart {
	return &Cart{
		prices: prices,
		books:  make(map[uint]int),
		now:    time.Now,
	}
}

// AddBook 加一本书,id为0或图书不存在时返回false
func (c *Cart) AddBook(id uint) bool {
	_, ok := c.Add(id)
	return ok
}

// Add 同AddBook,成功时额外返回变更事件
func (c *Cart) Add(id uint) (Event, bool) {
	if id == 0 || c.prices.FindBook(id) == nil {
		return Event{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.books[id]++
	c.computeTotals()
	return c.event(EventBookAdded, id), true
}

// RemoveBook 删书,购物车里没有这本书时返回false
// removeAll为true删除整行,否则数量减1,减到0删除
func (c *Cart) RemoveBook(id uint, removeAll bool) bool {
	_, ok := c.Remove(id, removeAll)
	return ok
}

// Remove 同RemoveBook,成功时额外返回变更事件
func (c *Cart) Remove(id uint, removeAll bool) (Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty, exists := c.books[id]
	if !exists {
		return Event{}, false
	}

	if removeAll || qty-1 <= 0 {
		delete(c.books, id)
	} else {
		c.books[id] = qty - 1
	}
	c.computeTotals()
	return c.event(EventBookRemoved, id), true
}

// Clear 清空购物车,总是返回true
func (c *Cart) Clear() bool {
	c.Reset()
	return true
}

// Reset 同Clear,返回清空事件
func (c *Cart) Reset() Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.books)
	c.priceAll = decimal.Zero
	c.discountPercentForUser = decimal.Zero
	return c.event(EventCleared, 0)
}

// Snapshot 返回当前状态的副本
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry, 0, len(c.books))
	for _, id := range slices.Sorted(maps.Keys(c.books)) {
		entries = append(entries, Entry{BookID: id, Quantity: c.books[id]})
	}
	return Snapshot{
		Entries:                entries,
		DiscountPercentForUser: c.discountPercentForUser,
		PriceAll:               c.priceAll,
	}
}

// Quantity 某本书的数量,不在购物车里为0
func (c *Cart) Quantity(id uint) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.books[id]
}

// computeTotals 重算派生字段,调用方必须持有锁
// 图书已不存在时按价格0计算;总和为0时不做舍入
func (c *Cart) computeTotals() {
	sum := decimal.Zero
	for id, qty := range c.books {
		b := c.prices.FindBook(id)
		if b == nil {
			continue
		}
		sum = sum.Add(b.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	if sum.IsPositive() {
		sum = sum.Round(2)
	}
	c.priceAll = sum

	if c.priceAll.GreaterThan(discountThreshold) {
		c.discountPercentForUser = discountRate
	} else {
		c.discountPercentForUser = decimal.Zero
	}
}

// event 调用方必须持有锁
func (c *Cart) event(t EventType, bookID uint) Event {
	return Event{
		Type:                   t,
		BookID:                 bookID,
		Quantity:               c.books[bookID],
		Entries:                len(c.books),
		PriceAll:               c.priceAll,
		DiscountPercentForUser: c.discountPercentForUser,
		OccurredAt:             c.now(),
	}
}
