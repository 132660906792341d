package order

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcart/internal/domain/catalog"
)

// priceTable 测试用的价格表
type priceTable map[uint]*catalog.Book

func (p priceTable) FindBook(id uint) *catalog.Book { return p[id] }

func newPriceTable(prices map[uint]string) priceTable {
	table := priceTable{}
	for id, price := range prices {
		table[id] = &catalog.Book{ID: id, Price: decimal.RequireFromString(price)}
	}
	return table
}

func seedPrices() priceTable {
	return newPriceTable(map[uint]string{
		1: "289.00",
		2: "129.00",
		3: "239.90",
		4: "199.00",
		5: "119.90",
	})
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "期望%s,实际%s", want, got)
}

func TestCart_Scenario(t *testing.T) {
	cart := NewCart(seedPrices())

	require.True(t, cart.AddBook(3))
	assertDecimal(t, "239.90", cart.Snapshot().PriceAll)

	require.True(t, cart.AddBook(4))
	snap := cart.Snapshot()
	assertDecimal(t, "438.90", snap.PriceAll)
	assertDecimal(t, "0", snap.DiscountPercentForUser)

	require.True(t, cart.AddBook(4))
	assertDecimal(t, "637.90", cart.Snapshot().PriceAll)

	require.True(t, cart.RemoveBook(3, true))
	snap = cart.Snapshot()
	assertDecimal(t, "398.00", snap.PriceAll)
	assert.Equal(t, []Entry{{BookID: 4, Quantity: 2}}, snap.Entries)
}

func TestCart_AddBook(t *testing.T) {
	t.Run("未知ID和空ID不修改购物车", func(t *testing.T) {
		cart := NewCart(seedPrices())
		require.True(t, cart.AddBook(1))
		before := cart.Snapshot()

		assert.False(t, cart.AddBook(42))
		assert.False(t, cart.AddBook(0))

		assert.Equal(t, before, cart.Snapshot())
	})

	t.Run("同一本书数量累加", func(t *testing.T) {
		cart := NewCart(seedPrices())
		for i := 0; i < 3; i++ {
			require.True(t, cart.AddBook(2))
		}
		assert.Equal(t, 3, cart.Quantity(2))
		assertDecimal(t, "387.00", cart.Snapshot().PriceAll)
	})

	t.Run("超过1000给5%折扣", func(t *testing.T) {
		cart := NewCart(seedPrices())
		for i := 0; i < 4; i++ {
			require.True(t, cart.AddBook(1))
		}
		snap := cart.Snapshot()
		assertDecimal(t, "1156.00", snap.PriceAll)
		assertDecimal(t, "0.05", snap.DiscountPercentForUser)

		require.True(t, cart.RemoveBook(1, false))
		snap = cart.Snapshot()
		assertDecimal(t, "867.00", snap.PriceAll)
		assertDecimal(t, "0", snap.DiscountPercentForUser)
	})

	t.Run("恰好1000不打折", func(t *testing.T) {
		cart := NewCart(newPriceTable(map[uint]string{7: "250.00"}))
		for i := 0; i < 4; i++ {
			require.True(t, cart.AddBook(7))
		}
		snap := cart.Snapshot()
		assertDecimal(t, "1000", snap.PriceAll)
		assertDecimal(t, "0", snap.DiscountPercentForUser)
	})

	t.Run("成功时返回事件", func(t *testing.T) {
		cart := NewCart(seedPrices())
		cart.AddBook(3)
		event, ok := cart.Add(3)
		require.True(t, ok)
		assert.Equal(t, EventBookAdded, event.Type)
		assert.Equal(t, uint(3), event.BookID)
		assert.Equal(t, 2, event.Quantity)
		assertDecimal(t, "479.80", event.PriceAll)
		assert.False(t, event.OccurredAt.IsZero())
	})
}

func TestCart_RemoveBook(t *testing.T) {
	t.Run("removeAll删除整行", func(t *testing.T) {
		cart := NewCart(seedPrices())
		for i := 0; i < 5; i++ {
			cart.AddBook(5)
		}
		require.True(t, cart.RemoveBook(5, true))
		assert.Equal(t, 0, cart.Quantity(5))
		assert.Empty(t, cart.Snapshot().Entries)
		assertDecimal(t, "0", cart.Snapshot().PriceAll)
	})

	t.Run("逐个减少直到删除", func(t *testing.T) {
		cart := NewCart(seedPrices())
		cart.AddBook(5)
		cart.AddBook(5)

		require.True(t, cart.RemoveBook(5, false))
		assert.Equal(t, []Entry{{BookID: 5, Quantity: 1}}, cart.Snapshot().Entries)

		require.True(t, cart.RemoveBook(5, false))
		assert.Empty(t, cart.Snapshot().Entries, "数量为0的行必须删除")

		assert.False(t, cart.RemoveBook(5, false))
	})

	t.Run("不在购物车里返回false且不修改", func(t *testing.T) {
		cart := NewCart(seedPrices())
		cart.AddBook(1)
		before := cart.Snapshot()

		assert.False(t, cart.RemoveBook(2, true))
		assert.False(t, cart.RemoveBook(0, false))
		assert.Equal(t, before, cart.Snapshot())
	})

	t.Run("事件携带剩余数量", func(t *testing.T) {
		cart := NewCart(seedPrices())
		cart.AddBook(4)
		cart.AddBook(4)
		event, ok := cart.Remove(4, false)
		require.True(t, ok)
		assert.Equal(t, EventBookRemoved, event.Type)
		assert.Equal(t, 1, event.Quantity)
		assert.Equal(t, 1, event.Entries)
		assertDecimal(t, "199.00", event.PriceAll)
	})
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart(seedPrices())
	for _, id := range []uint{1, 1, 1, 1, 3} {
		cart.AddBook(id)
	}

	assert.True(t, cart.Clear())
	once := cart.Snapshot()
	assert.True(t, cart.Clear())
	twice := cart.Snapshot()

	assert.Equal(t, once, twice)
	assert.Empty(t, twice.Entries)
	assert.True(t, twice.PriceAll.IsZero())
	assert.True(t, twice.DiscountPercentForUser.IsZero())

	event := cart.Reset()
	assert.Equal(t, EventCleared, event.Type)
	assert.Zero(t, event.Entries)
	assert.True(t, event.PriceAll.IsZero())
}

func TestCart_MissingBookCountsAsZero(t *testing.T) {
	prices := seedPrices()
	cart := NewCart(prices)
	cart.AddBook(1)
	cart.AddBook(2)

	delete(prices, 1)
	require.True(t, cart.AddBook(2))
	assertDecimal(t, "258.00", cart.Snapshot().PriceAll)
}

// 随机的加/删序列,每一步之后priceAll都等于按数量重新求和的结果
func TestCart_TotalsProperty(t *testing.T) {
	prices := newPriceTable(map[uint]string{
		1: "289.00", 2: "129.00", 3: "239.90", 4: "199.00", 5: "119.90",
		6: "0.01", 7: "33.33", 8: "0.00",
	})
	rng := rand.New(rand.NewSource(20200104))

	for round := 0; round < 50; round++ {
		cart := NewCart(prices)
		model := map[uint]int{}

		for step := 0; step < 200; step++ {
			id := uint(rng.Intn(10)) // 包含0和不存在的9号书
			switch rng.Intn(3) {
			case 0, 1:
				ok := cart.AddBook(id)
				_, known := prices[id]
				assert.Equal(t, id != 0 && known, ok)
				if ok {
					model[id]++
				}
			case 2:
				all := rng.Intn(2) == 0
				ok := cart.RemoveBook(id, all)
				_, had := model[id]
				assert.Equal(t, had, ok)
				if ok {
					if all || model[id] <= 1 {
						delete(model, id)
					} else {
						model[id]--
					}
				}
			}

			want := decimal.Zero
			for id, qty := range model {
				want = want.Add(prices[id].Price.Mul(decimal.NewFromInt(int64(qty))))
			}
			want = want.Round(2)

			snap := cart.Snapshot()
			require.True(t, want.Equal(snap.PriceAll), "round=%d step=%d 期望%s 实际%s", round, step, want, snap.PriceAll)
			if want.GreaterThan(decimal.NewFromInt(1000)) {
				assertDecimal(t, "0.05", snap.DiscountPercentForUser)
			} else {
				assert.True(t, snap.DiscountPercentForUser.IsZero())
			}
			require.Len(t, snap.Entries, len(model))
			for _, e := range snap.Entries {
				assert.Positive(t, e.Quantity)
				assert.Equal(t, model[e.BookID], e.Quantity)
			}
		}
	}
}

func TestCart_ConcurrentAdds(t *testing.T) {
	cart := NewCart(seedPrices())

	const workers, perWorker = 16, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				cart.AddBook(2)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, cart.Quantity(2))
	assertDecimal(t, "103200.00", cart.Snapshot().PriceAll)
}
