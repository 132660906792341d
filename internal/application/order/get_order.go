package order

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcart/internal/application/book"
	"github.com/xiebiao/bookcart/internal/domain/catalog"
	"github.com/xiebiao/bookcart/internal/domain/order"
	"github.com/xiebiao/bookcart/pkg/tracing"
)

// GetOrderUseCase 查看购物车用例
type GetOrderUseCase struct {
	cart      *order.Cart
	store     catalog.Store
	assembler *book.Assembler
}

// NewGetOrderUseCase 创建查看购物车用例
func NewGetOrderUseCase(cart *order.Cart, store catalog.Store, assembler *book.Assembler) *GetOrderUseCase {
	return &GetOrderUseCase{
		cart:      cart,
		store:     store,
		assembler: assembler,
	}
}

// OrderEntry 购物车中的一行
type OrderEntry struct {
	Book  book.BookView `json:"book"`
	Count int           `json:"count"`
}

// OrderView 购物车DTO
type OrderView struct {
	Books                  []OrderEntry `json:"books"`
	DiscountPercentForUser float64      `json:"discount_percent_for_user"`
	PriceAll               float64      `json:"price_all"`
}

// Execute 返回购物车的一致性快照
// 行按图书在目录中的顺序排列;已从目录消失的图书不输出,但仍计入总价
func (uc *GetOrderUseCase) Execute(ctx context.Context) (view *OrderView, err error) {
	_, span := tracing.StartSpan(ctx, "bookcart/order", "GetOrder")
	defer func() { tracing.EndSpan(span, err) }()

	snap := uc.cart.Snapshot()
	span.SetAttributes(attribute.Int("entries", len(snap.Entries)))

	counts := make(map[uint]int, len(snap.Entries))
	for _, e := range snap.Entries {
		counts[e.BookID] = e.Quantity
	}

	view = &OrderView{
		Books:                  make([]OrderEntry, 0, len(snap.Entries)),
		DiscountPercentForUser: snap.DiscountPercentForUser.InexactFloat64(),
		PriceAll:               snap.PriceAll.InexactFloat64(),
	}
	for _, b := range uc.store.Books() {
		count, ok := counts[b.ID]
		if !ok {
			continue
		}
		bv, err := uc.assembler.BookView(b, nil)
		if err != nil {
			return nil, err
		}
		view.Books = append(view.Books, OrderEntry{Book: *bv, Count: count})
	}
	return view, nil
}
