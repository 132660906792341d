package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	appauthor "github.com/xiebiao/bookcart/internal/application/author"
	appbook "github.com/xiebiao/bookcart/internal/application/book"
	apporder "github.com/xiebiao/bookcart/internal/application/order"
	"github.com/xiebiao/bookcart/internal/domain/book"
	"github.com/xiebiao/bookcart/internal/domain/order"
	"github.com/xiebiao/bookcart/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookcart/internal/interface/http/handler"
	apperrors "github.com/xiebiao/bookcart/pkg/errors"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store, err := memory.NewCatalogStore(memory.DefaultSeed())
	require.NoError(t, err)

	log := zap.NewNop()
	resolver := book.NewResolver(store)
	assembler := appbook.NewAssembler(resolver)
	engine := book.NewQueryEngine(store, language.Russian, book.DefaultPageSizePolicy())
	cart := order.NewCart(store)
	publisher := order.NopPublisher{}

	return New(gin.TestMode, log, Handlers{
		Author: handler.NewAuthorHandler(appauthor.NewGetAuthorUseCase(store, log)),
		Book: handler.NewBookHandler(
			appbook.NewGetBookUseCase(store, assembler, log),
			appbook.NewListBooksUseCase(engine, store, assembler, nil, log),
			appbook.NewGetCommentsUseCase(store, resolver),
		),
		Order: handler.NewOrderHandler(
			apporder.NewGetOrderUseCase(cart, store, assembler),
			apporder.NewAddBookUseCase(cart, publisher, log),
			apporder.NewRemoveBookUseCase(cart, publisher, log),
			apporder.NewClearOrderUseCase(cart, publisher, log),
		),
	})
}

func do(t *testing.T, r *gin.Engine, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestRouter_Ping(t *testing.T) {
	r := setupRouter(t)
	w, env := do(t, r, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_Books(t *testing.T) {
	r := setupRouter(t)

	t.Run("默认列表", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/api/v1/books")
		require.Equal(t, 0, env.Code)

		var page struct {
			List     []appbook.BookView `json:"list"`
			Page     int                `json:"page"`
			PageSize int                `json:"page_size"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &page))
		ids := make([]uint, 0, len(page.List))
		for _, b := range page.List {
			ids = append(ids, b.ID)
		}
		assert.Equal(t, []uint{1, 2, 5, 4, 3}, ids)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 5, page.PageSize)
	})

	t.Run("过滤", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/api/v1/books?genre=crime&in_stock=false")
		require.Equal(t, 0, env.Code)

		var page struct {
			List []appbook.BookView `json:"list"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &page))
		require.Len(t, page.List, 1)
		assert.Equal(t, uint(5), page.List[0].ID)
		assert.Nil(t, page.List[0].Year)
	})

	t.Run("页码接近int上限返回空列表", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/api/v1/books?page=2305843009213693953&page_size=5")
		assert.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 0, env.Code, env.Message)

		var page struct {
			List []appbook.BookView `json:"list"`
			Page int                `json:"page"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Empty(t, page.List)
		assert.Equal(t, 1<<61+1, page.Page)
	})

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{"每页数量不允许", "/api/v1/books?page_size=7", apperrors.ErrCodeInvalidPageSize},
		{"页码为负数", "/api/v1/books?page=-1", apperrors.ErrCodeInvalidPage},
		{"排序方向未知", "/api/v1/books?sort=up", apperrors.ErrCodeInvalidSort},
		{"体裁未知", "/api/v1/books?genre=poetry", apperrors.ErrCodeInvalidGenre},
		{"页码不是数字", "/api/v1/books?page=abc", apperrors.ErrCodeBindError},
		{"评论数量为负数", "/api/v1/books/3?comments_limit=-1", apperrors.ErrCodeInvalidLimit},
		{"评论接口limit为负数", "/api/v1/books/3/comments?limit=-1", apperrors.ErrCodeInvalidLimit},
		{"ID不是数字", "/api/v1/books/abc", apperrors.ErrCodeBindError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodGet, tt.target)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.code, env.Code)
			assert.NotEmpty(t, env.Message)
		})
	}

	t.Run("图书详情", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/api/v1/books/4")
		require.Equal(t, 0, env.Code)

		var view appbook.BookView
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, "Собака Баскервилей", view.Name)
		require.NotNil(t, view.Publisher)
		assert.Equal(t, "Издательство Азбука", view.Publisher.Name)
		assert.Len(t, view.Comments, 1)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/api/v1/books/999")
		assert.Equal(t, 0, env.Code)
		assert.Empty(t, env.Data)
	})

	t.Run("评论", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/api/v1/books/999/comments")
		require.Equal(t, 0, env.Code)
		assert.JSONEq(t, "[]", string(env.Data))
	})
}

func TestRouter_Authors(t *testing.T) {
	r := setupRouter(t)

	_, env := do(t, r, http.MethodGet, "/api/v1/authors/3")
	require.Equal(t, 0, env.Code)
	var view appauthor.AuthorView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Дойл", view.Surname)

	_, env = do(t, r, http.MethodGet, "/api/v1/authors/0")
	assert.Equal(t, 0, env.Code)
	assert.Empty(t, env.Data)
}

func TestRouter_Order(t *testing.T) {
	r := setupRouter(t)

	success := func(t *testing.T, env envelope) bool {
		t.Helper()
		require.Equal(t, 0, env.Code)
		var resp apporder.MutationResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		return resp.Success
	}

	_, env := do(t, r, http.MethodPost, "/api/v1/order/books/3")
	assert.True(t, success(t, env))
	_, env = do(t, r, http.MethodPost, "/api/v1/order/books/4")
	assert.True(t, success(t, env))
	_, env = do(t, r, http.MethodPost, "/api/v1/order/books/4")
	assert.True(t, success(t, env))
	_, env = do(t, r, http.MethodPost, "/api/v1/order/books/999")
	assert.False(t, success(t, env))
	_, env = do(t, r, http.MethodDelete, "/api/v1/order/books/1")
	assert.False(t, success(t, env))

	_, env = do(t, r, http.MethodGet, "/api/v1/order")
	require.Equal(t, 0, env.Code)
	var view apporder.OrderView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Len(t, view.Books, 2)
	assert.Equal(t, 637.90, view.PriceAll)

	_, env = do(t, r, http.MethodDelete, "/api/v1/order/books/4")
	assert.True(t, success(t, env))
	_, env = do(t, r, http.MethodDelete, "/api/v1/order/books/3?all=true")
	assert.True(t, success(t, env))

	_, env = do(t, r, http.MethodGet, "/api/v1/order")
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Len(t, view.Books, 1)
	assert.Equal(t, 1, view.Books[0].Count)
	assert.Equal(t, 199.0, view.PriceAll)

	_, env = do(t, r, http.MethodDelete, "/api/v1/order")
	assert.True(t, success(t, env))
	_, env = do(t, r, http.MethodGet, "/api/v1/order")
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Empty(t, view.Books)
	assert.Zero(t, view.PriceAll)
}
