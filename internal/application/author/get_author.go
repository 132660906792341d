package author

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcart/internal/domain/catalog"
	"github.com/xiebiao/bookcart/pkg/logger"
	"github.com/xiebiao/bookcart/pkg/tracing"
)

// AuthorView 作者DTO
type AuthorView struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	About   *string `json:"about"`
	Email   *string `json:"email"`
	Site    *string `json:"site"`
}

// NewAuthorView 实体转DTO
func NewAuthorView(a *catalog.Author) AuthorView {
	return AuthorView{
		ID:      a.ID,
		Name:    a.Name,
		Surname: a.Surname,
		About:   a.About,
		Email:   a.Email,
		Site:    a.Site,
	}
}

// GetAuthorUseCase 查询作者用例
type GetAuthorUseCase struct {
	store  catalog.Store
	logger *zap.Logger
}

// NewGetAuthorUseCase 创建查询作者用例
func NewGetAuthorUseCase(store catalog.Store, logger *zap.Logger) *GetAuthorUseCase {
	return &GetAuthorUseCase{
		store:  store,
		logger: logger,
	}
}

// GetAuthorRequest 查询作者请求DTO
type GetAuthorRequest struct {
	ID uint
}

// Execute 查不到返回nil,不是错误
func (uc *GetAuthorUseCase) Execute(ctx context.Context, req GetAuthorRequest) *AuthorView {
	ctx, span := tracing.StartSpan(ctx, "bookcart/author", "GetAuthor")
	defer span.End()
	span.SetAttributes(attribute.Int("author_id", int(req.ID)))

	a := uc.store.FindAuthor(req.ID)
	if a == nil {
		logger.FromContext(ctx, uc.logger).Debug("作者不存在", zap.Uint("author_id", req.ID))
		return nil
	}

	view := NewAuthorView(a)
	return &view
}
