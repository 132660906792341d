package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookcart/internal/application/author"
	"github.com/xiebiao/bookcart/internal/interface/http/dto"
	"github.com/xiebiao/bookcart/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	getAuthorUseCase *appauthor.GetAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(getAuthorUseCase *appauthor.GetAuthorUseCase) *AuthorHandler {
	return &AuthorHandler{
		getAuthorUseCase: getAuthorUseCase,
	}
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Description  按ID查询作者,不存在时data为空
// @Description  出错时HTTP状态码仍为200,code为业务码: 40901 ID格式错误
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=author.AuthorView}
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindError(c, err)
		return
	}

	view := h.getAuthorUseCase.Execute(c.Request.Context(), appauthor.GetAuthorRequest{ID: uri.ID})
	if view == nil {
		response.Success(c, nil)
		return
	}
	response.Success(c, view)
}
