package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcart/internal/application/book"
	"github.com/xiebiao/bookcart/internal/interface/http/dto"
	"github.com/xiebiao/bookcart/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	getBookUseCase     *appbook.GetBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	getCommentsUseCase *appbook.GetCommentsUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	getBookUseCase *appbook.GetBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getCommentsUseCase *appbook.GetCommentsUseCase,
) *BookHandler {
	return &BookHandler{
		getBookUseCase:     getBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		getCommentsUseCase: getCommentsUseCase,
	}
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  返回图书及其作者、出版社、评论;不存在时data为空
// @Description  出错时HTTP状态码仍为200,code为业务码: 40901 参数格式错误, 40904 comments_limit为负数
// @Tags         图书
// @Produce      json
// @Param        id             path  int true  "图书ID"
// @Param        comments_limit query int false "最多返回的评论数"
// @Success      200 {object} response.Response{data=book.BookView}
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindError(c, err)
		return
	}
	var req dto.GetBookRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.getBookUseCase.Execute(c.Request.Context(), appbook.GetBookRequest{
		ID:            uri.ID,
		CommentsLimit: req.CommentsLimit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if view == nil {
		response.Success(c, nil)
		return
	}
	response.Success(c, view)
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按作者、出版社、体裁、库存过滤,按书名排序后分页
// @Description  出错时HTTP状态码仍为200,code为业务码: 40901 参数格式错误, 40902 页码为负数, 40903 每页数量不在允许范围, 40904 comments_limit为负数, 40905 未知体裁, 40906 未知排序方向
// @Tags         图书
// @Produce      json
// @Param        author_id      query int    false "作者ID"
// @Param        publisher_id   query int    false "出版社ID"
// @Param        genre          query string false "体裁" Enums(biography, classic, crime, fantasy, humor, romantic, other)
// @Param        in_stock       query bool   false "是否有库存"
// @Param        page           query int    false "页码,从1开始"
// @Param        page_size      query int    false "每页数量" Enums(5, 30, 60, 120)
// @Param        sort           query string false "书名排序方向" Enums(ASC, DESC)
// @Param        comments_limit query int    false "每本书最多返回的评论数"
// @Success      200 {object} response.Response{data=response.PageData{list=[]book.BookView}}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	ucReq, err := req.ToUseCase()
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), ucReq)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, result.List, result.Page, result.PageSize)
}

// GetComments 图书评论
// @Summary      图书评论
// @Description  图书不存在时返回空列表
// @Description  出错时HTTP状态码仍为200,code为业务码: 40901 参数格式错误, 40904 limit为负数
// @Tags         图书
// @Produce      json
// @Param        id    path  int true  "图书ID"
// @Param        limit query int false "最多返回的评论数"
// @Success      200 {object} response.Response{data=[]book.CommentView}
// @Router       /api/v1/books/{id}/comments [get]
func (h *BookHandler) GetComments(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindError(c, err)
		return
	}
	var req dto.GetCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	comments, err := h.getCommentsUseCase.Execute(c.Request.Context(), appbook.GetCommentsRequest{
		BookID: uri.ID,
		Limit:  req.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
