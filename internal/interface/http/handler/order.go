package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookcart/internal/application/order"
	"github.com/xiebiao/bookcart/internal/interface/http/dto"
	"github.com/xiebiao/bookcart/pkg/response"
)

// OrderHandler 购物车HTTP处理器
// 变更接口失败(图书不存在、不在购物车里)时仍是code=0,data.success=false
type OrderHandler struct {
	getOrderUseCase   *apporder.GetOrderUseCase
	addBookUseCase    *apporder.AddBookUseCase
	removeBookUseCase *apporder.RemoveBookUseCase
	clearOrderUseCase *apporder.ClearOrderUseCase
}

// NewOrderHandler 创建购物车处理器
func NewOrderHandler(
	getOrderUseCase *apporder.GetOrderUseCase,
	addBookUseCase *apporder.AddBookUseCase,
	removeBookUseCase *apporder.RemoveBookUseCase,
	clearOrderUseCase *apporder.ClearOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		getOrderUseCase:   getOrderUseCase,
		addBookUseCase:    addBookUseCase,
		removeBookUseCase: removeBookUseCase,
		clearOrderUseCase: clearOrderUseCase,
	}
}

// GetOrder 查看购物车
// @Summary      查看购物车
// @Tags         购物车
// @Produce      json
// @Success      200 {object} response.Response{data=order.OrderView}
// @Router       /api/v1/order [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	view, err := h.getOrderUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// AddBook 加入购物车
// @Summary      加入购物车
// @Description  数量加1;图书不存在时success为false
// @Description  出错时HTTP状态码仍为200,code为业务码: 40901 ID格式错误
// @Tags         购物车
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=order.MutationResponse}
// @Router       /api/v1/order/books/{id} [post]
func (h *OrderHandler) AddBook(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindError(c, err)
		return
	}

	result := h.addBookUseCase.Execute(c.Request.Context(), apporder.AddBookRequest{BookID: uri.ID})
	response.Success(c, result)
}

// RemoveBook 移出购物车
// @Summary      移出购物车
// @Description  all=true删除整行,否则数量减1;不在购物车里时success为false
// @Description  出错时HTTP状态码仍为200,code为业务码: 40901 参数格式错误
// @Tags         购物车
// @Produce      json
// @Param        id  path  int  true  "图书ID"
// @Param        all query bool false "是否删除整行"
// @Success      200 {object} response.Response{data=order.MutationResponse}
// @Router       /api/v1/order/books/{id} [delete]
func (h *OrderHandler) RemoveBook(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindError(c, err)
		return
	}
	var req dto.RemoveBookRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	result := h.removeBookUseCase.Execute(c.Request.Context(), apporder.RemoveBookRequest{
		BookID:    uri.ID,
		RemoveAll: req.All,
	})
	response.Success(c, result)
}

// ClearOrder 清空购物车
// @Summary      清空购物车
// @Tags         购物车
// @Produce      json
// @Success      200 {object} response.Response{data=order.MutationResponse}
// @Router       /api/v1/order [delete]
func (h *OrderHandler) ClearOrder(c *gin.Context) {
	response.Success(c, h.clearOrderUseCase.Execute(c.Request.Context()))
}
