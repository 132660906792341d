package dto

// RemoveBookRequest HTTP移出购物车请求
type RemoveBookRequest struct {
	All bool `form:"all" example:"false"` // true删除整行,false数量减1
}
