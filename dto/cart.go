package dto

// AddCartItemDTO's quantity defaults to 1 when omitted; the handler checks
// the identifying fields itself so the error shape matches the other forms.
type AddCartItemDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

type UpdateCartQuantityDTO struct {
	Quantity *int `json:"quantity" binding:"required"`
}
