package structs

type CartLine struct {
	Product
	Quantity     int64  `json:"quantity"`
	SelectedSize string `json:"selectedSize"`
}

func (l CartLine) Subtotal() int64 {
	return l.Price * l.Quantity
}

type CartInfo struct {
	Lines     []CartLine `json:"lines"`
	Total     int64      `json:"total"`
	ItemCount int64      `json:"item_count"`
}

type AddToCart struct {
	ProductID int64 `json:"product_id"`
}

type SetQuantity struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CheckoutRequest struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
