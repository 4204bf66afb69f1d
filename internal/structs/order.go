package structs

import "fmt"

const PaymentMethodCard = "card"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Badge variants used by the UI to colour a status.
const (
	VariantDefault     = "default"
	VariantSecondary   = "secondary"
	VariantOutline     = "outline"
	VariantDestructive = "destructive"
)

type statusView struct {
	label   string
	variant string
}

var statusViews = map[OrderStatus]statusView{
	OrderStatusPending:    {label: "Ожидает", variant: VariantSecondary},
	OrderStatusProcessing: {label: "Обработка", variant: VariantDefault},
	OrderStatusShipped:    {label: "Отправлен", variant: VariantOutline},
	OrderStatusDelivered:  {label: "Доставлен", variant: VariantDefault},
	OrderStatusCancelled:  {label: "Отменён", variant: VariantDestructive},
}

// OrderStatuses lists the closed set in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if _, ok := statusViews[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func (s OrderStatus) Valid() bool {
	_, ok := statusViews[s]
	return ok
}

// Label is the display text. Values outside the closed set read as pending.
func (s OrderStatus) Label() string {
	return s.view().label
}

func (s OrderStatus) Variant() string {
	return s.view().variant
}

// Active reports whether the order is still moving through fulfilment.
func (s OrderStatus) Active() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped:
		return true
	}
	return false
}

func (s OrderStatus) view() statusView {
	if v, ok := statusViews[s]; ok {
		return v
	}
	return statusViews[OrderStatusPending]
}

// OrderItem is a cart line as the orders service stores it. On create the
// client sends id/name/price/selectedSize; listings come back with the
// product_* column names.
type OrderItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name,omitempty"`
	Price        Amount `json:"price,omitempty"`
	Quantity     int64  `json:"quantity"`
	SelectedSize string `json:"selectedSize,omitempty"`

	ProductName  string `json:"product_name,omitempty"`
	ProductPrice Amount `json:"product_price,omitempty"`
	Size         string `json:"selected_size,omitempty"`
}

func (i OrderItem) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ProductName
}

func (i OrderItem) UnitPrice() int64 {
	if i.Price != 0 {
		return int64(i.Price)
	}
	return int64(i.ProductPrice)
}

type Order struct {
	ID              int64       `json:"id"`
	UserID          *int64      `json:"user_id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     Amount      `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryPhone   string      `json:"delivery_phone"`
	PaymentMethod   string      `json:"payment_method"`
	Status          OrderStatus `json:"status"`
	CreatedAt       string      `json:"created_at"`
	UserEmail       string      `json:"user_email,omitempty"`
	UserName        string      `json:"user_name,omitempty"`
}

type CreateOrder struct {
	UserID          int64       `json:"user_id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     int64       `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryPhone   string      `json:"delivery_phone"`
	PaymentMethod   string      `json:"payment_method"`
}

type OrderReceipt struct {
	OrderID   int64       `json:"order_id"`
	CreatedAt string      `json:"created_at"`
	Status    OrderStatus `json:"status"`
}

type UpdateStatus struct {
	OrderID int64       `json:"order_id"`
	Status  OrderStatus `json:"status"`
}

type Stats struct {
	Total   int   `json:"total"`
	Active  int   `json:"active"`
	Revenue int64 `json:"revenue"`
}
