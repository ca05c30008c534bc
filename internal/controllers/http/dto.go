package http

type AddToCartRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

type CheckoutRequest struct {
	UserID        uint64 `json:"userId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type CheckoutResponse struct {
	OrderID uint64 `json:"orderId"`
}
