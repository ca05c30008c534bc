package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

type Handler struct {
	cart     *services.CartService
	pricing  *services.PricingEngine
	discount *services.DiscountService
	checkout *services.CheckoutService
	orders   *services.OrderService
}

func NewHandler(cart *services.CartService, pricing *services.PricingEngine, discount *services.DiscountService, checkout *services.CheckoutService, orders *services.OrderService) *Handler {
	return &Handler{
		cart:     cart,
		pricing:  pricing,
		discount: discount,
		checkout: checkout,
		orders:   orders,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/cart/items", h.AddToCart)
	r.GET("/cart", h.GetCartContents)
	r.GET("/cart/total", h.GetTotal)
	r.GET("/cart/total/final", h.GetFinalTotal)
	r.POST("/cart/discount", h.ApplyDiscount)
	r.POST("/checkout", h.Checkout)
	r.GET("/orders/:id", h.GetOrder)
	r.GET("/users/:userId/orders", h.GetUserOrders)
}

// sessionID reads the session cookie, minting a fresh one when absent so a
// first add-to-cart immediately has a cart to live in.
func (h *Handler) sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(sessionCookie, sid, 3600*24, "/", "", false, true)
	return sid
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid := h.sessionID(c)
	if err := h.cart.AddItem(c.Request.Context(), sid, req.ProductID, req.Quantity); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item added"})
}

func (h *Handler) GetCartContents(c *gin.Context) {
	sid := h.sessionID(c)
	items, err := h.cart.Contents(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetTotal(c *gin.Context) {
	sid := h.sessionID(c)
	cart, err := h.cart.Cart(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total, err := h.pricing.RawTotal(c.Request.Context(), cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *Handler) GetFinalTotal(c *gin.Context) {
	sid := h.sessionID(c)
	cart, err := h.cart.Cart(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total, err := h.pricing.FinalTotal(c.Request.Context(), cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *Handler) ApplyDiscount(c *gin.Context) {
	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid := h.sessionID(c)
	pct, err := h.discount.Apply(c.Request.Context(), sid, req.Code)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"discount": pct})
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid := h.sessionID(c)
	orderID, err := h.checkout.Checkout(c.Request.Context(), sid, req.UserID, req.PaymentMethod)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items, err := h.orders.GetOrderItems(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}

func (h *Handler) GetUserOrders(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	orders, err := h.orders.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrDiscountInvalid):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
