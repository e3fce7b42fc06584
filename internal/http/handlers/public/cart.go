package public

import (
	"strconv"

	"github.com/kitoblarda/internal/http/response"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// Quantity is a pointer so an explicit zero passes binding; zero and
// negative quantities remove the line.
type updateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the current cart.
func (h *Handler) GetCart(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}
	detail, err := h.CartService.Detail(c.Request.Context(), sid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}

// AddCartItem adds a book to the cart, accumulating quantity.
func (h *Handler) AddCartItem(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	detail, err := h.CartService.Add(c.Request.Context(), sid, req.BookID, req.Quantity, false)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}

// UpdateCartItem sets the quantity of a cart line outright. A
// quantity of zero or less removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}
	bookID, err := strconv.ParseUint(c.Param("book_id"), 10, 32)
	if err != nil || bookID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	detail, err := h.CartService.SetQuantity(c.Request.Context(), sid, uint(bookID), *req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}

// DeleteCartItem removes a book from the cart. Removing an absent
// book still succeeds.
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}
	bookID, err := strconv.ParseUint(c.Param("book_id"), 10, 32)
	if err != nil || bookID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	detail, err := h.CartService.Remove(c.Request.Context(), sid, uint(bookID))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}

// GetCartCount returns the badge count for the cart icon.
func (h *Handler) GetCartCount(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}
	count, err := h.CartService.Count(c.Request.Context(), sid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}
