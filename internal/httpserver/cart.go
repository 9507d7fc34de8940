package httpserver

import (
	"errors"
	"net/http"
	"slices"

	"weardistrict/internal/domain"

	"github.com/gin-gonic/gin"
)

type addCartLineRequest struct {
	ProductID int    `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func getCartHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func clearCartHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear(c.Request.Context())
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

// addCartLineHandler snapshots the current catalog entry into the cart.
// Quantity defaults to 1.
func addCartLineHandler(cart CartService, products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartLineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "productId and size are required")
			return
		}
		p, ok := products.GetByID(req.ProductID)
		if !ok {
			errorJSON(c, http.StatusNotFound, "product not found")
			return
		}
		if len(p.Sizes) > 0 && !slices.Contains(p.Sizes, req.Size) {
			errorJSON(c, http.StatusBadRequest, "size not available for this product")
			return
		}
		qty := 1
		if req.Quantity != nil {
			qty = *req.Quantity
		}
		if err := cart.Add(c.Request.Context(), p, req.Size, qty); err != nil {
			if errors.Is(err, domain.ErrInvalidQuantity) {
				errorJSON(c, http.StatusBadRequest, err.Error())
				return
			}
			errorJSON(c, http.StatusInternalServerError, "failed to add to cart")
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

// setCartQuantityHandler overwrites a line's quantity; zero or less removes it.
func setCartQuantityHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "productId")
		if !ok {
			return
		}
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "quantity is required")
			return
		}
		err := cart.SetQuantity(c.Request.Context(), id, c.Param("size"), *req.Quantity)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			errorJSON(c, http.StatusNotFound, "cart line not found")
			return
		case errors.Is(err, domain.ErrInvalidQuantity):
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			errorJSON(c, http.StatusInternalServerError, "failed to update cart")
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func removeCartLineHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "productId")
		if !ok {
			return
		}
		if !cart.Remove(c.Request.Context(), id, c.Param("size")) {
			errorJSON(c, http.StatusNotFound, "cart line not found")
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}
