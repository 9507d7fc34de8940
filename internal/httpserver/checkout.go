package httpserver

import (
	"errors"
	"log"
	"net/http"

	"weardistrict/internal/domain"
	checkoutsvc "weardistrict/internal/service/checkout"

	"github.com/gin-gonic/gin"
)

func checkoutSummaryHandler(checkout CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, checkout.Summary())
	}
}

func placeOrderHandler(checkout CheckoutService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form checkoutsvc.Form
		if err := c.ShouldBindJSON(&form); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid checkout payload")
			return
		}
		order, err := checkout.PlaceOrder(c.Request.Context(), form)
		if err != nil {
			var verr *checkoutsvc.ValidationError
			switch {
			case errors.As(err, &verr):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid checkout form", "fields": verr.Fields})
			case errors.Is(err, domain.ErrEmptyCart):
				errorJSON(c, http.StatusConflict, err.Error())
			default:
				logger.Printf("place order failed: %v", err)
				errorJSON(c, http.StatusInternalServerError, "failed to place order")
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
