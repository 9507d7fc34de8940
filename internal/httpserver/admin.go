package httpserver

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"weardistrict/internal/domain"
	"weardistrict/internal/exporter"

	"github.com/gin-gonic/gin"
)

type statsResponse struct {
	TotalProducts int          `json:"totalProducts"`
	TotalUsers    int          `json:"totalUsers"`
	TotalOrders   int          `json:"totalOrders"`
	TotalRevenue  domain.Money `json:"totalRevenue"`
}

func createProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid product payload")
			return
		}
		created, err := products.Add(p)
		if err != nil {
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var patch domain.ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid product payload")
			return
		}
		updated, err := products.Update(id, patch)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			errorJSON(c, http.StatusNotFound, "product not found")
		case err != nil:
			errorJSON(c, http.StatusBadRequest, err.Error())
		default:
			c.JSON(http.StatusOK, updated)
		}
	}
}

func deleteProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if !products.Remove(id) {
			errorJSON(c, http.StatusNotFound, "product not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// exportProductsHandler renders the workbook in memory before writing any
// response headers.
func exportProductsHandler(products ProductService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := exporter.WriteXLSX(&buf, products.List()); err != nil {
			logger.Printf("export products failed: %v", err)
			errorJSON(c, http.StatusInternalServerError, "failed to export products")
			return
		}
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Data(http.StatusOK, exporter.ContentType, buf.Bytes())
	}
}

func listUsersHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := auth.Users()
		out := make([]userResponse, 0, len(users))
		for _, u := range users {
			out = append(out, toUserResponse(u))
		}
		c.JSON(http.StatusOK, gin.H{"users": out})
	}
}

func statsHandler(products ProductService, auth AuthService, checkout CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := checkout.Stats()
		c.JSON(http.StatusOK, statsResponse{
			TotalProducts: products.Count(),
			TotalUsers:    auth.UserCount(),
			TotalOrders:   orders.Orders,
			TotalRevenue:  orders.Revenue,
		})
	}
}
