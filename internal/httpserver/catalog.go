package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"weardistrict/internal/domain"
	productsvc "weardistrict/internal/service/product"

	"github.com/gin-gonic/gin"
)

// browseProductsHandler serves the product list page:
// ?q=&category=Tops&category=Dresses&minPrice=10&maxPrice=50&page=2
func browseProductsHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := productsvc.Query{Search: strings.TrimSpace(c.Query("q"))}
		for _, cat := range c.QueryArray("category") {
			for _, part := range strings.Split(cat, ",") {
				if part = strings.TrimSpace(part); part != "" {
					q.Categories = append(q.Categories, part)
				}
			}
		}

		var err error
		if raw := c.Query("minPrice"); raw != "" {
			if q.MinPrice, err = domain.ParseMoney(raw); err != nil {
				errorJSON(c, http.StatusBadRequest, "invalid minPrice")
				return
			}
		}
		if raw := c.Query("maxPrice"); raw != "" {
			if q.MaxPrice, err = domain.ParseMoney(raw); err != nil {
				errorJSON(c, http.StatusBadRequest, "invalid maxPrice")
				return
			}
		}
		if raw := c.Query("page"); raw != "" {
			if q.Page, err = strconv.Atoi(raw); err != nil {
				errorJSON(c, http.StatusBadRequest, "invalid page")
				return
			}
		}

		c.JSON(http.StatusOK, products.Browse(q))
	}
}

func getProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		p, found := products.GetByID(id)
		if !found {
			errorJSON(c, http.StatusNotFound, "product not found")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func categoriesHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": products.Categories()})
	}
}
