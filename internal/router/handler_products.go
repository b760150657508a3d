package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-store/gateway/pkg/catalog"
	"github.com/vitrine-store/gateway/pkg/global"
)

// GetProducts serves one page of the filtered catalog. The fetch goes through
// the session's browser so overlapping requests from the same client cannot
// let an older response overwrite the newer snapshot.
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	query := catalog.Query{
		Search:      c.Query("search"),
		MinPrice:    c.Query("minPrice"),
		MaxPrice:    c.Query("maxPrice"),
		HasDiscount: c.Query("hasDiscount"),
		Material:    c.Query("material"),
		Page:        page,
	}

	browser := browsers.Get(browserKey(c))
	result, err := browser.Fetch(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to load products", nil))
		return
	}

	c.JSON(http.StatusOK, result)
}

// browserKey scopes browse state to the authenticated user, or to the client
// address for anonymous visitors.
func browserKey(c *gin.Context) string {
	if sess := sessionFrom(c); sess != nil {
		return "user:" + sess.User.ID
	}
	return "anon:" + c.ClientIP()
}
