package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-store/gateway/pkg/global"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK"}))
}
