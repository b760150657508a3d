package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-store/gateway/pkg/global"
	"github.com/vitrine-store/gateway/pkg/models"
	"github.com/vitrine-store/gateway/pkg/token"
)

// Login forwards credentials to the backend and, on success, persists the
// issued token in the auth cookie. Identity comes from the backend's own
// response, not from decoding the token.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	lr, err := apiClient.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to reach authentication service", nil))
		return
	}

	if !lr.Success || lr.Token == "" {
		message := lr.Message
		if message == "" {
			message = "Invalid credentials"
		}
		c.JSON(http.StatusUnauthorized, global.ErrorResponse(message, nil))
		return
	}

	token.SetCookie(c.Writer, lr.Token)
	c.JSON(http.StatusOK, global.SuccessResponse(lr.User))
}

func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	rr, err := apiClient.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to reach registration service", nil))
		return
	}

	if !rr.Success {
		message := rr.Message
		if message == "" {
			message = "Failed to create account"
		}
		c.JSON(http.StatusBadRequest, global.ErrorResponse(message, nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]string{"message": "Account created"}))
}

// Logout clears the cookie and drops the local cart state. Idempotent: a
// request without a session still gets a fresh cookie deletion.
func Logout(c *gin.Context) {
	if sess := sessionFrom(c); sess != nil {
		cartStore.Reset(c.Request.Context(), sess.User.ID)
	}

	token.ClearCookie(c.Writer)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Logged out"}))
}

// GetSession reports the identity decoded from the auth cookie, if any.
func GetSession(c *gin.Context) {
	sess := sessionFrom(c)
	if sess == nil {
		c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{"authenticated": false}))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"authenticated": true,
		"user":          sess.User,
	}))
}
