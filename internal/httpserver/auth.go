package httpserver

import (
	"net/http"

	"weardistrict/internal/domain"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	AdminMode bool   `json:"adminMode"`
}

// resultStatus maps a failed auth result to an HTTP status.
func resultStatus(r domain.Result) int {
	switch r.Reason {
	case domain.ReasonDuplicateEmail:
		return http.StatusConflict
	case domain.ReasonInvalidCredentials, domain.ReasonNoSession:
		return http.StatusUnauthorized
	case domain.ReasonNotAuthorized:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

func writeResult(c *gin.Context, auth AuthService, okStatus int, r domain.Result) {
	if !r.Success {
		c.JSON(resultStatus(r), resultResponse{Result: r})
		return
	}
	sess := toSessionResponse(auth.Session())
	c.JSON(okStatus, resultResponse{Result: r, Session: &sess})
}

func registerHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "email and password are required")
			return
		}
		res := auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
		writeResult(c, auth, http.StatusCreated, res)
	}
}

func loginHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "email and password are required")
			return
		}
		res := auth.Login(c.Request.Context(), req.Email, req.Password, req.AdminMode)
		writeResult(c, auth, http.StatusOK, res)
	}
}

func logoutHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.Logout(c.Request.Context())
		c.Status(http.StatusNoContent)
	}
}

func meHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := auth.Session()
		if !sess.Authenticated() {
			errorJSON(c, http.StatusUnauthorized, "not logged in")
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(sess))
	}
}

func updateProfileHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch domain.ProfilePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid profile payload")
			return
		}
		res := auth.UpdateProfile(c.Request.Context(), patch)
		writeResult(c, auth, http.StatusOK, res)
	}
}
