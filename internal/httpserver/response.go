package httpserver

import (
	"net/http"
	"strconv"

	"weardistrict/internal/domain"

	"github.com/gin-gonic/gin"
)

type userResponse struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// toUserResponse drops the password.
func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		IsAdmin: u.IsAdmin,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

type sessionResponse struct {
	User    *userResponse `json:"user"`
	IsAdmin bool          `json:"isAdmin"`
}

func toSessionResponse(s domain.Session) sessionResponse {
	out := sessionResponse{IsAdmin: s.Elevated}
	if s.User != nil {
		u := toUserResponse(*s.User)
		out.User = &u
	}
	return out
}

type resultResponse struct {
	domain.Result
	Session *sessionResponse `json:"session,omitempty"`
}

type cartResponse struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalItems int               `json:"totalItems"`
	TotalPrice domain.Money      `json:"totalPrice"`
}

func toCartResponse(cart CartService) cartResponse {
	return cartResponse{
		Lines:      cart.Lines(),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// pathID parses a positive integer path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		errorJSON(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
