package handlers

import (
	"net/http"

	intconfig "wtl-backend/internal/config"
	"wtl-backend/internal/domain"
	"wtl-backend/internal/http/middleware"
	"wtl-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/session/prefill
// Returns the contact fields the booking form can pre-populate. Anonymous
// visitors get empty fields, not an error.
func SessionPrefill(c *gin.Context) {
	uid := middleware.GetUserID(c)
	if uid == 0 {
		c.JSON(http.StatusOK, gin.H{"name": "", "email": "", "phone": ""})
		return
	}

	repo := repositories.UserRepo{DB: intconfig.DB}
	user, err := repo.GetByID(uid)
	if err != nil {
		if repositories.IsNoRows(err) {
			c.JSON(http.StatusOK, gin.H{"name": "", "email": "", "phone": ""})
			return
		}
		RespondDomainError(c, domain.InternalError{Msg: "failed to load user", Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  user.Username,
		"email": user.Email,
		"phone": user.Mobile,
	})
}
