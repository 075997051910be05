package handlers

import (
	"net/http"
	"strings"
	"time"

	intconfig "wtl-backend/internal/config"
	"wtl-backend/internal/domain"
	"wtl-backend/internal/domain/models"
	"wtl-backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// POST /api/auth/login
// The login form identifies users by mobile number.
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Mobile = strings.TrimSpace(req.Mobile)
	if req.Mobile == "" || req.Password == "" {
		RespondDomainError(c, domain.ValidationError{Field: "mobile", Msg: "mobile and password are required"})
		return
	}

	repo := repositories.UserRepo{DB: intconfig.DB}
	user, hash, err := repo.FindByMobile(req.Mobile)
	if err != nil {
		if repositories.IsNoRows(err) {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid mobile number or password")
		} else {
			RespondDomainError(c, domain.InternalError{Msg: "failed to load user", Err: err})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid mobile number or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to sign token", Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    signed,
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"address":  user.Address,
	})
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Address  string `json:"address"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Mobile = strings.TrimSpace(req.Mobile)
	switch {
	case req.Username == "":
		RespondDomainError(c, domain.ValidationError{Field: "username", Msg: "username is required"})
		return
	case req.Email == "":
		RespondDomainError(c, domain.ValidationError{Field: "email", Msg: "email is required"})
		return
	case !models.ValidPhone(req.Mobile):
		RespondDomainError(c, domain.ValidationError{Field: "mobile", Msg: "mobile must be a 10 digit number"})
		return
	case len(req.Password) < 6:
		RespondDomainError(c, domain.ValidationError{Field: "password", Msg: "password must be at least 6 characters"})
		return
	}
	if req.Role == "" {
		req.Role = "USER"
	}

	repo := repositories.UserRepo{DB: intconfig.DB}
	taken, err := repo.Exists(req.Email, req.Mobile)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to check existing user", Err: err})
		return
	}
	if taken {
		RespondDomainError(c, domain.ConflictError{Msg: "email or mobile number already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to hash password", Err: err})
		return
	}

	id, err := repo.Create(models.User{
		Username: req.Username,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Role:     req.Role,
		Address:  req.Address,
	}, string(hash))
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to save user", Err: err})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user": gin.H{
			"id":       id,
			"username": req.Username,
			"email":    req.Email,
			"mobile":   req.Mobile,
			"role":     req.Role,
			"address":  req.Address,
		},
	})
}
