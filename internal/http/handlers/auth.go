package handlers

import (
	"net/http"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials against the users table and issues an HS256 token.
// POST /api/auth/login
func Login(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		user, err := Users.FindByLogin(c.Request.Context(), req.Login)
		if err != nil {
			if domain.IsNotFound(err) {
				respondError(c, http.StatusUnauthorized, "invalid_credentials", "invalid login or password", nil)
				return
			}
			RespondDomainError(c, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			respondError(c, http.StatusUnauthorized, "invalid_credentials", "invalid login or password", nil)
			return
		}
		if !user.Active() {
			respondError(c, http.StatusForbidden, "user_inactive", "user is not active", nil)
			return
		}

		token, err := IssueToken(secret, user, time.Now())
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		utils.LogEventf(middleware.GetRequestID(c), "auth", "login", "user_id=%d role=%s", user.ID, user.Role)
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  user.ToPublic(),
		})
	}
}

// IssueToken signs a token accepted by middleware.RequireAuth.
func IssueToken(secret []byte, user models.User, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	})
	return token.SignedString(secret)
}
