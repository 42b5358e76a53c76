package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/thereayou/devlink/internal/database"
	"github.com/thereayou/devlink/internal/handlers/dto"
	"github.com/thereayou/devlink/internal/middleware"
	"github.com/thereayou/devlink/pkg/auth"
)

type AuthHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
}

func NewAuthHandler(db *database.Database, jwtMgr *auth.JWTManager) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtMgr}
}

// GetMe возвращает текущего пользователя без хэша пароля
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"avatar":     user.Avatar,
		"created_at": user.CreatedAt,
	})
}

// Login проверяет пару email/пароль и выдаёт JWT.
// Неизвестный email и неверный пароль дают одинаковый ответ
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrors(err, req.Messages())})
		return
	}

	user, err := h.db.FindUserByEmail(req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Msg: "Invalid Credentials"}}})
			return
		}
		serverError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Msg: "Invalid Credentials"}}})
		return
	}

	token, err := h.jwtManager.Generate(user.ID.String())
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
