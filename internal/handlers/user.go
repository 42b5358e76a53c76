package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/thereayou/devlink/internal/database"
	"github.com/thereayou/devlink/internal/handlers/dto"
	"github.com/thereayou/devlink/internal/models"
	"github.com/thereayou/devlink/pkg/auth"
	"github.com/thereayou/devlink/pkg/gravatar"
)

type UserHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
}

func NewUserHandler(db *database.Database, jwtMgr *auth.JWTManager) *UserHandler {
	return &UserHandler{db: db, jwtManager: jwtMgr}
}

// Register регистрирует пользователя и выдаёт JWT
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrors(err, req.Messages())})
		return
	}

	_, err := h.db.FindUserByEmail(req.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Msg: "User Already Exists"}}})
		return
	}
	if err != gorm.ErrRecordNotFound {
		serverError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, err)
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Avatar:       gravatar.URL(req.Email),
		CreatedAt:    time.Now(),
	}

	if err := h.db.SaveUser(user); err != nil {
		serverError(c, err)
		return
	}

	token, err := h.jwtManager.Generate(user.ID.String())
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
