package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thereayou/devlink/internal/database"
	"github.com/thereayou/devlink/internal/handlers/dto"
	"github.com/thereayou/devlink/internal/middleware"
	"github.com/thereayou/devlink/internal/models"
)

type ProfileHandler struct {
	db *database.Database
}

func NewProfileHandler(db *database.Database) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GetMyProfile возвращает профиль текущего пользователя
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	profile, err := h.db.GetProfileByUserID(userID.String())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "There Is No Profile For This User"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatProfileResponse(profile))
}

// UpsertProfile создает профиль или обновляет только переданные поля.
// Блок социальных ссылок при этом перезаписывается целиком
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrors(err, req.Messages())})
		return
	}

	profile := &models.Profile{
		UserID:         userID,
		Bio:            req.Bio,
		Status:         req.Status,
		Location:       req.Location,
		GithubUsername: req.GithubUsername,
		Social: models.SocialLinks{
			Youtube:   req.Youtube,
			Facebook:  req.Facebook,
			Twitter:   req.Twitter,
			Instagram: req.Instagram,
			Linkedin:  req.Linkedin,
		},
	}

	updated, err := h.db.UpsertProfile(profile, buildProfileFields(req))
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatProfileResponse(updated))
}

// GetAllProfiles возвращает все профили с именем и аватаром владельца
func (h *ProfileHandler) GetAllProfiles(c *gin.Context) {
	profiles, err := h.db.GetAllProfiles()
	if err != nil {
		serverError(c, err)
		return
	}

	result := make([]gin.H, len(profiles))
	for i := range profiles {
		result[i] = formatProfileResponse(&profiles[i])
	}

	c.JSON(http.StatusOK, result)
}

// GetProfileByUserID возвращает профиль по id владельца
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Profile Not Found"})
		return
	}

	profile, err := h.db.GetProfileByUserID(userID.String())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Profile Not Found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatProfileResponse(profile))
}

// DeleteProfile удаляет профиль и учетную запись текущего пользователя
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	if err := h.db.DeleteProfileByUserID(userID.String()); err != nil {
		serverError(c, err)
		return
	}

	if err := h.db.DeleteUser(userID.String()); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User Deleted"})
}

// buildProfileFields собирает набор колонок для обновления:
// обязательные поля и updated_at всегда, необязательные только если заданы,
// все пять social_* колонок безусловно
func buildProfileFields(req dto.ProfileRequest) map[string]interface{} {
	fields := map[string]interface{}{
		"bio":        req.Bio,
		"location":   req.Location,
		"updated_at": time.Now(),
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}
	if req.GithubUsername != "" {
		fields["github_username"] = req.GithubUsername
	}

	fields["social_youtube"] = req.Youtube
	fields["social_facebook"] = req.Facebook
	fields["social_twitter"] = req.Twitter
	fields["social_instagram"] = req.Instagram
	fields["social_linkedin"] = req.Linkedin

	return fields
}

func formatProfileResponse(p *models.Profile) gin.H {
	return gin.H{
		"id": p.ID,
		"user": gin.H{
			"id":     p.UserID,
			"name":   p.User.Name,
			"avatar": p.User.Avatar,
		},
		"bio":            p.Bio,
		"status":         p.Status,
		"location":       p.Location,
		"githubusername": p.GithubUsername,
		"social":         p.Social,
		"created_at":     p.CreatedAt,
		"updated_at":     p.UpdatedAt,
	}
}
