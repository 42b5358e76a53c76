package database

import (
	"github.com/thereayou/devlink/internal/models"
	"gorm.io/gorm/clause"
)

// UpsertProfile создает профиль или обновляет переданные поля,
// конфликт по user_id разрешается на стороне БД
func (d *Database) UpsertProfile(profile *models.Profile, fields map[string]interface{}) (*models.Profile, error) {
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(fields),
	}).Create(profile).Error
	if err != nil {
		return nil, err
	}
	return d.GetProfileByUserID(profile.UserID.String())
}

func (d *Database) GetProfileByUserID(userID string) (*models.Profile, error) {
	profile := models.Profile{}
	if err := d.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (d *Database) GetAllProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := d.db.Preload("User").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (d *Database) DeleteProfileByUserID(userID string) error {
	return d.db.Delete(&models.Profile{}, "user_id = ?", userID).Error
}
