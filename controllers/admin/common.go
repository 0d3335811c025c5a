package admin

import (
	"errors"

	"gorm.io/gorm"

	"matkabook/database"
	"matkabook/models"
	"matkabook/services"
)

// ownedUser loads a target user and enforces the ownership hierarchy: admins
// reach everyone, subadmins only their own users.
func ownedUser(caller models.User, targetID uint) (*models.User, error) {
	var target models.User
	err := database.DB.First(&target, targetID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if caller.Role == models.RoleAdmin {
		return &target, nil
	}
	if target.AssignedTo == nil || *target.AssignedTo != caller.ID {
		return nil, services.ErrForbidden
	}
	return &target, nil
}
