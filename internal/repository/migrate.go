package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table managed by this package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&ItemRequestModel{},
		&ItemModel{},
		&CommentModel{},
		&BookingModel{},
	)
}
