package identity

import "gorm.io/gorm"

// ForUser returns a GORM scope that filters rows owned by userID.
func ForUser(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Between returns a GORM scope matching messages exchanged by two users in
// either direction.
func Between(a, b uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a)
	}
}
