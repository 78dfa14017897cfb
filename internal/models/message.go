package models

import "time"

type Message struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SenderID      uint      `gorm:"not null;index" json:"senderId"`
	ReceiverID    uint      `gorm:"not null;index" json:"receiverId"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	ApplicationID *uint     `gorm:"index" json:"applicationId"`
	IsRead        bool      `gorm:"not null;default:false" json:"isRead"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	Sender        *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver      *User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
