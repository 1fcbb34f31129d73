package models

import "time"

// Message rows are append-only.
type Message struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	SenderID      string    `gorm:"type:varchar(64);not null;index" json:"sender_id"`
	ReceiverID    string    `gorm:"type:varchar(64);not null;index" json:"receiver_id"`
	PackageID     *string   `gorm:"type:varchar(64);index" json:"package_id"`
	MessageText   string    `gorm:"type:text;not null" json:"message_text"`
	AttachmentURL *string   `json:"attachment_url"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`

	Sender   *User    `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Receiver *User    `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Package  *Package `gorm:"foreignKey:PackageID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
