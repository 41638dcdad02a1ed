package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is the write-model row for the bank service.
type Account struct {
	ID      uint            `gorm:"primaryKey"`
	Owner   string          `gorm:"not null"`
	Balance decimal.Decimal `gorm:"type:decimal(20,8);not null"`
}

// AccountBalance is the denormalized read-model row, one per account,
// rewritten after every write-model mutation.
type AccountBalance struct {
	AccountID uint            `gorm:"primaryKey"`
	Balance   decimal.Decimal `gorm:"type:decimal(20,8);not null"`
}

// Post is a blog entry row.
type Post struct {
	ID      uint   `gorm:"primaryKey"`
	Title   string `gorm:"not null"`
	Content string `gorm:"not null"`
}

// Conversation is the aggregate-root row for the chat service.
type Conversation struct {
	ID     uint   `gorm:"primaryKey"`
	Title  string `gorm:"not null"`
	Closed bool   `gorm:"not null;default:false"`
}

// ConversationMessage rows are owned by their conversation and rewritten
// wholesale on every aggregate save.
type ConversationMessage struct {
	ID             uint `gorm:"primaryKey"`
	ConversationID uint `gorm:"index;not null"`
	Sender         string
	Text           string
	CreatedAt      time.Time
}

// MigrateBank creates the bank service schema if absent.
func MigrateBank(db *gorm.DB) error {
	return db.AutoMigrate(&Account{}, &AccountBalance{})
}

// MigrateBlog creates the blog service schema if absent.
func MigrateBlog(db *gorm.DB) error {
	return db.AutoMigrate(&Post{})
}

// MigrateChat creates the chat service schema if absent.
func MigrateChat(db *gorm.DB) error {
	return db.AutoMigrate(&Conversation{}, &ConversationMessage{})
}
