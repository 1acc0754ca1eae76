package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"not null;index"`
	Email    string `gorm:"not null;uniqueIndex"`
	Phone    string `gorm:"not null;uniqueIndex"`
	Password string `gorm:"not null"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Description *string
	ImageURL    string `gorm:"column:image_url;not null"`
}

type Contact struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	FullName        string `gorm:"not null"`
	Email           string `gorm:"not null"`
	PhoneNumber     string `gorm:"not null"`
	RequestType     *string
	CarType         *string
	Budget          *string
	DetailedMessage *string
	CreatedAt       time.Time
}
