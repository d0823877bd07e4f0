package models

import "time"

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Account     string    `json:"account" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"` // bcrypt hash
	Name        string    `json:"name" gorm:"not null"`
	CompanyID   int       `json:"company_id" gorm:"not null"`
	CompanyName string    `json:"company_name" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
