package db_models

import "github.com/lib/pq"

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"unique"`
	PasswordHash string
	HomeCurrency string         `gorm:"size:3;default:'USD'"`
	Interests    pq.StringArray `gorm:"type:text[]"`
}
