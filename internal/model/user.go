package model

type User struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:50;not null" json:"name"`
	Surname *string `gorm:"size:50" json:"surname"`
	Email   string  `gorm:"size:256;uniqueIndex;not null" json:"email"`
}
