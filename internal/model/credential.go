package model

// Credential holds the password material of a user. It is never serialized.
type Credential struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   uint   `gorm:"not null;uniqueIndex" json:"-"`
	PassHash string `gorm:"not null" json:"-"`
	Salt     string `gorm:"not null" json:"-"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Credential) TableName() string {
	return "user_credentials"
}

// UserWithCredential is the row shape of a user joined with its credential.
type UserWithCredential struct {
	User
	PassHash string
	Salt     string
}
