package model

type Card struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ColumnID    uint    `gorm:"index" json:"column_id"`
	Title       string  `gorm:"size:256;not null" json:"title"`
	Description *string `gorm:"size:500" json:"description"`

	Column *Column `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE" json:"-"`
}
