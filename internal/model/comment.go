package model

type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	CardID  uint   `gorm:"index" json:"card_id"`
	Content string `gorm:"size:500;not null" json:"content"`

	Card *Card `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"-"`
}

// All lists every model in dependency order, parents first.
func All() []any {
	return []any{&User{}, &Credential{}, &Column{}, &Card{}, &Comment{}}
}
