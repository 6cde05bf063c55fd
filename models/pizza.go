package models

// Pizza is a static menu entry. The catalog is seeded once at startup
// and read-only afterwards.
type Pizza struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string  `gorm:"type:varchar(255)" json:"imageUrl"`
}
