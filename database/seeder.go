package database

import (
	"gorm.io/gorm"

	"github.com/slicely/pizza-order-backend/models"
	"github.com/slicely/pizza-order-backend/utils"
)

// Migrate creates or updates the pizzas and orders tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Pizza{},
		&models.Order{},
	)
}

// SeedPizzas inserts the starter catalog if the pizzas table is empty.
// Running it again is a no-op, so startup can always call it.
func SeedPizzas(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	utils.InfoLogger.Println("Seeding initial pizza data...")
	pizzas := []models.Pizza{
		{ID: 1, Name: "Classic Pepperoni", Description: "The all-time favorite, cheesy and spicy.", Price: 15.99, ImageURL: "https://placehold.co/100x100/D93025/FFFFFF?text=P"},
		{ID: 2, Name: "Margherita Dream", Description: "Fresh mozzarella, basil, and San Marzano tomatoes.", Price: 12.50, ImageURL: "https://placehold.co/100x100/4CAF50/FFFFFF?text=M"},
		{ID: 3, Name: "Gourmet Veggie", Description: "A mix of roasted bell peppers, olives, and mushrooms.", Price: 17.99, ImageURL: "https://placehold.co/100x100/FFC107/333333?text=V"},
		{ID: 4, Name: "BBQ Chicken", Description: "Tangy BBQ sauce, red onions, and smoked chicken.", Price: 16.99, ImageURL: "https://placehold.co/100x100/2196F3/FFFFFF?text=C"},
	}
	return db.Create(&pizzas).Error
}
