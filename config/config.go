package config

import (
	"errors"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the order store. The default is an embedded SQLite file
// (DB_PATH, falling back to ./pizza_orders.db); setting DB_DRIVER=mysql
// switches to a MySQL server using DB_DSN.
func InitDB() (*gorm.DB, error) {
	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, errors.New("DB_DSN is required when DB_DRIVER=mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "pizza_orders.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
}
