package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database for one service. Each service reads its
// own <PREFIX>_DB_* variables so the six services can point at
// separate databases:
//
//	ACCOUNT_DB_USER, ACCOUNT_DB_PASS, ACCOUNT_DB_HOST,
//	ACCOUNT_DB_PORT, ACCOUNT_DB_NAME
//
// Setting <PREFIX>_DB_DRIVER=sqlite switches to a local sqlite file
// (<PREFIX>_DB_NAME as path), which keeps local runs free of MySQL.
func InitDB(prefix string) (*gorm.DB, error) {
	if getenv(prefix, "DB_DRIVER", "mysql") == "sqlite" {
		path := getenv(prefix, "DB_NAME", prefix+".db")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getenv(prefix, "DB_USER", "root"),
		getenv(prefix, "DB_PASS", ""),
		getenv(prefix, "DB_HOST", "127.0.0.1"),
		getenv(prefix, "DB_PORT", "3306"),
		getenv(prefix, "DB_NAME", prefix),
	)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func getenv(prefix, key, fallback string) string {
	if v := os.Getenv(prefix + "_" + key); v != "" {
		return v
	}
	return fallback
}
