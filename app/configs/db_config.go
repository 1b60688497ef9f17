package configs

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	connectRetries = 10
	connectDelay   = 5 * time.Second
)

// OpenConnection dials MySQL with a retry loop so the server survives the
// database container coming up after it.
func OpenConnection() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		LoadENV.DBUser,
		LoadENV.DBPassword,
		LoadENV.DBHost,
		LoadENV.DBPort,
		LoadENV.DBName,
	)

	for i := 1; i <= connectRetries; i++ {
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
			}
			if pingErr == nil {
				log.Printf("OpenConnection: connected to %s", LoadENV.DBName)
				return db, nil
			}
			err = pingErr
		}

		log.Printf("OpenConnection: attempt %d/%d failed: %v, retrying in %v", i, connectRetries, err, connectDelay)
		time.Sleep(connectDelay)
	}

	return nil, fmt.Errorf("database unreachable after %d attempts", connectRetries)
}
