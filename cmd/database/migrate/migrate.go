package migration

import (
	"fmt"
	"log"

	"github.com/Om136/rentals/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// PostGIS provides the geography point type and the distance functions
	// used by item queries.
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"postgis\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Payment{}); err != nil {
		log.Fatalf("Error migrating payment database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
