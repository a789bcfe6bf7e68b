package migration

import (
	"errors"

	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils"

	"gorm.io/gorm"
)

var defaultCuisines = []string{
	"Pakistani", "Indian", "Chinese", "Italian", "Continental",
	"BBQ", "Fast Food", "Desserts", "Healthy", "Middle Eastern",
}

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&entities.User{},
		&entities.Otp{},
		&entities.Device{},
		&entities.UserAddress{},
		&entities.Cuisine{},
		&entities.Dish{},
		&entities.Order{},
		&entities.OrderHistory{},
		&entities.Chat{},
		&entities.Review{},
		&entities.Favourite{},
		&entities.Notification{},
		&entities.Withdraw{},
		&entities.PaymentIntent{},
	}
}

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			utils.Log.Errorf("Error migrating %T: %v", model, err)
			return err
		}
	}

	if err := seedCuisines(db); err != nil {
		utils.Log.Errorf("Error seeding cuisines: %v", err)
		return err
	}

	utils.Log.Info("Database migration complete")
	return nil
}

func seedCuisines(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Cuisine{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cuisines := make([]entities.Cuisine, 0, len(defaultCuisines))
	for _, name := range defaultCuisines {
		cuisines = append(cuisines, entities.Cuisine{Name: name})
	}
	if err := db.Create(&cuisines).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}
