package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
	Register("products", SeedProducts)
}

// SeedUsers creates the two default operators. The shared development
// password is "password"; change it before exposing a real deployment.
func SeedUsers(db *gorm.DB) error {
	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Administrator", Email: "admin@apotek.com", Password: hash, Role: models.RoleAdmin},
		{Name: "Budi Kasir", Email: "kasir@apotek.com", Password: hash, Role: models.RoleKasir},
	}
	for _, u := range users {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedProducts loads the starting catalog.
func SeedProducts(db *gorm.DB) error {
	products := []models.Product{
		{Name: "Paracetamol 500mg", Category: "Obat Bebas", Price: decimal.NewFromInt(5000), Stock: 100},
		{Name: "Amoxicillin 500mg", Category: "Antibiotik", Price: decimal.NewFromInt(12000), Stock: 50},
		{Name: "Cetirizine Syrup", Category: "Antihistamin", Price: decimal.NewFromInt(25000), Stock: 30},
		{Name: "Vitamin C 1000mg", Category: "Suplemen", Price: decimal.NewFromInt(1500), Stock: 200},
		{Name: "Antacid Doen", Category: "Obat Lambung", Price: decimal.NewFromInt(3000), Stock: 80},
	}
	for _, p := range products {
		var count int64
		if err := db.Model(&models.Product{}).Where("LOWER(name) = LOWER(?)", p.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
