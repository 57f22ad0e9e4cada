package database

import (
	"log"
	"restro_pos/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cn"
	}

	owner := model.Owner{
		Name:         "Demo Owner",
		BusinessName: "Demo Diner",
		Email:        "owner@demo.local",
		Password:     HashPassword,
	}
	if err := db.Where(model.Owner{Email: owner.Email}).FirstOrCreate(&owner).Error; err != nil {
		log.Println("failed to seed owner:", owner.Email, "error:", err)
		return
	}

	tables := []model.Table{
		{OwnerID: owner.ID, TableNumber: 1, Capacity: 2},
		{OwnerID: owner.ID, TableNumber: 2, Capacity: 4},
		{OwnerID: owner.ID, TableNumber: 3, Capacity: 6},
	}
	for _, table := range tables {
		if err := db.Where(model.Table{OwnerID: owner.ID, TableNumber: table.TableNumber}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.TableNumber, "error:", err)
		}
	}

	inventory := []model.InventoryItem{
		{OwnerID: owner.ID, Name: "Coffee Beans", Quantity: 5000, Unit: "g", Threshold: 500},
		{OwnerID: owner.ID, Name: "Milk", Quantity: 20000, Unit: "ml", Threshold: 2000},
		{OwnerID: owner.ID, Name: "Flour", Quantity: 10000, Unit: "g", Threshold: 1000},
	}
	for _, item := range inventory {
		if err := db.Where(model.InventoryItem{OwnerID: owner.ID, Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed inventory:", item.Name, "error:", err)
		}
	}

	products := []model.Product{
		{OwnerID: owner.ID, Name: "Cappuccino", Slug: "cappuccino", Category: "Drinks", Price: 4.50, Available: true,
			Recipe: model.Recipe{{Name: "Coffee Beans", Quantity: 18, Unit: "g"}, {Name: "Milk", Quantity: 150, Unit: "ml"}}},
		{OwnerID: owner.ID, Name: "Pancakes", Slug: "pancakes", Category: "Food", Price: 7.90, Available: true,
			Recipe: model.Recipe{{Name: "Flour", Quantity: 120, Unit: "g"}, {Name: "Milk", Quantity: 200, Unit: "ml"}}},
	}
	for _, product := range products {
		if err := db.Where(model.Product{Slug: product.Slug}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed product:", product.Name, "error:", err)
		}
	}
}
