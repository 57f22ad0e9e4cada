package main

import (
	"log"
	"restro_pos/database"
	"restro_pos/handler"
	"restro_pos/helper"
	"restro_pos/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	store := helper.NewCloudinaryStore(helper.InitCloudinary())
	handler.SetImageStore(store)

	reaper := helper.NewBillReaper(database.DB, store)
	reaper.Start()
	defer reaper.Stop()

	helper.StartDailyReportScheduler()
	defer helper.StopDailyReportScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
