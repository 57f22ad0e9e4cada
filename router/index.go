package router

import (
	"restro_pos/handler"
	"restro_pos/middleware"
	"restro_pos/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	owner := v1.Group("/owner", logger.New())
	owner.Get("/me", middleware.Protected(), handler.Me)
	owner.Put("/me", middleware.Protected(), validate.EditOwner(), handler.EditOwner)

	product := v1.Group("/product", logger.New())
	product.Get("/", middleware.Protected(), handler.GetProducts)
	product.Get("/:productId", middleware.Protected(), validate.GetById("productId"), handler.GetProductById)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.GetById("productId"), validate.EditProduct(), handler.EditProduct)
	product.Post("/:productId/image", middleware.Protected(), validate.GetById("productId"), handler.UploadProductImage)
	product.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProducts)

	inventory := v1.Group("/inventory", logger.New())
	inventory.Get("/", middleware.Protected(), handler.GetInventory)
	inventory.Post("/", middleware.Protected(), validate.CreateInventory(), handler.CreateInventory)
	inventory.Put("/:inventoryId", middleware.Protected(), validate.GetById("inventoryId"), validate.EditInventory(), handler.EditInventory)
	inventory.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteInventory)

	table := v1.Group("/table", logger.New())
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Put("/:tableId", middleware.Protected(), validate.GetById("tableId"), validate.EditTable(), handler.EditTable)
	table.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTables)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", middleware.Protected(), handler.GetCustomers)
	customer.Get("/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetCustomerById)
	customer.Post("/", middleware.Protected(), validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", middleware.Protected(), validate.GetById("customerId"), validate.EditCustomer(), handler.EditCustomer)

	order := v1.Group("/order", logger.New())
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/code/:orderCode", middleware.OptionalJWT(), handler.GetOrderByCode)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), validate.OwnOrder(), handler.GetOrderById)
	order.Patch("/:orderId/item/:itemId", middleware.Protected(), validate.GetById("orderId"), validate.GetById("itemId"), validate.OwnOrder(), validate.PatchItemStatus(), handler.PatchOrderItemStatus)
	order.Post("/:orderId/complete", middleware.Protected(), validate.GetById("orderId"), validate.OwnOrder(), handler.CompleteOrder)
	order.Delete("/:orderId", middleware.Protected(), validate.GetById("orderId"), validate.OwnOrder(), handler.DeleteOrder)

	bill := v1.Group("/bill", logger.New())
	bill.Post("/upload-signature", middleware.Protected(), handler.GenerateSignature)
	bill.Post("/:orderId/charges", middleware.Protected(), validate.GetById("orderId"), validate.OwnOrder(), validate.BillCharges(), handler.UpsertBillCharges)
	bill.Post("/:orderId/store-link", middleware.Protected(), validate.GetById("orderId"), validate.OwnOrder(), validate.BillStoreLink(), handler.SetBillStoreLink)
	bill.Post("/:orderId/image", middleware.Protected(), validate.GetById("orderId"), validate.OwnOrder(), handler.UploadBillImage)
	bill.Post("/:orderId/email", middleware.Protected(), validate.GetById("orderId"), validate.OwnOrder(), handler.EmailBill)
	bill.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), validate.OwnOrder(), handler.GetBill)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/summary", middleware.Protected(), handler.GetSummary)
	statistic.Get("/top-products", middleware.Protected(), handler.GetTopProducts)
	statistic.Get("/negative-stock", middleware.Protected(), handler.GetNegativeStock)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/kitchen/:ownerId", websocket.New(handler.KitchenSocket))
}
