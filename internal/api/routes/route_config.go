package routes

import (
	"HomeChef-Backend/internal/api/handlers"
	"HomeChef-Backend/internal/middleware"
	"HomeChef-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	AddressHandler      handlers.AddressHandler
	ChefHandler         handlers.ChefHandler
	DishHandler         handlers.DishHandler
	OrderHandler        handlers.OrderHandler
	ChatHandler         handlers.ChatHandler
	NotificationHandler handlers.NotificationHandler
	DiscoveryHandler    handlers.DiscoveryHandler
	MidtransHandler     handlers.MidtransHandler
	UploadHandler       handlers.UploadHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()

	api := c.App.Group("/api/v1")
	c.Auth(api)

	auth := api.Group("", c.Middleware.AuthMiddleware(c.JWTService))
	c.User(auth)
	c.Discovery(auth)
	c.Chef(auth)
	c.Orders(auth)
	c.Chat(auth)
	c.Notifications(auth)
	c.Payment(auth)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}

func (c *Config) Auth(api fiber.Router) {
	api.Post("/register", c.UserHandler.Register)
	api.Post("/verify-otp", c.UserHandler.VerifyOtp)
	api.Post("/set-password", c.UserHandler.SetPassword)
	api.Post("/login", c.UserHandler.Login)
	api.Post("/send-reset-code", c.UserHandler.SendResetCode)
	api.Post("/reset-password", c.UserHandler.ResetPassword)
	api.Post("/social-login", c.UserHandler.SocialLogin)
}

func (c *Config) User(auth fiber.Router) {
	auth.Get("/user", c.UserHandler.Me)
	auth.Put("/user", c.UserHandler.UpdateUser)
	auth.Post("/logout", c.UserHandler.Logout)
	auth.Post("/refresh", c.UserHandler.Refresh)
	auth.Post("/register-device", c.UserHandler.RegisterDevice)
	auth.Post("/upload", c.UploadHandler.Upload)

	addresses := auth.Group("/addresses")
	addresses.Get("", c.AddressHandler.GetAddresses)
	addresses.Post("", c.AddressHandler.AddAddress)
	addresses.Put("/:id", c.AddressHandler.UpdateAddress)
	addresses.Delete("/:id", c.AddressHandler.DeleteAddress)
}

func (c *Config) Discovery(auth fiber.Router) {
	auth.Get("/home", c.DiscoveryHandler.Home)
	auth.Get("/cuisines", c.DiscoveryHandler.GetCuisines)
	auth.Get("/chefs", c.DiscoveryHandler.GetChefs)
	auth.Post("/chefs/:id/like", c.DiscoveryHandler.ToggleChefLike)
	auth.Post("/dishes/:id/like", c.DiscoveryHandler.ToggleDishLike)
}

func (c *Config) Chef(auth fiber.Router) {
	chef := auth.Group("/chef")

	// profile and payouts
	chef.Post("/onboard", c.ChefHandler.Onboard)
	chef.Post("/status", c.ChefHandler.UpdateStatus)
	chef.Post("/bank-details", c.ChefHandler.UpdateBankDetails)
	chef.Post("/withdraw", c.ChefHandler.RequestWithdrawal)
	chef.Get("/withdrawals", c.ChefHandler.GetWithdrawals)

	// catalog
	chef.Get("/dishes", c.DishHandler.GetDishes)
	chef.Post("/dishes", c.DishHandler.AddDish)
	chef.Put("/dishes/:id", c.DishHandler.UpdateDish)
	chef.Delete("/dishes/:id", c.DishHandler.DeleteDish)

	// order management
	chef.Get("/orders", c.OrderHandler.GetChefOrders)
	chef.Put("/orders/:id/status", c.OrderHandler.UpdateOrderStatus)

	// public chef profile
	chef.Get("/:id/dishes", c.DiscoveryHandler.GetChefDishes)
	chef.Get("/:id/reviews", c.DiscoveryHandler.GetChefReviews)
}

func (c *Config) Orders(auth fiber.Router) {
	orders := auth.Group("/orders")
	orders.Post("", c.OrderHandler.CreateOrder)
	orders.Get("", c.OrderHandler.GetOrders)
	orders.Get("/:id", c.OrderHandler.GetOrderDetails)
	orders.Post("/:id/review", c.OrderHandler.AddReview)
}

func (c *Config) Chat(auth fiber.Router) {
	chat := auth.Group("/chat")
	chat.Post("/send", c.ChatHandler.SendMessage)
	chat.Get("", c.ChatHandler.GetChat)
	chat.Get("/check-new", c.ChatHandler.CheckNewMessages)
	chat.Post("/mark-seen", c.ChatHandler.MarkAsSeen)
}

func (c *Config) Notifications(auth fiber.Router) {
	notifications := auth.Group("/notifications")
	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Post("/mark-seen", c.NotificationHandler.MarkAsSeen)
}

func (c *Config) Payment(auth fiber.Router) {
	auth.Post("/payment/create-intent", c.MidtransHandler.CreatePaymentIntent)
}
