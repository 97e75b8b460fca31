package main

import (
	"log"

	"finbook/config"
	authController "finbook/controllers/auth"
	categoryController "finbook/controllers/category"
	dashboardController "finbook/controllers/dashboard"
	transactionController "finbook/controllers/transaction"
	walletController "finbook/controllers/wallet"
	"finbook/database"
	"finbook/repository"
	authRoutes "finbook/routers/authRoutes"
	categoryRoutes "finbook/routers/categoryRoutes"
	dashboardRoutes "finbook/routers/dashboardRoutes"
	transactionRoutes "finbook/routers/transactionRoutes"
	walletRoutes "finbook/routers/walletRoutes"
	"finbook/service"
	"finbook/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Stores
	users := repository.NewUserStore(db)
	wallets := repository.NewWalletStore(db)
	categories := repository.NewCategoryStore(db)
	transactions := repository.NewTransactionStore(db)

	// Services
	reconciler := service.NewBalanceReconciler(db, wallets, transactions)
	transactionService := service.NewTransactionService(reconciler, transactions, categories)
	walletService := service.NewWalletService(wallets)
	categoryService := service.NewCategoryService(categories)
	dashboardService := service.NewDashboardService(wallets, transactions)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.NewAuthController(users, categories, wallets))
	walletRoutes.SetupWalletRoutes(app, walletController.NewWalletController(walletService))
	categoryRoutes.SetupCategoryRoutes(app, categoryController.NewCategoryController(categoryService))
	transactionRoutes.SetupTransactionRoutes(app, transactionController.NewTransactionController(transactionService))
	dashboardRoutes.SetupDashboardRoutes(app, dashboardController.NewDashboardController(dashboardService))

	utils.InitializeBalanceAudit(db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
