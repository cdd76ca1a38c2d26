package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tradeacademy/cmd/fx/account_fx"
	"tradeacademy/cmd/fx/content_fx"
	"tradeacademy/cmd/fx/db_fx"
	"tradeacademy/cmd/fx/entitlement_fx"
	"tradeacademy/cmd/fx/package_fx"
	"tradeacademy/cmd/fx/redis_fx"
	"tradeacademy/internal/api/controllers"
	"tradeacademy/internal/config"
	"tradeacademy/internal/infra"
	"tradeacademy/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.LoadConfig),
		db_fx.Module,
		redis_fx.Module,
		account_fx.Module,
		content_fx.Module,
		package_fx.Module,
		entitlement_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgres(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	contentController *controllers.ContentController,
	packageController *controllers.PackageController,
	webhookController *controllers.WebhookController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, contentController, packageController, webhookController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	contentController *controllers.ContentController,
	packageController *controllers.PackageController,
	webhookController *controllers.WebhookController) {

	api := r.Group("/api")

	// Public
	api.POST("/login", accountController.Login)
	api.GET("/hero", contentController.GetHero)
	api.GET("/features", contentController.ListFeatures)
	api.GET("/packages", packageController.ListPackages)
	api.GET("/testimonials", contentController.ListTestimonials)
	api.GET("/faqs", contentController.ListFAQs)
	api.POST("/payments/webhook", webhookController.HandleNotification)

	// Admin mutations
	admin := api.Group("")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))

	admin.PUT("/hero", contentController.UpdateHero)

	admin.POST("/features", contentController.CreateFeature)
	admin.PUT("/features/:id", contentController.UpdateFeature)
	admin.DELETE("/features/:id", contentController.DeleteFeature)

	admin.POST("/packages", packageController.CreatePackage)
	admin.PUT("/packages/:id", packageController.UpdatePackage)
	admin.DELETE("/packages/:id", packageController.DeletePackage)

	admin.POST("/testimonials", contentController.CreateTestimonial)
	admin.PUT("/testimonials/:id", contentController.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", contentController.DeleteTestimonial)

	admin.POST("/faqs", contentController.CreateFAQ)
	admin.PUT("/faqs/:id", contentController.UpdateFAQ)
	admin.DELETE("/faqs/:id", contentController.DeleteFAQ)
}
