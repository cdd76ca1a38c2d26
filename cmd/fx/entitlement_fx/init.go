package entitlement_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tradeacademy/internal/api/controllers"
	"tradeacademy/internal/config"
	"tradeacademy/internal/discord"
	"tradeacademy/internal/repositories"
	"tradeacademy/internal/services"
)

var Module = fx.Provide(
	provideDiscordClient, provideSubscriptionRepo, provideEntitlementService, provideWebhookController)

func provideDiscordClient(cfg *config.Config) services.RoleGranter {
	if cfg.DiscordToken == "" || cfg.DiscordGuildID == "" {
		log.Fatal("DISCORD_BOT_TOKEN and DISCORD_GUILD_ID are required")
	}
	return discord.NewClient(cfg.DiscordToken, cfg.DiscordGuildID)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepositoryInterface {
	return repositories.NewSubscriptionRepository(db)
}

func provideEntitlementService(
	packageRepo repositories.PackageRepositoryInterface,
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	granter services.RoleGranter,
) services.EntitlementServiceInterface {
	return services.NewEntitlementService(packageRepo, subscriptionRepo, granter)
}

func provideWebhookController(entitlementService services.EntitlementServiceInterface, cfg *config.Config) *controllers.WebhookController {
	// Refuse to boot without a shared secret rather than accept unsigned
	// callbacks.
	if cfg.IPNSecret == "" {
		log.Fatal("IPN_SECRET is required")
	}
	return controllers.NewWebhookController(entitlementService, cfg.IPNSecret)
}
