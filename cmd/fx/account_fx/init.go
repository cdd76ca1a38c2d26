package account_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tradeacademy/internal/api/controllers"
	"tradeacademy/internal/repositories"
	"tradeacademy/internal/services"
	"tradeacademy/pkg/limiter"
)

var Module = fx.Provide(
	provideAdminRepo, provideAttemptStore, provideAccountService, provideAccountController)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepositoryInterface {
	return repositories.NewAdminRepository(db)
}

func provideAttemptStore(client *redis.Client) limiter.AttemptStore {
	return limiter.NewRedisAttemptStore(client)
}

func provideAccountService(adminRepo repositories.AdminRepositoryInterface, attempts limiter.AttemptStore) services.AccountServiceInterface {
	return services.NewAccountService(adminRepo, attempts)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
