package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"tradeacademy/internal/models/db_models"
	"tradeacademy/internal/models/request_models"
	"tradeacademy/internal/repositories"
	"tradeacademy/pkg/utils"
)

const (
	paymentStatusFinished = "finished"
	entitlementDays       = 30
)

// RoleGranter grants a chat-platform role to a user. Satisfied by
// discord.Client.
type RoleGranter interface {
	GrantRole(ctx context.Context, userID, roleID string) error
}

type EntitlementServiceInterface interface {
	// ProcessNotification runs the webhook workflow. A nil return means the
	// provider gets an acknowledgement; business-level rejections (wrong
	// status, unknown package, unmapped role) are acknowledged too so the
	// provider never retries them. Only storage failures return an error.
	ProcessNotification(ctx context.Context, notification request_models.PaymentNotification) error
}

type EntitlementService struct {
	packageRepo      repositories.PackageRepositoryInterface
	subscriptionRepo repositories.SubscriptionRepositoryInterface
	granter          RoleGranter
}

func NewEntitlementService(
	packageRepo repositories.PackageRepositoryInterface,
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	granter RoleGranter,
) EntitlementServiceInterface {
	return &EntitlementService{
		packageRepo:      packageRepo,
		subscriptionRepo: subscriptionRepo,
		granter:          granter,
	}
}

func (s *EntitlementService) ProcessNotification(ctx context.Context, n request_models.PaymentNotification) error {
	discordID := strings.TrimSpace(n.OrderDescription)

	if n.PaymentStatus != paymentStatusFinished || discordID == "" {
		log.Printf("Webhook ignored: order %s status %q", n.OrderID, n.PaymentStatus)
		return nil
	}

	pkg, err := s.packageRepo.FindByID(ctx, n.PurchaseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if pkg == nil || pkg.DiscordRoleID == "" {
		log.Printf("Webhook ignored: no role mapping for purchase %d (order %s)", n.PurchaseID, n.OrderID)
		return nil
	}

	// The subscription row is written before the role grant, in
	// pending_grant state, so a failed grant leaves a visible record an
	// operator can replay instead of a silent inconsistency. On re-delivery
	// the upsert touches only status/payment_id/discord_id; the entitlement
	// window is never extended.
	start := time.Now()
	productID := pkg.ID
	sub := &db_models.Subscription{
		OrderID:       n.OrderID,
		PaymentID:     formatPaymentID(n.PaymentID),
		DiscordID:     discordID,
		WalletAddress: n.PayAddress,
		ProductID:     &productID,
		Status:        db_models.SubStatusPendingGrant,
		StartDate:     start,
		EndDate:       start.Add(entitlementDays * 24 * time.Hour),
	}
	if err := s.subscriptionRepo.UpsertByOrderID(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.granter.GrantRole(ctx, discordID, pkg.DiscordRoleID); err != nil {
		log.Printf("Role grant failed for order %s (user %s, role %s): %v", n.OrderID, discordID, pkg.DiscordRoleID, err)
		s.markStatus(ctx, n.OrderID, db_models.SubStatusGrantFailed)
		return nil
	}

	log.Printf("Granted role %s to user %s for order %s", pkg.DiscordRoleID, discordID, n.OrderID)
	s.markStatus(ctx, n.OrderID, db_models.SubStatusActive)
	return nil
}

func (s *EntitlementService) markStatus(ctx context.Context, orderID string, status db_models.SubscriptionStatus) {
	if err := s.subscriptionRepo.UpdateStatusByOrderID(ctx, orderID, status); err != nil {
		log.Printf("Failed to mark subscription %s as %s: %v", orderID, status, err)
	}
}

func formatPaymentID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
