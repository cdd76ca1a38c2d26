package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeacademy/internal/models/db_models"
	"tradeacademy/internal/models/request_models"
)

type fakePackageRepo struct {
	packages map[uint]*db_models.Package
	err      error
}

func (f *fakePackageRepo) GetAll(ctx context.Context) ([]db_models.Package, error) {
	return nil, nil
}

func (f *fakePackageRepo) FindByID(ctx context.Context, id uint) (*db_models.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.packages[id], nil
}

func (f *fakePackageRepo) Create(ctx context.Context, pkg *db_models.Package) error { return nil }
func (f *fakePackageRepo) Update(ctx context.Context, pkg *db_models.Package) error { return nil }
func (f *fakePackageRepo) Delete(ctx context.Context, id uint) error                { return nil }

// fakeSubscriptionRepo mirrors the conflict semantics of the real upsert:
// an existing order_id only has status, payment_id and discord_id
// overwritten.
type fakeSubscriptionRepo struct {
	subs    map[string]*db_models.Subscription
	upserts int
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[string]*db_models.Subscription)}
}

func (f *fakeSubscriptionRepo) UpsertByOrderID(ctx context.Context, sub *db_models.Subscription) error {
	f.upserts++
	if existing, ok := f.subs[sub.OrderID]; ok {
		existing.Status = sub.Status
		existing.PaymentID = sub.PaymentID
		existing.DiscordID = sub.DiscordID
		return nil
	}
	cp := *sub
	f.subs[sub.OrderID] = &cp
	return nil
}

func (f *fakeSubscriptionRepo) UpdateStatusByOrderID(ctx context.Context, orderID string, status db_models.SubscriptionStatus) error {
	if existing, ok := f.subs[orderID]; ok {
		existing.Status = status
	}
	return nil
}

func (f *fakeSubscriptionRepo) FindByOrderID(ctx context.Context, orderID string) (*db_models.Subscription, error) {
	if sub, ok := f.subs[orderID]; ok {
		cp := *sub
		return &cp, nil
	}
	return nil, nil
}

type fakeGranter struct {
	calls []grantCall
	err   error
}

type grantCall struct {
	userID string
	roleID string
}

func (f *fakeGranter) GrantRole(ctx context.Context, userID, roleID string) error {
	f.calls = append(f.calls, grantCall{userID: userID, roleID: roleID})
	return f.err
}

func finishedNotification() request_models.PaymentNotification {
	return request_models.PaymentNotification{
		PaymentStatus:    "finished",
		PaymentID:        555,
		PurchaseID:       1,
		OrderID:          "O-100",
		OrderDescription: "123456789012345678",
		PayAddress:       "0xabc",
	}
}

func newEntitlementFixture() (*fakePackageRepo, *fakeSubscriptionRepo, *fakeGranter, EntitlementServiceInterface) {
	packageRepo := &fakePackageRepo{packages: map[uint]*db_models.Package{
		1: {ID: 1, Name: "Pro", DiscordRoleID: "R1"},
		2: {ID: 2, Name: "Free"},
	}}
	subRepo := newFakeSubscriptionRepo()
	granter := &fakeGranter{}
	svc := NewEntitlementService(packageRepo, subRepo, granter)
	return packageRepo, subRepo, granter, svc
}

func TestProcessNotificationIgnoresUnfinishedPayment(t *testing.T) {
	_, subRepo, granter, svc := newEntitlementFixture()

	n := finishedNotification()
	n.PaymentStatus = "waiting"

	err := svc.ProcessNotification(context.Background(), n)

	require.NoError(t, err)
	assert.Empty(t, granter.calls)
	assert.Zero(t, subRepo.upserts)
}

func TestProcessNotificationIgnoresMissingDiscordID(t *testing.T) {
	_, subRepo, granter, svc := newEntitlementFixture()

	n := finishedNotification()
	n.OrderDescription = "  "

	err := svc.ProcessNotification(context.Background(), n)

	require.NoError(t, err)
	assert.Empty(t, granter.calls)
	assert.Zero(t, subRepo.upserts)
}

func TestProcessNotificationIgnoresUnknownPackage(t *testing.T) {
	_, subRepo, granter, svc := newEntitlementFixture()

	n := finishedNotification()
	n.PurchaseID = 99

	err := svc.ProcessNotification(context.Background(), n)

	require.NoError(t, err)
	assert.Empty(t, granter.calls)
	assert.Zero(t, subRepo.upserts)
}

func TestProcessNotificationIgnoresPackageWithoutRole(t *testing.T) {
	_, subRepo, granter, svc := newEntitlementFixture()

	n := finishedNotification()
	n.PurchaseID = 2

	err := svc.ProcessNotification(context.Background(), n)

	require.NoError(t, err)
	assert.Empty(t, granter.calls)
	assert.Zero(t, subRepo.upserts)
}

func TestProcessNotificationGrantsRoleAndActivates(t *testing.T) {
	_, subRepo, granter, svc := newEntitlementFixture()

	before := time.Now()
	err := svc.ProcessNotification(context.Background(), finishedNotification())
	require.NoError(t, err)

	require.Len(t, granter.calls, 1)
	assert.Equal(t, "123456789012345678", granter.calls[0].userID)
	assert.Equal(t, "R1", granter.calls[0].roleID)

	sub, err := subRepo.FindByOrderID(context.Background(), "O-100")
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, db_models.SubStatusActive, sub.Status)
	assert.Equal(t, "555", sub.PaymentID)
	assert.Equal(t, "123456789012345678", sub.DiscordID)
	assert.Equal(t, "0xabc", sub.WalletAddress)
	require.NotNil(t, sub.ProductID)
	assert.Equal(t, uint(1), *sub.ProductID)
	assert.True(t, sub.StartDate.After(before.Add(-time.Second)))
	assert.Equal(t, sub.StartDate.Add(30*24*time.Hour), sub.EndDate)
}

func TestProcessNotificationMarksGrantFailed(t *testing.T) {
	_, subRepo, granter, svc := newEntitlementFixture()
	granter.err = errors.New("discord api error")

	err := svc.ProcessNotification(context.Background(), finishedNotification())

	// Grant failure is logged, never surfaced to the provider.
	require.NoError(t, err)

	sub, _ := subRepo.FindByOrderID(context.Background(), "O-100")
	require.NotNil(t, sub)
	assert.Equal(t, db_models.SubStatusGrantFailed, sub.Status)
}

func TestProcessNotificationRedeliveryKeepsWindow(t *testing.T) {
	_, subRepo, granter, svc := newEntitlementFixture()

	require.NoError(t, svc.ProcessNotification(context.Background(), finishedNotification()))

	first, _ := subRepo.FindByOrderID(context.Background(), "O-100")
	require.NotNil(t, first)

	redelivery := finishedNotification()
	redelivery.PaymentID = 777
	require.NoError(t, svc.ProcessNotification(context.Background(), redelivery))

	assert.Len(t, subRepo.subs, 1)
	assert.Len(t, granter.calls, 2)

	second, _ := subRepo.FindByOrderID(context.Background(), "O-100")
	require.NotNil(t, second)
	assert.Equal(t, db_models.SubStatusActive, second.Status)
	assert.Equal(t, "777", second.PaymentID)
	assert.Equal(t, first.StartDate, second.StartDate)
	assert.Equal(t, first.EndDate, second.EndDate)
	assert.Equal(t, first.ProductID, second.ProductID)
}
