package service

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"testing"
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/config"
	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerKey = "SB-Mid-server-testkey"

func newPaymentServiceForTest() (IPaymentService, *fakeUowFactory, *fakePublisher) {
	factory := newFakeUowFactory()
	pub := &fakePublisher{}
	svc := NewPaymentService(config.MidtransConfig{
		ServerKey:    testServerKey,
		PremiumPrice: 99000,
	}, factory, pub, noopLogger{}, "DOMAIN_EVENTS")
	return svc, factory, pub
}

func signedWebhook(orderId string) *dto.MidtransWebhookRequest {
	req := &dto.MidtransWebhookRequest{
		OrderID:           orderId,
		StatusCode:        "200",
		GrossAmount:       "99000.00",
		TransactionStatus: "settlement",
	}
	sum := sha512.Sum512([]byte(req.OrderID + req.StatusCode + req.GrossAmount + testServerKey))
	req.SignatureKey = hex.EncodeToString(sum[:])
	return req
}

func seedFreeSubWithOrder(t *testing.T, factory *fakeUowFactory, orderId string) *entity.Subscription {
	t.Helper()
	sub := &entity.Subscription{
		UserId:          uuid.New(),
		Plan:            entity.PlanTierFree,
		Active:          true,
		StartDate:       time.Now(),
		EndDate:         time.Now().AddDate(1, 0, 0),
		MidtransOrderId: &orderId,
	}
	require.NoError(t, factory.uow.subscriptions.Create(context.Background(), sub))
	return sub
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	svc, factory, _ := newPaymentServiceForTest()
	seedFreeSubWithOrder(t, factory, "order-1")

	req := signedWebhook("order-1")
	req.SignatureKey = "forged"

	err := svc.HandleWebhook(context.Background(), req)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestWebhookSettlementUpgradesToPremium(t *testing.T) {
	svc, factory, pub := newPaymentServiceForTest()
	sub := seedFreeSubWithOrder(t, factory, "order-1")

	err := svc.HandleWebhook(context.Background(), signedWebhook("order-1"))
	require.NoError(t, err)

	stored := factory.uow.subscriptions.subs[sub.Id]
	assert.Equal(t, entity.PlanTierPremium, stored.Plan)
	assert.True(t, stored.Active)

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.EventSubscriptionUpgrade, pub.published[0].EventName())
}

func TestWebhookSettlementIsIdempotent(t *testing.T) {
	svc, factory, pub := newPaymentServiceForTest()
	seedFreeSubWithOrder(t, factory, "order-1")

	require.NoError(t, svc.HandleWebhook(context.Background(), signedWebhook("order-1")))
	require.NoError(t, svc.HandleWebhook(context.Background(), signedWebhook("order-1")))

	// Second settlement is a no-op, no duplicate event.
	assert.Len(t, pub.published, 1)
}

func TestWebhookIgnoresPendingStatus(t *testing.T) {
	svc, factory, pub := newPaymentServiceForTest()
	sub := seedFreeSubWithOrder(t, factory, "order-1")

	req := signedWebhook("order-1")
	req.TransactionStatus = "pending"
	sum := sha512.Sum512([]byte(req.OrderID + req.StatusCode + req.GrossAmount + testServerKey))
	req.SignatureKey = hex.EncodeToString(sum[:])

	require.NoError(t, svc.HandleWebhook(context.Background(), req))

	stored := factory.uow.subscriptions.subs[sub.Id]
	assert.Equal(t, entity.PlanTierFree, stored.Plan)
	assert.Empty(t, pub.published)
}

func TestWebhookUnknownOrder(t *testing.T) {
	svc, _, _ := newPaymentServiceForTest()

	err := svc.HandleWebhook(context.Background(), signedWebhook("order-missing"))
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
