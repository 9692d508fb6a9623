package service

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/config"
	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"
	"github.com/RishavSingh2203/freaky-fit/pkg/events"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	ErrAlreadyPremium = errors.New("subscription is already premium")
	ErrBadSignature   = errors.New("webhook signature mismatch")
	ErrOrderNotFound  = errors.New("order not found")
	ErrSubNotFound    = errors.New("subscription not found")
)

type IPaymentService interface {
	// CreateUpgrade opens a Snap transaction for the premium tier and
	// pins the order id on the user's subscription.
	CreateUpgrade(ctx context.Context, userId uuid.UUID, email, fullName string) (*dto.UpgradeResponse, error)

	// HandleWebhook verifies the notification signature and, on
	// settlement, flips the subscription to PREMIUM.
	HandleWebhook(ctx context.Context, req *dto.MidtransWebhookRequest) error
}

type PaymentService struct {
	snapClient  snap.Client
	cfg         config.MidtransConfig
	uowFactory  unitofwork.RepositoryFactory
	publisher   IPublisherService
	logger      logger.ILogger
	eventsTopic string
}

func NewPaymentService(
	cfg config.MidtransConfig,
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	logger logger.ILogger,
	eventsTopic string,
) IPaymentService {
	env := midtrans.Sandbox
	if cfg.IsProduction {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(cfg.ServerKey, env)

	return &PaymentService{
		snapClient:  client,
		cfg:         cfg,
		uowFactory:  uowFactory,
		publisher:   publisher,
		logger:      logger,
		eventsTopic: eventsTopic,
	}
}

func (s *PaymentService) CreateUpgrade(ctx context.Context, userId uuid.UUID, email, fullName string) (*dto.UpgradeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ActiveForUser{UserID: userId, Now: time.Now()})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubNotFound
	}
	if sub.Plan == entity.PlanTierPremium {
		return nil, ErrAlreadyPremium
	}

	orderId := fmt.Sprintf("premium-%s-%d", userId.String(), time.Now().Unix())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: s.cfg.PremiumPrice,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: fullName,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "premium-subscription",
				Name:  "FreakyFit Premium (1 year)",
				Price: s.cfg.PremiumPrice,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return nil, fmt.Errorf("payment: create snap transaction: %w", snapErr.RawError)
	}

	sub.MidtransOrderId = &orderId
	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("payment", "upgrade transaction created", map[string]interface{}{
		"user":  userId.String(),
		"order": orderId,
	})

	return &dto.UpgradeResponse{
		OrderId:     orderId,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *PaymentService) HandleWebhook(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if !s.verifySignature(req) {
		return ErrBadSignature
	}

	settled := req.TransactionStatus == "settlement" ||
		(req.TransactionStatus == "capture" && req.FraudStatus == "accept")
	if !settled {
		s.logger.Info("payment", "ignoring non-settlement notification", map[string]interface{}{
			"order":  req.OrderID,
			"status": req.TransactionStatus,
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByMidtransOrderId{OrderID: req.OrderID})
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrOrderNotFound
	}
	if sub.Plan == entity.PlanTierPremium {
		// Midtrans retries notifications; settlement is idempotent.
		return nil
	}

	periodEnd := time.Now().AddDate(1, 0, 0)
	if err := uow.SubscriptionRepository().MarkPremium(ctx, sub.Id, periodEnd); err != nil {
		return err
	}

	if err := s.publisher.Publish(s.eventsTopic, events.NewSubscriptionUpgraded(sub.UserId)); err != nil {
		s.logger.Warn("payment", "failed to publish upgrade event", map[string]interface{}{
			"user":  sub.UserId.String(),
			"error": err.Error(),
		})
	}

	s.logger.Info("payment", "subscription upgraded to premium", map[string]interface{}{
		"user":  sub.UserId.String(),
		"order": req.OrderID,
	})
	return nil
}

// verifySignature checks Midtrans' sha512(order_id+status_code+gross_amount+server_key).
func (s *PaymentService) verifySignature(req *dto.MidtransWebhookRequest) bool {
	payload := req.OrderID + req.StatusCode + req.GrossAmount + s.cfg.ServerKey
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:]) == req.SignatureKey
}
