package midtrans

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils"
	"HomeChef-Backend/pkg/order"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	// SnapClient is the part of the Midtrans Snap API the service uses.
	SnapClient interface {
		CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
	}

	MidtransService interface {
		CreatePaymentIntent(ctx context.Context, req domain.CreatePaymentIntentRequest, userID string) (domain.PaymentIntentResponse, error)
		HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		orderRepository    order.OrderRepository
		client             SnapClient
		serverKey          string
	}
)

func NewSnapClient(serverKey string, isProd bool) SnapClient {
	env := midtrans.Sandbox
	if isProd {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(serverKey, env)
	return &client
}

func NewMidtransService(
	midtransRepository MidtransRepository,
	orderRepository order.OrderRepository,
	client SnapClient,
	serverKey string,
) MidtransService {
	return &midtransService{
		midtransRepository: midtransRepository,
		orderRepository:    orderRepository,
		client:             client,
		serverKey:          serverKey,
	}
}

// zeroDecimalCurrencies have no minor unit.
var zeroDecimalCurrencies = map[string]bool{"IDR": true, "JPY": true, "KRW": true, "VND": true}

// MinorUnits converts amount to the smallest unit of currency.
func MinorUnits(amount float64, currency string) int64 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}

func (s *midtransService) CreatePaymentIntent(ctx context.Context, req domain.CreatePaymentIntentRequest, userID string) (domain.PaymentIntentResponse, error) {
	customerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PaymentIntentResponse{}, domain.ErrParseUUID
	}

	currency := strings.ToUpper(req.Currency)
	intent := &entities.PaymentIntent{
		UserID:      customerID,
		Amount:      req.Amount,
		AmountMinor: MinorUnits(req.Amount, currency),
		Currency:    currency,
		Status:      domain.PaymentStatusPending,
	}

	if req.OrderID != "" {
		o, err := s.orderRepository.GetOrderByID(ctx, req.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.PaymentIntentResponse{}, domain.ErrOrderNotFound
			}
			return domain.PaymentIntentResponse{}, err
		}
		if o.UserID != customerID {
			return domain.PaymentIntentResponse{}, domain.ErrNotOrderParticipant
		}
		intent.OrderID = &o.ID
	}

	if err := s.midtransRepository.CreatePaymentIntent(ctx, intent); err != nil {
		return domain.PaymentIntentResponse{}, err
	}

	res, merr := s.client.CreateTransaction(&snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  intent.ID.String(),
			GrossAmt: intent.AmountMinor,
		},
		CustomField1: currency,
	})
	if merr != nil {
		utils.Log.WithError(merr).WithField("payment_intent_id", intent.ID.String()).Error("midtrans rejected transaction")

		intent.Status = domain.PaymentStatusFailed
		if err := s.midtransRepository.UpdatePaymentIntent(ctx, intent); err != nil {
			utils.Log.WithError(err).Error("failed to mark payment intent as failed")
		}
		return domain.PaymentIntentResponse{}, fmt.Errorf("%w: %s", domain.ErrPaymentProcessor, merr.GetMessage())
	}

	intent.ClientSecret = res.Token
	intent.RedirectURL = res.RedirectURL
	if err := s.midtransRepository.UpdatePaymentIntent(ctx, intent); err != nil {
		return domain.PaymentIntentResponse{}, err
	}

	return domain.PaymentIntentResponse{
		ClientSecret:    res.Token,
		PaymentIntentID: intent.ID.String(),
		RedirectURL:     res.RedirectURL,
	}, nil
}

// Signature computes the key Midtrans attaches to its HTTP notifications.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func paymentStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "" || fraudStatus == "accept" {
			return domain.PaymentStatusSucceeded
		}
		return domain.PaymentStatusPending
	case "settlement":
		return domain.PaymentStatusSucceeded
	case "deny", "cancel", "expire", "failure":
		return domain.PaymentStatusFailed
	default:
		return domain.PaymentStatusPending
	}
}

func (s *midtransService) HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	if req.SignatureKey != Signature(req.OrderID, req.StatusCode, req.GrossAmount, s.serverKey) {
		return domain.ErrInvalidSignature
	}

	if _, err := uuid.Parse(req.OrderID); err != nil {
		return domain.ErrPaymentIntentNotFound
	}
	intent, err := s.midtransRepository.GetPaymentIntentByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPaymentIntentNotFound
		}
		return err
	}

	// a settled intent never goes back
	if intent.Status == domain.PaymentStatusSucceeded {
		return nil
	}

	intent.Status = paymentStatus(req.TransactionStatus, req.FraudStatus)
	if err := s.midtransRepository.UpdatePaymentIntent(ctx, intent); err != nil {
		return err
	}

	if intent.Status == domain.PaymentStatusSucceeded && intent.OrderID != nil && req.TransactionID != "" {
		if err := s.midtransRepository.SetOrderTxnID(ctx, intent.OrderID.String(), req.TransactionID); err != nil {
			utils.Log.WithError(err).WithField("order_id", intent.OrderID.String()).Error("failed to attach transaction id to order")
		}
	}
	return nil
}
