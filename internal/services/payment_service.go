package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"subpay/internal/gateway/phonepe"
	"subpay/internal/models/db_models"
	"subpay/internal/models/response_models"
	"subpay/internal/repositories"
	"subpay/pkg/utils"
)

// PaymentGateway is the slice of the PhonePe client the payment flows use.
// Kept as an interface so the flows are testable against a substitute.
type PaymentGateway interface {
	Pay(ctx context.Context, order phonepe.PayOrder) (*phonepe.Response, error)
	Status(ctx context.Context, merchantTransactionID string) (*phonepe.Response, error)
	CallbackURL(userID, planID, transactionID string) string
}

type PaymentService interface {
	InitiatePayment(ctx context.Context, userID, planID string) (*response_models.InitiatePaymentResponse, error)
	CheckPaymentStatus(ctx context.Context, userID, planID, merchantTransactionID string) (*response_models.PaymentStatusResponse, error)
}

type paymentService struct {
	plans    repositories.IPlanRepository
	users    repositories.IUserRepository
	payments repositories.IPaymentRepository
	gateway  PaymentGateway
}

func NewPaymentService(
	plans repositories.IPlanRepository,
	users repositories.IUserRepository,
	payments repositories.IPaymentRepository,
	gateway PaymentGateway) PaymentService {

	return &paymentService{
		plans:    plans,
		users:    users,
		payments: payments,
		gateway:  gateway,
	}
}

func (s *paymentService) InitiatePayment(ctx context.Context, userID, planID string) (*response_models.InitiatePaymentResponse, error) {

	plan, err := s.plans.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	transactionID := utils.NewMerchantTransactionID()

	// The payment record goes in before the gateway is contacted, so every
	// outbound charge attempt has durable local evidence.
	payment := &db_models.Payment{
		TransactionID: transactionID,
		Amount:        plan.Pricing,
		Date:          utils.NowUnixSeconds(),
		UserID:        user.ID,
	}
	if err := s.payments.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	resp, err := s.gateway.Pay(ctx, phonepe.PayOrder{
		MerchantTransactionID: transactionID,
		Amount:                plan.Pricing,
		RedirectURL:           s.gateway.CallbackURL(userID, planID, transactionID),
	})
	if err != nil {
		// The payment row stays behind as evidence of the attempt.
		return nil, err
	}

	if err := s.payments.SaveReceipt(ctx, transactionID, resp.Raw); err != nil {
		log.Printf("payment %s: failed to save gateway receipt: %v", transactionID, err)
	}

	return &response_models.InitiatePaymentResponse{
		TransactionID: transactionID,
		Amount:        plan.Pricing,
		PaymentURL:    resp.RedirectURL(),
		Gateway:       resp.Raw,
	}, nil
}

func (s *paymentService) CheckPaymentStatus(ctx context.Context, userID, planID, merchantTransactionID string) (*response_models.PaymentStatusResponse, error) {

	plan, err := s.plans.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	payment, err := s.payments.GetByTransactionID(ctx, merchantTransactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}

	// Replayed check for an already-settled transaction: report the current
	// window and do not touch the store again.
	if payment.IsCompleted {
		resp := &response_models.PaymentStatusResponse{
			TransactionID: merchantTransactionID,
			State:         response_models.PaymentStateCompleted,
		}
		if user, err := s.users.GetUserByID(ctx, userID); err == nil && user != nil {
			resp.PaymentDate = user.PaymentDate
			resp.ValidTill = user.ValidTill
		}
		return resp, nil
	}

	status, err := s.gateway.Status(ctx, merchantTransactionID)
	if err != nil {
		return nil, err
	}

	if !status.Success {
		state := response_models.PaymentStateFailed
		if status.Code == "PAYMENT_PENDING" {
			state = response_models.PaymentStatePending
		}
		return &response_models.PaymentStatusResponse{
			TransactionID: merchantTransactionID,
			State:         state,
			Gateway:       status.Raw,
		}, nil
	}

	now := time.Now()
	validTill := utils.AddCalendarMonths(now, 1)

	if err := s.payments.Complete(ctx, repositories.SubscriptionUpdate{
		UserID:        userID,
		PlanID:        plan.ID,
		PaymentDate:   now.Unix(),
		ValidTill:     validTill.Unix(),
		TransactionID: merchantTransactionID,
	}); err != nil {
		return nil, err
	}

	if err := s.payments.SaveReceipt(ctx, merchantTransactionID, status.Raw); err != nil {
		log.Printf("payment %s: failed to save status receipt: %v", merchantTransactionID, err)
	}

	return &response_models.PaymentStatusResponse{
		TransactionID: merchantTransactionID,
		State:         response_models.PaymentStateCompleted,
		PaymentDate:   now.Unix(),
		ValidTill:     validTill.Unix(),
		Gateway:       status.Raw,
	}, nil
}
