package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"subpay/internal/models/db_models"
	"subpay/pkg/utils"
)

// SubscriptionUpdate is the pair of writes applied when a payment is
// confirmed: the user's new subscription window plus the completion flag on
// the payment record.
type SubscriptionUpdate struct {
	UserID        string
	PlanID        string
	PaymentDate   int64
	ValidTill     int64
	TransactionID string
}

type IPaymentRepository interface {
	CreatePayment(ctx context.Context, payment *db_models.Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*db_models.Payment, error)
	SaveReceipt(ctx context.Context, transactionID string, raw []byte) error
	Complete(ctx context.Context, update SubscriptionUpdate) error
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) IPaymentRepository {
	return &PaymentRepository{db: db}
}

func (p PaymentRepository) CreatePayment(ctx context.Context, payment *db_models.Payment) error {

	result := p.db.WithContext(ctx).Create(payment)
	if result.Error != nil {
		return fmt.Errorf("%w: create payment %s: %v", utils.ErrStoreWrite, payment.TransactionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: create payment %s acknowledged zero rows", utils.ErrStoreWrite, payment.TransactionID)
	}
	return nil
}

func (p PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*db_models.Payment, error) {

	var payment db_models.Payment
	err := p.db.WithContext(ctx).First(&payment, "transaction_id = ?", transactionID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

// SaveReceipt snapshots a raw gateway response onto the payment record.
// Best-effort from the caller's perspective; failures are still returned.
func (p PaymentRepository) SaveReceipt(ctx context.Context, transactionID string, raw []byte) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("transaction_id = ?", transactionID).
		Update("receipt", datatypes.JSON(raw)).Error
}

// Complete applies the user subscription update and the payment completion
// flag in one database transaction, so a confirmed payment never leaves the
// two records disagreeing.
func (p PaymentRepository) Complete(ctx context.Context, update SubscriptionUpdate) error {

	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		userResult := tx.Model(&db_models.User{}).
			Where("id = ?", update.UserID).
			Updates(map[string]interface{}{
				"plan_id":      update.PlanID,
				"payment_date": update.PaymentDate,
				"valid_till":   update.ValidTill,
			})
		if userResult.Error != nil {
			return fmt.Errorf("%w: update user %s: %v", utils.ErrStoreWrite, update.UserID, userResult.Error)
		}
		if userResult.RowsAffected == 0 {
			return fmt.Errorf("%w: user %s not updated", utils.ErrStoreWrite, update.UserID)
		}

		paymentResult := tx.Model(&db_models.Payment{}).
			Where("transaction_id = ?", update.TransactionID).
			Update("is_completed", true)
		if paymentResult.Error != nil {
			return fmt.Errorf("%w: complete payment %s: %v", utils.ErrStoreWrite, update.TransactionID, paymentResult.Error)
		}
		if paymentResult.RowsAffected == 0 {
			return fmt.Errorf("%w: payment %s not updated", utils.ErrStoreWrite, update.TransactionID)
		}

		return nil
	})
}
