package payment_fx

import (
	"go.uber.org/fx"

	"subpay/internal/api/controllers"
	"subpay/internal/gateway/phonepe"
	"subpay/internal/repositories"
	"subpay/internal/services"
	"subpay/pkg/config"
)

var Module = fx.Provide(
	providePhonePeClient,
	providePaymentService,
	controllers.NewPaymentController,
)

func providePhonePeClient(cfg config.Config) *phonepe.Client {
	return phonepe.NewClient(phonepe.Config{
		MerchantID:     cfg.PhonePe.MerchantID,
		MerchantUserID: cfg.PhonePe.MerchantUserID,
		MobileNumber:   cfg.PhonePe.MobileNumber,
		SaltKey:        cfg.PhonePe.SaltKey,
		SaltIndex:      cfg.PhonePe.SaltIndex,
		BaseURL:        cfg.PhonePe.BaseURL,
		AppBaseURL:     cfg.PhonePe.AppBaseURL,
	})
}

func providePaymentService(
	plans repositories.IPlanRepository,
	users repositories.IUserRepository,
	payments repositories.IPaymentRepository,
	client *phonepe.Client) services.PaymentService {

	return services.NewPaymentService(plans, users, payments, client)
}
