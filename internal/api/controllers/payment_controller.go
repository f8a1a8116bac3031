package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"subpay/internal/models/request_models"
	"subpay/internal/services"
	"subpay/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// InitiatePayment godoc
// @Summary Start a PhonePe payment for a subscription plan
// @Description Creates the local payment record and returns the gateway's pay-page response
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.InitiatePaymentRequest true "Initiate Payment Request"
// @Success 200 {object} utils.APIResponse
// @Router /phonepe [post]
func (p *PaymentController) InitiatePayment(c *gin.Context) {

	var request request_models.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := p.paymentService.InitiatePayment(c.Request.Context(), request.UserID, request.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment initiated")
}

// CheckPaymentStatus godoc
// @Summary Reconcile a payment's outcome with the gateway
// @Description Queries PhonePe for the transaction status and, on success, extends the user's subscription window
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.PaymentStatusRequest true "Payment Status Request"
// @Success 200 {object} utils.APIResponse
// @Router /checkPaymentStatus [post]
func (p *PaymentController) CheckPaymentStatus(c *gin.Context) {

	var request request_models.PaymentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := p.paymentService.CheckPaymentStatus(
		c.Request.Context(), request.UserID, request.PlanID, request.MerchantTransactionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Gateway said "not (yet) paid": an explicit non-success response, never
	// silence, and nothing was written to the store.
	if !resp.Completed() {
		utils.RespondNotCompleted(c, resp, "Payment not completed")
		return
	}

	utils.RespondSuccess(c, resp, "Payment completed")
}
