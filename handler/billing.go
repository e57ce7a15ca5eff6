package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"gorm.io/gorm"

	"github.com/contractgpt/backend/config"
	"github.com/contractgpt/backend/middleware"
	"github.com/contractgpt/backend/model"
	"github.com/contractgpt/backend/pkg/logger"
)

type BillingHandler struct {
	config *config.StripeConfig
	db     *gorm.DB
}

func NewBillingHandler(cfg *config.StripeConfig, db *gorm.DB) *BillingHandler {
	stripe.Key = cfg.SecretKey
	return &BillingHandler{config: cfg, db: db}
}

type PlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// planAmount returns the charge for a plan in cents, or -1 for unknown plans
func (h *BillingHandler) planAmount(plan string) int64 {
	switch plan {
	case model.PlanMonthly:
		return h.config.MonthlyPrice
	case model.PlanYearly:
		return h.config.YearlyPrice
	default:
		return -1
	}
}

// ClientSecret creates a payment intent for the selected plan and returns
// its client secret for the hosted payment form
func (h *BillingHandler) ClientSecret(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a plan"})
		return
	}

	amount := h.planAmount(req.Plan)
	if amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(h.config.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("plan", req.Plan)
	params.AddMetadata("user_id", strconv.FormatUint(uint64(middleware.GetUserID(c)), 10))

	pi, err := paymentintent.New(params)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to create payment intent", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": pi.ClientSecret})
}

// Confirm marks the user's plan active after the hosted checkout completes
func (h *BillingHandler) Confirm(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a plan"})
		return
	}

	if h.planAmount(req.Plan) < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		return
	}

	if err := h.db.Model(&model.User{}).Where("id = ?", userID).Update("plan", req.Plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": req.Plan, "status": "active"})
}
