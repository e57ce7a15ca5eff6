package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/contractgpt/backend/config"
	"github.com/contractgpt/backend/model"
)

func billingConfig() *config.StripeConfig {
	return &config.StripeConfig{
		SecretKey:    "sk_test_placeholder",
		MonthlyPrice: 999,
		YearlyPrice:  9999,
		Currency:     "usd",
	}
}

func TestBillingClientSecretBadPlan(t *testing.T) {
	db := newTestDB(t)
	h := NewBillingHandler(billingConfig(), db)

	router := gin.New()
	router.POST("/client-secret", h.ClientSecret)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"unknown plan", map[string]string{"plan": "weekly"}},
		{"empty plan", map[string]string{"plan": ""}},
		{"missing plan", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/client-secret", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestBillingPlanAmount(t *testing.T) {
	h := NewBillingHandler(billingConfig(), nil)

	tests := []struct {
		plan     string
		expected int64
	}{
		{model.PlanMonthly, 999},
		{model.PlanYearly, 9999},
		{"weekly", -1},
		{"", -1},
	}

	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			if got := h.planAmount(tt.plan); got != tt.expected {
				t.Errorf("Expected %d for plan %q, got %d", tt.expected, tt.plan, got)
			}
		})
	}
}

func TestBillingConfirm(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	h := NewBillingHandler(billingConfig(), db)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Next()
	})
	router.POST("/confirm", h.Confirm)

	w := postJSON(t, router, "/confirm", map[string]string{"plan": "yearly"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["status"] != "active" {
		t.Errorf("Expected active status, got %s", response["status"])
	}

	var updated model.User
	if err := db.First(&updated, user.ID).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if updated.Plan != "yearly" {
		t.Errorf("Expected plan yearly on the user row, got %q", updated.Plan)
	}
}

func TestBillingConfirmBadPlan(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	h := NewBillingHandler(billingConfig(), db)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Next()
	})
	router.POST("/confirm", h.Confirm)

	w := postJSON(t, router, "/confirm", map[string]string{"plan": "lifetime"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var unchanged model.User
	if err := db.First(&unchanged, user.ID).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if unchanged.Plan != "" {
		t.Errorf("Expected plan unchanged, got %q", unchanged.Plan)
	}
}
