package dto

import (
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"
)

type SubscriptionStatusResponse struct {
	Plan      string    `json:"plan"`
	Active    bool      `json:"active"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	WorkoutPlansGenerated int `json:"workoutPlansGenerated"`
	MealPlansGenerated    int `json:"mealPlansGenerated"`

	// -1 means unlimited (PREMIUM)
	WorkoutPlansRemaining int `json:"workoutPlansRemaining"`
	MealPlansRemaining    int `json:"mealPlansRemaining"`
}

func NewSubscriptionStatusResponse(s *entity.Subscription) *SubscriptionStatusResponse {
	return &SubscriptionStatusResponse{
		Plan:                  string(s.Plan),
		Active:                s.Active,
		StartDate:             s.StartDate,
		EndDate:               s.EndDate,
		WorkoutPlansGenerated: s.WorkoutPlansGenerated,
		MealPlansGenerated:    s.MealPlansGenerated,
		WorkoutPlansRemaining: s.Remaining(entity.PlanKindWorkout),
		MealPlansRemaining:    s.Remaining(entity.PlanKindMeal),
	}
}

type UpgradeResponse struct {
	OrderId     string `json:"orderId"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
}

type MidtransWebhookRequest struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}
