// internal/models/company.go
package models

import "time"

type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sector      string `json:"sector,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Plan        *Plan  `json:"plan,omitempty"`
}

// Plan is a subscription tier a company can buy.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency,omitempty"`
	Period       string   `json:"period"` // "monthly" or "yearly"
	JobPostQuota int      `json:"jobPostQuota"`
	Features     []string `json:"features,omitempty"`
}

// SubscriptionRequest is the body of POST /companies/subscription.
type SubscriptionRequest struct {
	PlanID string `json:"planId"`
}

// Subscription is the server's answer to a subscription request.
type Subscription struct {
	CompanyID string    `json:"companyId"`
	Plan      Plan      `json:"plan"`
	Status    string    `json:"status"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt,omitempty"`
}
