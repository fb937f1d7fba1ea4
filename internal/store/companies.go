package store

import (
	"context"

	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/common/validation"
	"jobmarket-client/internal/models"
)

type Companies struct {
	List         *Container[[]models.Company]
	Detail       *Container[*models.Company]
	Plans        *Container[[]models.Plan]
	Subscription *Container[*models.Subscription]

	api      CompaniesAPI
	pageSize int
}

func NewCompanies(client CompaniesAPI, pageSize int, log logger.Logger) *Companies {
	return &Companies{
		List:         NewContainer[[]models.Company]("companies", log),
		Detail:       NewContainer[*models.Company]("company_detail", log),
		Plans:        NewContainer[[]models.Plan]("plans", log),
		Subscription: NewContainer[*models.Subscription]("subscription", log),
		api:          client,
		pageSize:     pageSize,
	}
}

func (c *Companies) FetchPage(ctx context.Context, page int) (State[[]models.Company], error) {
	return c.List.Run(ctx, func(ctx context.Context) (Result[[]models.Company], error) {
		p, err := c.api.ListCompanies(ctx, listParams(page, c.pageSize))
		if err != nil {
			return Result[[]models.Company]{}, err
		}
		return pageResult(p), nil
	})
}

func (c *Companies) FetchCompany(ctx context.Context, id string) (State[*models.Company], error) {
	return c.Detail.Run(ctx, func(ctx context.Context) (Result[*models.Company], error) {
		company, err := c.api.GetCompany(ctx, id)
		if err != nil {
			return Result[*models.Company]{}, err
		}
		return Result[*models.Company]{Data: company}, nil
	})
}

func (c *Companies) FetchPlans(ctx context.Context) (State[[]models.Plan], error) {
	return c.Plans.Run(ctx, func(ctx context.Context) (Result[[]models.Plan], error) {
		plans, err := c.api.ListPlans(ctx)
		if err != nil {
			return Result[[]models.Plan]{}, err
		}
		return Result[[]models.Plan]{Data: plans}, nil
	})
}

// Subscribe buys planID for the signed-in company. On success the viewed
// company, when loaded, shows the new plan.
func (c *Companies) Subscribe(ctx context.Context, planID string) (State[*models.Subscription], error) {
	st, err := c.Subscription.Run(ctx, func(ctx context.Context) (Result[*models.Subscription], error) {
		req := models.SubscriptionRequest{PlanID: planID}
		if err := validation.Check(validation.FormSubscription, req); err != nil {
			return Result[*models.Subscription]{}, err
		}

		sub, err := c.api.Subscribe(ctx, req)
		if err != nil {
			return Result[*models.Subscription]{}, err
		}
		return Result[*models.Subscription]{Data: sub}, nil
	})
	if err != nil || st.Data == nil {
		return st, err
	}

	plan := st.Data.Plan
	c.Detail.Mutate(func(company *models.Company) *models.Company {
		if company == nil || (st.Data.CompanyID != "" && company.ID != st.Data.CompanyID) {
			return company
		}
		updated := *company
		updated.Plan = &plan
		return &updated
	})
	return st, nil
}

func (c *Companies) Reset() {
	c.List.Reset()
	c.Detail.Reset()
	c.Plans.Reset()
	c.Subscription.Reset()
}
