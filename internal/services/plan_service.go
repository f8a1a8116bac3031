package services

import (
	"context"
	"encoding/json"
	"fmt"

	"subpay/internal/models/db_models"
	"subpay/internal/models/response_models"
	"subpay/internal/repositories"
	"subpay/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error)
	GetPlanByID(ctx context.Context, planID string) (response_models.SubscriptionPlan, error)
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func (p *PlanService) GetPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error) {

	plans, err := p.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	result := make([]response_models.SubscriptionPlan, 0, len(plans))
	for _, plan := range plans {
		result = append(result, toSubscriptionPlan(&plan))
	}

	return result, nil
}

func (p *PlanService) GetPlanByID(ctx context.Context, planID string) (response_models.SubscriptionPlan, error) {

	plan, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return response_models.SubscriptionPlan{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if plan == nil {
		return response_models.SubscriptionPlan{}, utils.ErrPlanNotFound
	}

	return toSubscriptionPlan(plan), nil
}

func toSubscriptionPlan(plan *db_models.Plan) response_models.SubscriptionPlan {
	var features []string
	if len(plan.Features) > 0 {
		_ = json.Unmarshal(plan.Features, &features)
	}

	return response_models.SubscriptionPlan{
		ID:          plan.ID,
		Name:        plan.Name,
		Description: plan.Description,
		Pricing:     plan.Pricing,
		Currency:    plan.Currency,
		IsActive:    plan.IsActive,
		Features:    features,
	}
}
