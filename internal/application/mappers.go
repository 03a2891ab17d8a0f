package application

import (
	"github.com/wms-platform/workforce-service/internal/domain"
)

// ToPlanDTO converts a domain WorkforcePlan to a PlanDTO
func ToPlanDTO(plan *domain.WorkforcePlan) *PlanDTO {
	if plan == nil {
		return nil
	}

	return &PlanDTO{
		PlanID:              plan.PlanID,
		ForecastDate:        plan.ForecastDate,
		Summary:             toPlanSummaryDTO(plan.Summary),
		BreakdownByMethod:   toMethodBreakdownDTOs(plan.BreakdownByMethod),
		BreakdownByCustomer: toCustomerBreakdownDTOs(plan.BreakdownByCustomer),
		BreakdownByPriority: toPriorityBucketDTOs(plan.BreakdownByPriority),
		StaffAllocation:     toStaffBreakdownDTO(plan.StaffAllocation),
		WorkHours:           toWorkHoursDTO(plan.WorkHours),
		CostAnalysis:        toCostAnalysisDTO(plan.CostAnalysis),
		Recommendations:     toRecommendationDTOs(plan.Recommendations),
		CreatedAt:           plan.CreatedAt,
	}
}

// ToPlanDTOs converts a slice of plans
func ToPlanDTOs(plans []*domain.WorkforcePlan) []PlanDTO {
	dtos := make([]PlanDTO, 0, len(plans))
	for _, plan := range plans {
		if dto := ToPlanDTO(plan); dto != nil {
			dtos = append(dtos, *dto)
		}
	}
	return dtos
}

func toPlanSummaryDTO(summary domain.PlanSummary) PlanSummaryDTO {
	return PlanSummaryDTO{
		TotalOrders:      summary.TotalOrders,
		TotalHours:       summary.TotalHours,
		TotalStaff:       summary.TotalStaff,
		TotalCost:        summary.TotalCost,
		AlertLevel:       string(summary.AlertLevel),
		ContractorNeeded: summary.ContractorNeeded,
	}
}

func toMethodBreakdownDTOs(breakdown []domain.MethodBreakdown) []MethodBreakdownDTO {
	dtos := make([]MethodBreakdownDTO, 0, len(breakdown))
	for _, method := range breakdown {
		dtos = append(dtos, MethodBreakdownDTO{
			Method:     string(method.Method),
			Orders:     method.Orders,
			Hours:      method.Hours,
			Staff:      method.Staff,
			Cost:       method.Cost,
			Percentage: method.Percentage,
		})
	}
	return dtos
}

func toCustomerBreakdownDTOs(breakdown []domain.CustomerBreakdown) []CustomerBreakdownDTO {
	if len(breakdown) == 0 {
		return nil
	}
	dtos := make([]CustomerBreakdownDTO, 0, len(breakdown))
	for _, customer := range breakdown {
		dtos = append(dtos, CustomerBreakdownDTO{
			CustomerID:   customer.CustomerID,
			CustomerName: customer.CustomerName,
			Orders:       customer.Orders,
			Methods: CustomerMethodSplitDTO{
				FieldTable: customer.Methods.FieldTable,
				Prepack:    customer.Methods.Prepack,
				Standard:   customer.Methods.Standard,
			},
			Hours: customer.Hours,
			Staff: customer.Staff,
			Cost:  customer.Cost,
		})
	}
	return dtos
}

func toPriorityBucketDTOs(buckets []domain.PriorityBucket) []PriorityBucketDTO {
	if len(buckets) == 0 {
		return nil
	}
	dtos := make([]PriorityBucketDTO, 0, len(buckets))
	for _, bucket := range buckets {
		dtos = append(dtos, PriorityBucketDTO{
			Priority:    int(bucket.Priority),
			Name:        bucket.Name,
			Description: bucket.Description,
			CutoffTime:  bucket.CutoffTime,
			Orders:      bucket.Orders,
			Hours:       bucket.Hours,
			StaffNeeded: bucket.StaffNeeded,
			StaffAllocated: TierAllocationDTO{
				Boxme:    bucket.StaffAllocated.Boxme,
				Seasonal: bucket.StaffAllocated.Seasonal,
				Veteran:  bucket.StaffAllocated.Veteran,
			},
		})
	}
	return dtos
}

func toStaffAllocationDTO(allocation domain.StaffAllocation) StaffAllocationDTO {
	return StaffAllocationDTO{
		Needed:    allocation.Needed,
		Available: allocation.Available,
		Gap:       allocation.Gap,
	}
}

func toStaffBreakdownDTO(breakdown domain.StaffBreakdown) StaffBreakdownDTO {
	return StaffBreakdownDTO{
		Boxme:            toStaffAllocationDTO(breakdown.Boxme),
		Seasonal:         toStaffAllocationDTO(breakdown.Seasonal),
		Veteran:          toStaffAllocationDTO(breakdown.Veteran),
		TotalNeeded:      breakdown.TotalNeeded,
		TotalAvailable:   breakdown.TotalAvailable,
		TotalGap:         breakdown.TotalGap,
		ContractorNeeded: breakdown.ContractorNeeded,
	}
}

func toWorkHoursDTO(hours domain.WorkHoursBreakdown) WorkHoursDTO {
	return WorkHoursDTO{
		Pick:   hours.Pick,
		Pack:   hours.Pack,
		Moving: hours.Moving,
		Return: hours.Return,
		Total:  hours.Total,
	}
}

func toCostAnalysisDTO(analysis domain.CostAnalysis) CostAnalysisDTO {
	byMethod := make(map[string]MethodCostDTO, len(analysis.ByMethod))
	for method, cost := range analysis.ByMethod {
		byMethod[string(method)] = MethodCostDTO{
			Hours: cost.Hours,
			Staff: cost.Staff,
			Cost:  cost.Cost,
		}
	}

	byStaffType := make(map[string]StaffTypeCostDTO, len(analysis.ByStaffType))
	for staffType, cost := range analysis.ByStaffType {
		byStaffType[string(staffType)] = StaffTypeCostDTO{
			Count:       cost.Count,
			CostPerHour: cost.CostPerHour,
			Total:       cost.Total,
		}
	}

	return CostAnalysisDTO{
		ByMethod:    byMethod,
		ByStaffType: byStaffType,
		TotalCost:   analysis.TotalCost,
		SavingsPotential: SavingsPotentialDTO{
			FieldTableBoost: analysis.SavingsPotential.FieldTableBoost,
			PrepackBoost:    analysis.SavingsPotential.PrepackBoost,
			Total:           analysis.SavingsPotential.Total,
		},
	}
}

func toRecommendationDTOs(recommendations []domain.Recommendation) []RecommendationDTO {
	if len(recommendations) == 0 {
		return nil
	}
	dtos := make([]RecommendationDTO, 0, len(recommendations))
	for _, rec := range recommendations {
		dto := RecommendationDTO{
			Type:     string(rec.Type),
			Category: string(rec.Category),
			Priority: string(rec.Priority),
			Message:  rec.Message,
			Action:   rec.Action,
		}
		if rec.Impact != nil {
			dto.Impact = &RecommendationImpactDTO{
				OrdersAffected: rec.Impact.OrdersAffected,
				TimeSavedHours: rec.Impact.TimeSavedHours,
				CostSavedVND:   rec.Impact.CostSavedVND,
				GapTotal:       rec.Impact.GapTotal,
				OrdersAtRisk:   rec.Impact.OrdersAtRisk,
			}
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

// ToLegacyPlanDTO converts a domain LegacyPlan to a LegacyPlanDTO
func ToLegacyPlanDTO(plan domain.LegacyPlan, forecastDate string) *LegacyPlanDTO {
	return &LegacyPlanDTO{
		ForecastDate: forecastDate,
		TotalOrders:  plan.TotalOrders,
		WorkHours:    toWorkHoursDTO(plan.WorkHours),
		StaffNeeded: LegacyStaffNeededDTO{
			Boxme:    plan.StaffNeeded.Boxme,
			Veteran:  plan.StaffNeeded.Veteran,
			Seasonal: plan.StaffNeeded.Seasonal,
			Total:    plan.StaffNeeded.Total,
		},
		Availability: AvailabilityDTO{
			Boxme:    plan.Availability.Boxme,
			Seasonal: plan.Availability.Seasonal,
			Veteran:  plan.Availability.Veteran,
		},
		GapTotal:         plan.GapTotal,
		ContractorNeeded: plan.ContractorNeeded,
		Costs: LegacyCostsDTO{
			Regular:         plan.Costs.Regular,
			ContractorBonus: plan.Costs.ContractorBonus,
			Meals:           plan.Costs.Meals,
			Total:           plan.Costs.Total,
		},
		AlertLevel: string(plan.AlertLevel),
	}
}

// ToCustomerDTO converts a domain CustomerConfig to a CustomerDTO
func ToCustomerDTO(customer *domain.CustomerConfig) *CustomerDTO {
	if customer == nil {
		return nil
	}

	mix := make([]ProductMixEntryDTO, 0, len(customer.ProductMix))
	for _, entry := range customer.ProductMix {
		mix = append(mix, ProductMixEntryDTO{
			CategoryCode:         entry.CategoryCode,
			CategoryName:         entry.CategoryName,
			Percentage:           entry.Percentage,
			AvgProcessingMinutes: entry.AvgProcessingMinutes,
		})
	}

	return &CustomerDTO{
		CustomerID: customer.CustomerID,
		Code:       customer.Code,
		Name:       customer.Name,
		Tier:       string(customer.Tier),
		Operations: OperationsConfigDTO{
			FieldTableEnabled:   customer.Operations.FieldTableEnabled,
			FieldTableMaxSKU:    customer.Operations.FieldTableMaxSKU,
			FieldTableMaxItems:  customer.Operations.FieldTableMaxItems,
			FieldTableMaxWeight: customer.Operations.FieldTableMaxWeight,
			FieldTableHeroSKUs:  customer.Operations.FieldTableHeroSKUs,
			PrepackEnabled:      customer.Operations.PrepackEnabled,
			PrepackCategories:   customer.Operations.PrepackCategories,
			PrepackMinWeight:    customer.Operations.PrepackMinWeight,
			PrepackWeeklyQuota:  customer.Operations.PrepackWeeklyQuota,
			RequiresCamera:      customer.Operations.RequiresCamera,
			QualityCheckLevel:   customer.Operations.QualityCheckLevel,
		},
		ProductMix: mix,
		Active:     customer.Active,
		UpdatedAt:  customer.UpdatedAt,
	}
}

// ToCustomerDTOs converts a slice of customer configs
func ToCustomerDTOs(customers []domain.CustomerConfig) []CustomerDTO {
	dtos := make([]CustomerDTO, 0, len(customers))
	for i := range customers {
		if dto := ToCustomerDTO(&customers[i]); dto != nil {
			dtos = append(dtos, *dto)
		}
	}
	return dtos
}
