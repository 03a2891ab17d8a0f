package domain

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// RecommendationType distinguishes actionable items from observations
type RecommendationType string

const (
	RecOptimization RecommendationType = "OPTIMIZATION"
	RecAlert        RecommendationType = "ALERT"
	RecInsight      RecommendationType = "INSIGHT"
)

// RecommendationCategory groups recommendations by subject area
type RecommendationCategory string

const (
	CategoryFieldTable RecommendationCategory = "FIELD_TABLE"
	CategoryPrepack    RecommendationCategory = "PREPACK"
	CategoryStaff      RecommendationCategory = "STAFF"
	CategoryCost       RecommendationCategory = "COST"
	CategoryPriority   RecommendationCategory = "PRIORITY"
)

// RecommendationPriority ranks urgency for display ordering
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "HIGH"
	PriorityMedium RecommendationPriority = "MEDIUM"
	PriorityLow    RecommendationPriority = "LOW"
)

var recommendationPriorityRank = map[RecommendationPriority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// RecommendationImpact quantifies what a recommendation affects. All fields
// are optional; generators fill only what they can estimate.
type RecommendationImpact struct {
	OrdersAffected int     `json:"ordersAffected,omitempty"`
	TimeSavedHours float64 `json:"timeSavedHours,omitempty"`
	CostSavedVND   float64 `json:"costSavedVnd,omitempty"`
	GapTotal       int     `json:"gapTotal,omitempty"`
	OrdersAtRisk   int     `json:"ordersAtRisk,omitempty"`
}

// Recommendation is one operational suggestion surfaced with a plan
type Recommendation struct {
	Type     RecommendationType     `json:"type"`
	Category RecommendationCategory `json:"category"`
	Priority RecommendationPriority `json:"priority"`
	Message  string                 `json:"message"`
	Impact   *RecommendationImpact  `json:"impact,omitempty"`
	Action   string                 `json:"action,omitempty"`
}

const (
	monthlyProjectionDays = 30
	hiringLeadTimeDays    = 7
)

// monthlySavedCost prices saved daily hours at the boxme per-hour rate,
// projected over thirty days.
func monthlySavedCost(timeSavedHours float64) float64 {
	return math.Round(timeSavedHours * (StaffCostPerHour[StaffBoxme] / DefaultShiftHours) * monthlyProjectionDays)
}

// GenerateFieldTableRecommendations flags customers who should enable Field
// Table packing and customers who have it enabled but barely route to it.
func GenerateFieldTableRecommendations(customers []CustomerConfig, methodBreakdown []MethodBreakdown) []Recommendation {
	var recommendations []Recommendation

	standard := FindMethod(methodBreakdown, MethodStandard)
	fieldTable := FindMethod(methodBreakdown, MethodFieldTable)
	totalOrders := TotalOrders(methodBreakdown)

	for _, customer := range customers {
		if !customer.Operations.FieldTableEnabled {
			// Cosmetics and baby-care lines are the typical single-SKU,
			// lightweight volume that Field Table absorbs
			singleSKUShare := customer.CategoryShare("COSMETICS", "BABY")
			if singleSKUShare > 30 && standard != nil {
				potentialOrders := int(float64(standard.Orders) * singleSKUShare / 100)
				if potentialOrders > 1000 {
					currentHours := float64(potentialOrders) * DefaultProcessingMinutes / 60
					timeSaved := currentHours - currentHours*MethodEfficiency[MethodFieldTable]
					costSaved := monthlySavedCost(timeSaved)

					priority := PriorityMedium
					if costSaved > 1_000_000 {
						priority = PriorityHigh
					}

					recommendations = append(recommendations, Recommendation{
						Type:     RecOptimization,
						Category: CategoryFieldTable,
						Priority: priority,
						Message:  fmt.Sprintf("Enable Field Table for %s", customer.Name),
						Impact: &RecommendationImpact{
							OrdersAffected: potentialOrders,
							TimeSavedHours: round1(timeSaved),
							CostSavedVND:   costSaved,
						},
						Action: fmt.Sprintf("Enable Field Table in the operations config for customer %s", customer.Code),
					})
				}
			}
		}

		if customer.Operations.FieldTableEnabled && totalOrders > 0 {
			var fieldTableOrders int
			if fieldTable != nil {
				fieldTableOrders = fieldTable.Orders
			}
			fieldTablePct := float64(fieldTableOrders) / float64(totalOrders) * 100

			if fieldTablePct < 20 {
				recommendations = append(recommendations, Recommendation{
					Type:     RecInsight,
					Category: CategoryFieldTable,
					Priority: PriorityLow,
					Message:  fmt.Sprintf("Field Table underutilized for %s (%d%%)", customer.Name, int(math.Round(fieldTablePct))),
					Impact: &RecommendationImpact{
						OrdersAffected: fieldTableOrders,
					},
					Action: fmt.Sprintf("Review SKU/weight limits or expand hero SKU list for customer %s", customer.Code),
				})
			}
		}
	}

	return recommendations
}

// GeneratePrepackRecommendations flags customers with heavy-category volume
// who should enable Pre-pack, plus quota exhaustion for those who already
// have it.
func GeneratePrepackRecommendations(customers []CustomerConfig, methodBreakdown []MethodBreakdown) []Recommendation {
	var recommendations []Recommendation

	standard := FindMethod(methodBreakdown, MethodStandard)
	prepack := FindMethod(methodBreakdown, MethodPrepack)

	for _, customer := range customers {
		if !customer.Operations.PrepackEnabled {
			heavyShare := customer.CategoryShare("BABY", "FOOD")
			if heavyShare > 20 && standard != nil {
				potentialOrders := int(float64(standard.Orders) * heavyShare / 100)
				if potentialOrders > 500 {
					currentHours := float64(potentialOrders) * DefaultProcessingMinutes / 60
					timeSaved := currentHours - currentHours*MethodEfficiency[MethodPrepack]
					costSaved := monthlySavedCost(timeSaved)

					priority := PriorityMedium
					if costSaved > 500_000 {
						priority = PriorityHigh
					}

					recommendations = append(recommendations, Recommendation{
						Type:     RecOptimization,
						Category: CategoryPrepack,
						Priority: priority,
						Message:  fmt.Sprintf("Enable Pre-pack for %s", customer.Name),
						Impact: &RecommendationImpact{
							OrdersAffected: potentialOrders,
							TimeSavedHours: round1(timeSaved),
							CostSavedVND:   costSaved,
						},
						Action: fmt.Sprintf("Enable Pre-pack with a 2000/week quota for customer %s", customer.Code),
					})
				}
			}
		}

		if customer.Operations.PrepackEnabled && customer.Operations.PrepackWeeklyQuota > 0 {
			var weeklyOrders int
			if prepack != nil {
				weeklyOrders = prepack.Orders * 7
			}
			quotaUtilization := float64(weeklyOrders) / float64(customer.Operations.PrepackWeeklyQuota) * 100

			if quotaUtilization > 90 {
				recommendations = append(recommendations, Recommendation{
					Type:     RecAlert,
					Category: CategoryPrepack,
					Priority: PriorityMedium,
					Message:  fmt.Sprintf("Pre-pack quota almost full for %s (%d%%)", customer.Name, int(math.Round(quotaUtilization))),
					Impact: &RecommendationImpact{
						OrdersAffected: weeklyOrders - customer.Operations.PrepackWeeklyQuota,
					},
					Action: fmt.Sprintf("Increase weekly Pre-pack quota to %d", int(math.Ceil(float64(customer.Operations.PrepackWeeklyQuota)*1.5))),
				})
			}
		}
	}

	return recommendations
}

// GenerateStaffAlerts escalates staffing gaps into hiring alerts. now is
// injected so the days-until figure is deterministic under test.
func GenerateStaffAlerts(staffBreakdown StaffBreakdown, forecastDate string, now time.Time) []Recommendation {
	var recommendations []Recommendation

	eventDate, dateErr := time.Parse("2006-01-02", forecastDate)
	daysUntil := 0
	if dateErr == nil {
		daysUntil = int(math.Ceil(eventDate.Sub(now).Hours() / 24))
	}

	ordersAtRisk := staffBreakdown.TotalGap * DefaultShiftHours * DefaultOrdersPerHour

	if staffBreakdown.TotalGap >= GapCriticalThreshold {
		recommendations = append(recommendations, Recommendation{
			Type:     RecAlert,
			Category: CategoryStaff,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("Critical staff shortage on %s (%d days away)", forecastDate, daysUntil),
			Impact: &RecommendationImpact{
				GapTotal:     staffBreakdown.TotalGap,
				OrdersAtRisk: ordersAtRisk,
			},
			Action: fmt.Sprintf("Hire %d contractors immediately. Lead time: %d days minimum.", staffBreakdown.ContractorNeeded, hiringLeadTimeDays),
		})
	} else if staffBreakdown.TotalGap >= GapWarningThreshold {
		hiringDate := forecastDate
		if dateErr == nil {
			hiringDate = eventDate.AddDate(0, 0, -hiringLeadTimeDays).Format("2006-01-02")
		}
		recommendations = append(recommendations, Recommendation{
			Type:     RecAlert,
			Category: CategoryStaff,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Staff shortage warning for %s", forecastDate),
			Impact: &RecommendationImpact{
				GapTotal:     staffBreakdown.TotalGap,
				OrdersAtRisk: ordersAtRisk,
			},
			Action: fmt.Sprintf("Plan to hire %d contractors. Recommended hiring date: %s", staffBreakdown.ContractorNeeded, hiringDate),
		})
	}

	if staffBreakdown.Boxme.Gap > 20 {
		recommendations = append(recommendations, Recommendation{
			Type:     RecInsight,
			Category: CategoryStaff,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Boxme staff shortage: %d needed", staffBreakdown.Boxme.Gap),
			Impact: &RecommendationImpact{
				GapTotal: staffBreakdown.Boxme.Gap,
			},
			Action: "Consider hiring full-time Boxme staff or training seasonal workers",
		})
	}

	contractorCost := float64(staffBreakdown.ContractorNeeded) * (ContractorBonusPerPerson + ContractorMealPerPerson)
	if contractorCost > 5_000_000 {
		recommendations = append(recommendations, Recommendation{
			Type:     RecInsight,
			Category: CategoryCost,
			Priority: PriorityLow,
			Message:  fmt.Sprintf("High contractor costs expected: %dM VND", int(math.Round(contractorCost/1_000_000))),
			Impact: &RecommendationImpact{
				CostSavedVND: contractorCost,
			},
			Action: "Consider negotiating bulk contractor rates or hiring permanent staff",
		})
	}

	return recommendations
}

// GenerateCostRecommendations surfaces the savings potential and flags
// Standard-heavy method mixes.
func GenerateCostRecommendations(costAnalysis CostAnalysis, methodBreakdown []MethodBreakdown) []Recommendation {
	var recommendations []Recommendation

	if costAnalysis.SavingsPotential.Total > 1_000_000 {
		dailySavings := costAnalysis.SavingsPotential.Total
		recommendations = append(recommendations, Recommendation{
			Type:     RecOptimization,
			Category: CategoryCost,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("Potential cost savings: %.1fM VND/day", math.Round(dailySavings/1_000_000*10)/10),
			Impact: &RecommendationImpact{
				CostSavedVND: dailySavings * monthlyProjectionDays,
			},
			Action: "Enable Field Table and Pre-pack for eligible customers to achieve these savings",
		})
	}

	standard := FindMethod(methodBreakdown, MethodStandard)
	totalOrders := TotalOrders(methodBreakdown)
	if standard != nil && totalOrders > 0 {
		standardShare := float64(standard.Orders) / float64(totalOrders)
		if standardShare > 0.7 {
			recommendations = append(recommendations, Recommendation{
				Type:     RecInsight,
				Category: CategoryCost,
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("%d%% orders use Standard packing", int(math.Round(standardShare*100))),
				Impact: &RecommendationImpact{
					OrdersAffected: standard.Orders,
				},
				Action: "Review customer configurations to enable more efficient packing methods",
			})
		}
	}

	return recommendations
}

// GeneratePriorityRecommendations flags heavy instant-delivery volume and
// large delayable shares.
func GeneratePriorityRecommendations(priorityBreakdown []PriorityBucket) []Recommendation {
	var recommendations []Recommendation

	var totalOrders, delayableOrders int
	var p1 *PriorityBucket
	for i := range priorityBreakdown {
		bucket := &priorityBreakdown[i]
		totalOrders += bucket.Orders
		if bucket.Priority == 1 {
			p1 = bucket
		}
		if bucket.Priority >= 5 {
			delayableOrders += bucket.Orders
		}
	}

	if p1 != nil && p1.Orders > 5000 {
		recommendations = append(recommendations, Recommendation{
			Type:     RecAlert,
			Category: CategoryPriority,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("High P1 (Instant) volume: %d orders", p1.Orders),
			Impact: &RecommendationImpact{
				OrdersAffected: p1.Orders,
			},
			Action: "Allocate best staff (Boxme + Veterans) to P1 orders. Process before 8am cutoff.",
		})
	}

	if delayableOrders > 0 && totalOrders > 0 {
		delayablePct := float64(delayableOrders) / float64(totalOrders) * 100
		if delayablePct > 15 {
			recommendations = append(recommendations, Recommendation{
				Type:     RecInsight,
				Category: CategoryPriority,
				Priority: PriorityLow,
				Message:  fmt.Sprintf("%d%% orders are delayable (P5-P6)", int(math.Round(delayablePct))),
				Impact: &RecommendationImpact{
					OrdersAffected: delayableOrders,
				},
				Action: "Consider delaying non-urgent orders if capacity constrained",
			})
		}
	}

	return recommendations
}

// GenerateAllRecommendations runs every generator and returns the combined
// list ordered HIGH, MEDIUM, LOW. The sort is stable so ties keep generator
// order.
func GenerateAllRecommendations(
	customers []CustomerConfig,
	methodBreakdown []MethodBreakdown,
	staffBreakdown StaffBreakdown,
	costAnalysis CostAnalysis,
	forecastDate string,
	priorityBreakdown []PriorityBucket,
	now time.Time,
) []Recommendation {
	var recommendations []Recommendation

	recommendations = append(recommendations, GenerateFieldTableRecommendations(customers, methodBreakdown)...)
	recommendations = append(recommendations, GeneratePrepackRecommendations(customers, methodBreakdown)...)
	recommendations = append(recommendations, GenerateStaffAlerts(staffBreakdown, forecastDate, now)...)
	recommendations = append(recommendations, GenerateCostRecommendations(costAnalysis, methodBreakdown)...)
	if priorityBreakdown != nil {
		recommendations = append(recommendations, GeneratePriorityRecommendations(priorityBreakdown)...)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendationPriorityRank[recommendations[i].Priority] < recommendationPriorityRank[recommendations[j].Priority]
	})

	return recommendations
}
