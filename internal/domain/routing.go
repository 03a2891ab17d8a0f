package domain

import "fmt"

// OrderRoutingInput describes one slice of forecast orders to be routed
type OrderRoutingInput struct {
	OrderCount   int
	CustomerID   string
	CategoryCode string
	SKUCount     int
	ItemCount    int
	WeightKG     float64
	IsHeroSKU    bool
}

// RoutingDecision is the outcome of routing one order slice
type RoutingDecision struct {
	Method              PackingMethod `json:"method"`
	Orders              int           `json:"orders"`
	Reason              string        `json:"reason"`
	Eligible            bool          `json:"eligible"`
	TimeSavedPercentage int           `json:"timeSavedPercentage"`
}

// MethodBreakdown aggregates routed volume per packing method
type MethodBreakdown struct {
	Method     PackingMethod `json:"method"`
	Orders     int           `json:"orders"`
	Hours      float64       `json:"hours"`
	Staff      int           `json:"staff"`
	Cost       float64       `json:"cost"`
	Percentage float64       `json:"percentage"`
}

// RouteOrders decides the packing method for an order slice given the
// customer's operational rules. Field Table is checked first because it is
// the fastest method; Standard is the fallback and never fails.
func RouteOrders(input OrderRoutingInput, customer CustomerConfig) RoutingDecision {
	ops := customer.Operations

	skuCount := input.SKUCount
	if skuCount == 0 {
		skuCount = 1
	}
	itemCount := input.ItemCount
	if itemCount == 0 {
		itemCount = 1
	}
	weight := input.WeightKG
	if weight == 0 {
		weight = DefaultWeightKG
	}

	if ops.FieldTableEnabled {
		eligible := skuCount <= ops.FieldTableMaxSKU &&
			itemCount <= ops.FieldTableMaxItems &&
			weight <= ops.FieldTableMaxWeight &&
			(len(ops.FieldTableHeroSKUs) == 0 || input.IsHeroSKU)

		if eligible {
			return RoutingDecision{
				Method:              MethodFieldTable,
				Orders:              input.OrderCount,
				Reason:              "Eligible for Field Table: single SKU, lightweight, simple",
				Eligible:            true,
				TimeSavedPercentage: 70,
			}
		}
	}

	if ops.PrepackEnabled && input.CategoryCode != "" {
		eligible := containsString(ops.PrepackCategories, input.CategoryCode) &&
			weight >= ops.PrepackMinWeight

		if eligible {
			return RoutingDecision{
				Method:              MethodPrepack,
				Orders:              input.OrderCount,
				Reason:              fmt.Sprintf("Eligible for Pre-pack: %s category, heavy item", input.CategoryCode),
				Eligible:            true,
				TimeSavedPercentage: 50,
			}
		}
	}

	return RoutingDecision{
		Method:              MethodStandard,
		Orders:              input.OrderCount,
		Reason:              "Standard processing required",
		Eligible:            true,
		TimeSavedPercentage: 0,
	}
}

// DistributionStrategy decides how many forecast orders each customer
// receives. The default equal split is a known simplification; a
// volume-weighted strategy can be swapped in without touching routing or
// costing.
type DistributionStrategy interface {
	Distribute(totalOrders int, customers []CustomerConfig) []int
}

// EqualDistribution assigns floor(total/len) orders to every customer
type EqualDistribution struct{}

// Distribute implements DistributionStrategy
func (EqualDistribution) Distribute(totalOrders int, customers []CustomerConfig) []int {
	counts := make([]int, len(customers))
	if len(customers) == 0 {
		return counts
	}
	perCustomer := totalOrders / len(customers)
	for i := range counts {
		counts[i] = perCustomer
	}
	return counts
}

// Router routes a day's forecast orders across packing methods
type Router struct {
	distribution DistributionStrategy
}

// NewRouter creates a Router with the default equal distribution
func NewRouter() *Router {
	return &Router{distribution: EqualDistribution{}}
}

// NewRouterWithDistribution creates a Router with a custom distribution
func NewRouterWithDistribution(strategy DistributionStrategy) *Router {
	return &Router{distribution: strategy}
}

// routingOrder fixes the breakdown ordering; map iteration is not stable
var routingOrder = []PackingMethod{MethodFieldTable, MethodPrepack, MethodStandard}

// RouteAllOrders distributes totalOrders across customers and their product
// mixes and aggregates the routed volume per method. With no customers at
// all, everything falls back to Standard processing at default productivity
// rather than failing the calculation. Floor truncation at each split step
// means routed orders may sum to slightly less than totalOrders.
func (r *Router) RouteAllOrders(totalOrders int, customers []CustomerConfig) []MethodBreakdown {
	type methodTotal struct {
		orders int
		hours  float64
	}
	totals := map[PackingMethod]*methodTotal{
		MethodFieldTable: {},
		MethodPrepack:    {},
		MethodStandard:   {},
	}

	if len(customers) == 0 {
		totals[MethodStandard].orders = totalOrders
		totals[MethodStandard].hours = CalculateWorkHours(totalOrders, DefaultProcessingMinutes, MethodEfficiency[MethodStandard])
	} else {
		counts := r.distribution.Distribute(totalOrders, customers)

		for i, customer := range customers {
			customerOrders := counts[i]

			mix := customer.ProductMix
			if len(mix) == 0 {
				mix = []ProductMixEntry{{
					CategoryCode:         "GENERAL",
					CategoryName:         "General merchandise",
					Percentage:           100,
					AvgProcessingMinutes: DefaultProcessingMinutes,
				}}
			}

			for _, product := range mix {
				productOrders := int(float64(customerOrders) * product.Percentage / 100)

				decision := RouteOrders(OrderRoutingInput{
					OrderCount:   productOrders,
					CustomerID:   customer.CustomerID,
					CategoryCode: product.CategoryCode,
					SKUCount:     1,
					ItemCount:    1,
					WeightKG:     DefaultWeightKG,
				}, customer)

				hours := CalculateWorkHours(productOrders, product.AvgProcessingMinutes, MethodEfficiency[decision.Method])

				totals[decision.Method].orders += productOrders
				totals[decision.Method].hours += hours
			}
		}
	}

	breakdown := make([]MethodBreakdown, 0, len(routingOrder))
	for _, method := range routingOrder {
		data := totals[method]
		if data.orders == 0 {
			continue
		}
		breakdown = append(breakdown, MethodBreakdown{
			Method: method,
			Orders: data.orders,
			Hours:  round2(data.hours),
			Staff:  CalculateStaffNeeded(data.hours, DefaultShiftHours),
			// Cost is filled by the cost analysis stage
		})
	}

	if totalOrders > 0 {
		for i := range breakdown {
			breakdown[i].Percentage = round1(float64(breakdown[i].Orders) / float64(totalOrders) * 100)
		}
	}

	return breakdown
}

// FindMethod returns the breakdown entry for a method, or nil
func FindMethod(breakdown []MethodBreakdown, method PackingMethod) *MethodBreakdown {
	for i := range breakdown {
		if breakdown[i].Method == method {
			return &breakdown[i]
		}
	}
	return nil
}

// TotalOrders sums the routed orders across all methods
func TotalOrders(breakdown []MethodBreakdown) int {
	var total int
	for _, m := range breakdown {
		total += m.Orders
	}
	return total
}

// TotalHours sums the routed hours across all methods
func TotalHours(breakdown []MethodBreakdown) float64 {
	var total float64
	for _, m := range breakdown {
		total += m.Hours
	}
	return total
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
