package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldTableCustomer() CustomerConfig {
	return CustomerConfig{
		CustomerID: "CUST-001",
		Code:       "ACME",
		Name:       "Acme Cosmetics",
		Tier:       TierPremium,
		Operations: OperationsConfig{
			FieldTableEnabled:   true,
			FieldTableMaxSKU:    1,
			FieldTableMaxItems:  5,
			FieldTableMaxWeight: 1.0,
			FieldTableHeroSKUs:  []string{},
		},
		Active: true,
	}
}

// TestRouteOrders tests packing-method selection precedence
func TestRouteOrders(t *testing.T) {
	tests := []struct {
		name           string
		input          OrderRoutingInput
		customer       CustomerConfig
		expectedMethod PackingMethod
		expectedSaved  int
	}{
		{
			name: "Eligible single-SKU lightweight order uses Field Table",
			input: OrderRoutingInput{
				OrderCount: 100,
				SKUCount:   1,
				ItemCount:  2,
				WeightKG:   0.8,
			},
			customer:       fieldTableCustomer(),
			expectedMethod: MethodFieldTable,
			expectedSaved:  70,
		},
		{
			name: "Too many SKUs falls through to Standard",
			input: OrderRoutingInput{
				OrderCount: 50,
				SKUCount:   3,
				ItemCount:  3,
				WeightKG:   0.5,
			},
			customer:       fieldTableCustomer(),
			expectedMethod: MethodStandard,
			expectedSaved:  0,
		},
		{
			name: "Hero SKU list restricts Field Table to hero SKUs",
			input: OrderRoutingInput{
				OrderCount: 50,
				SKUCount:   1,
				ItemCount:  1,
				WeightKG:   0.5,
				IsHeroSKU:  false,
			},
			customer: CustomerConfig{
				Operations: OperationsConfig{
					FieldTableEnabled:   true,
					FieldTableMaxSKU:    1,
					FieldTableMaxItems:  5,
					FieldTableMaxWeight: 1.0,
					FieldTableHeroSKUs:  []string{"SKU-HERO-1"},
				},
			},
			expectedMethod: MethodStandard,
			expectedSaved:  0,
		},
		{
			name: "Heavy item in prepack category uses Pre-pack",
			input: OrderRoutingInput{
				OrderCount:   200,
				SKUCount:     2,
				ItemCount:    2,
				WeightKG:     3.5,
				CategoryCode: "FOOD",
			},
			customer: CustomerConfig{
				Operations: OperationsConfig{
					PrepackEnabled:    true,
					PrepackCategories: []string{"FOOD", "BABY"},
					PrepackMinWeight:  2.0,
				},
			},
			expectedMethod: MethodPrepack,
			expectedSaved:  50,
		},
		{
			name: "Prepack category without weight uses Standard",
			input: OrderRoutingInput{
				OrderCount:   200,
				SKUCount:     2,
				WeightKG:     1.0,
				CategoryCode: "FOOD",
			},
			customer: CustomerConfig{
				Operations: OperationsConfig{
					PrepackEnabled:    true,
					PrepackCategories: []string{"FOOD"},
					PrepackMinWeight:  2.0,
				},
			},
			expectedMethod: MethodStandard,
			expectedSaved:  0,
		},
		{
			name: "Zero-value dimensions default to a simple lightweight order",
			input: OrderRoutingInput{
				OrderCount: 10,
			},
			customer:       fieldTableCustomer(),
			expectedMethod: MethodFieldTable,
			expectedSaved:  70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := RouteOrders(tt.input, tt.customer)

			assert.Equal(t, tt.expectedMethod, decision.Method)
			assert.Equal(t, tt.input.OrderCount, decision.Orders)
			assert.Equal(t, tt.expectedSaved, decision.TimeSavedPercentage)
			assert.True(t, decision.Eligible)
			assert.NotEmpty(t, decision.Reason)
		})
	}
}

// TestRouteAllOrdersNoCustomers tests the Standard fallback for an empty customer set
func TestRouteAllOrdersNoCustomers(t *testing.T) {
	router := NewRouter()

	breakdown := router.RouteAllOrders(1000, nil)

	require.Len(t, breakdown, 1)
	assert.Equal(t, MethodStandard, breakdown[0].Method)
	assert.Equal(t, 1000, breakdown[0].Orders)
	assert.InDelta(t, 33.33, breakdown[0].Hours, 0.01)
	assert.Equal(t, 5, breakdown[0].Staff)
	assert.Equal(t, 100.0, breakdown[0].Percentage)
}

// TestRouteAllOrdersByProductMix tests routing driven by the customer's product mix
func TestRouteAllOrdersByProductMix(t *testing.T) {
	router := NewRouter()
	customer := CustomerConfig{
		CustomerID: "CUST-010",
		Code:       "FRESH",
		Name:       "Fresh Foods",
		Operations: OperationsConfig{
			PrepackEnabled:    true,
			PrepackCategories: []string{"FOOD"},
			PrepackMinWeight:  0.5,
		},
		ProductMix: []ProductMixEntry{
			{CategoryCode: "COSMETICS", Percentage: 60, AvgProcessingMinutes: 1.5},
			{CategoryCode: "FOOD", Percentage: 40, AvgProcessingMinutes: 3.0},
		},
	}

	breakdown := router.RouteAllOrders(1000, []CustomerConfig{customer})

	require.Len(t, breakdown, 2)

	prepack := FindMethod(breakdown, MethodPrepack)
	require.NotNil(t, prepack)
	assert.Equal(t, 400, prepack.Orders)
	assert.InDelta(t, 10.0, prepack.Hours, 0.01)
	assert.Equal(t, 40.0, prepack.Percentage)

	standard := FindMethod(breakdown, MethodStandard)
	require.NotNil(t, standard)
	assert.Equal(t, 600, standard.Orders)
	assert.InDelta(t, 15.0, standard.Hours, 0.01)
	assert.Equal(t, 60.0, standard.Percentage)

	assert.Nil(t, FindMethod(breakdown, MethodFieldTable))
}

// TestRouteAllOrdersEmptyMixFallback tests the synthetic general mix for customers without one
func TestRouteAllOrdersEmptyMixFallback(t *testing.T) {
	router := NewRouter()
	customers := []CustomerConfig{
		{CustomerID: "CUST-020", Name: "No Mix A"},
		{CustomerID: "CUST-021", Name: "No Mix B"},
	}

	breakdown := router.RouteAllOrders(900, customers)

	require.Len(t, breakdown, 1)
	assert.Equal(t, MethodStandard, breakdown[0].Method)
	assert.Equal(t, 900, breakdown[0].Orders)
	assert.InDelta(t, 30.0, breakdown[0].Hours, 0.01)
	assert.Equal(t, 100.0, breakdown[0].Percentage)
}

// TestEqualDistribution tests the default order split across customers
func TestEqualDistribution(t *testing.T) {
	customers := []CustomerConfig{{}, {}, {}}

	counts := EqualDistribution{}.Distribute(1000, customers)

	require.Len(t, counts, 3)
	for _, count := range counts {
		assert.Equal(t, 333, count)
	}

	assert.Empty(t, EqualDistribution{}.Distribute(1000, nil))
}

// TestRouteAllOrdersIdempotent tests that repeated calls give identical results
func TestRouteAllOrdersIdempotent(t *testing.T) {
	router := NewRouter()
	customers := []CustomerConfig{fieldTableCustomer()}

	first := router.RouteAllOrders(5000, customers)
	second := router.RouteAllOrders(5000, customers)

	assert.Equal(t, first, second)
}
