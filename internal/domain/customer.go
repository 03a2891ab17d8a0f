package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerTier classifies a merchant's service level
type CustomerTier string

const (
	TierPremium  CustomerTier = "PREMIUM"
	TierStandard CustomerTier = "STANDARD"
	TierBasic    CustomerTier = "BASIC"
)

// CustomerConfig is the operational configuration for one merchant. It is
// loaded fresh per calculation and treated as immutable by every stage.
type CustomerConfig struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CustomerID string             `bson:"customerId" json:"customerId"`
	Code       string             `bson:"code" json:"code"`
	Name       string             `bson:"name" json:"name"`
	Tier       CustomerTier       `bson:"tier" json:"tier"`
	Operations OperationsConfig   `bson:"operations" json:"operations"`
	ProductMix []ProductMixEntry  `bson:"productMix" json:"productMix"`
	Active     bool               `bson:"active" json:"active"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OperationsConfig holds packing-method eligibility rules for a customer
type OperationsConfig struct {
	FieldTableEnabled   bool     `bson:"fieldTableEnabled" json:"fieldTableEnabled"`
	FieldTableMaxSKU    int      `bson:"fieldTableMaxSku" json:"fieldTableMaxSku"`
	FieldTableMaxItems  int      `bson:"fieldTableMaxItems" json:"fieldTableMaxItems"`
	FieldTableMaxWeight float64  `bson:"fieldTableMaxWeight" json:"fieldTableMaxWeight"`
	FieldTableHeroSKUs  []string `bson:"fieldTableHeroSkus" json:"fieldTableHeroSkus"`
	PrepackEnabled      bool     `bson:"prepackEnabled" json:"prepackEnabled"`
	PrepackCategories   []string `bson:"prepackCategories" json:"prepackCategories"`
	PrepackMinWeight    float64  `bson:"prepackMinWeight" json:"prepackMinWeight"`
	PrepackWeeklyQuota  int      `bson:"prepackWeeklyQuota" json:"prepackWeeklyQuota"`
	RequiresCamera      bool     `bson:"requiresCamera" json:"requiresCamera"`
	QualityCheckLevel   string   `bson:"qualityCheckLevel" json:"qualityCheckLevel"`
}

// ProductMixEntry describes one category slice of a customer's volume.
// Percentages across a customer's mix are assumed, not enforced, to sum
// to 100.
type ProductMixEntry struct {
	CategoryCode         string  `bson:"categoryCode" json:"categoryCode"`
	CategoryName         string  `bson:"categoryName" json:"categoryName"`
	Percentage           float64 `bson:"percentage" json:"percentage"`
	AvgProcessingMinutes float64 `bson:"avgProcessingMinutes" json:"avgProcessingMinutes"`
}

// CategoryShare sums the mix percentage of the given category codes
func (c *CustomerConfig) CategoryShare(codes ...string) float64 {
	var share float64
	for _, entry := range c.ProductMix {
		for _, code := range codes {
			if entry.CategoryCode == code {
				share += entry.Percentage
				break
			}
		}
	}
	return share
}

// StaffAvailability is the rostered headcount per tier for one date
type StaffAvailability struct {
	Boxme    int `bson:"boxme" json:"boxme"`
	Seasonal int `bson:"seasonal" json:"seasonal"`
	Veteran  int `bson:"veteran" json:"veteran"`
}

// Total returns the combined available headcount
func (a StaffAvailability) Total() int {
	return a.Boxme + a.Seasonal + a.Veteran
}
