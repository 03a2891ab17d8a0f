package domain

import "math"

// Priority is a delivery-urgency tier, P1 (most urgent) through P6
type Priority int

// TierSplit is a target staff mix for a priority band
type TierSplit struct {
	Boxme    float64
	Veteran  float64
	Seasonal float64
}

// PriorityBucketSpec defines one of the six fixed urgency tiers
type PriorityBucketSpec struct {
	Priority    Priority
	Name        string
	Description string
	CutoffTime  string
	Share       float64
	Split       TierSplit
}

// PriorityBuckets is the fixed P1..P6 definition: default volume shares and
// the per-band staff-tier targets. High-urgency work targets permanent
// staff; low-urgency work shifts toward seasonal labor.
var PriorityBuckets = []PriorityBucketSpec{
	{Priority: 1, Name: "Instant", Description: "2-hour delivery promise", CutoffTime: "08:00", Share: 0.10, Split: TierSplit{Boxme: 0.60, Veteran: 0.30, Seasonal: 0.10}},
	{Priority: 2, Name: "Same Day", Description: "Ship before end of day", CutoffTime: "10:00", Share: 0.20, Split: TierSplit{Boxme: 0.60, Veteran: 0.30, Seasonal: 0.10}},
	{Priority: 3, Name: "Next Day", Description: "Next-day delivery", CutoffTime: "14:00", Share: 0.35, Split: TierSplit{Boxme: 0.50, Veteran: 0.20, Seasonal: 0.30}},
	{Priority: 4, Name: "Express", Description: "2-3 day delivery", CutoffTime: "17:00", Share: 0.20, Split: TierSplit{Boxme: 0.50, Veteran: 0.20, Seasonal: 0.30}},
	{Priority: 5, Name: "Economy", Description: "4-5 day delivery", Share: 0.10, Split: TierSplit{Boxme: 0.30, Veteran: 0.10, Seasonal: 0.60}},
	{Priority: 6, Name: "Delayed", Description: "Deferrable, no promise", Share: 0.05, Split: TierSplit{Boxme: 0.30, Veteran: 0.10, Seasonal: 0.60}},
}

// TierAllocation is the staff drawn from each tier for one bucket
type TierAllocation struct {
	Boxme    int `json:"boxme"`
	Seasonal int `json:"seasonal"`
	Veteran  int `json:"veteran"`
}

// PriorityBucket is the computed workload and staffing for one urgency tier
type PriorityBucket struct {
	Priority       Priority       `json:"priority"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	CutoffTime     string         `json:"cutoffTime,omitempty"`
	Orders         int            `json:"orders"`
	Hours          float64        `json:"hours"`
	StaffNeeded    int            `json:"staffNeeded"`
	StaffAllocated TierAllocation `json:"staffAllocated"`
}

// staffPool is the shared, depleting pool of available staff threaded
// through the bucket loop. It is local to one AllocateByPriority call;
// nothing is shared across calculations.
type staffPool struct {
	boxme    int
	veteran  int
	seasonal int
}

func (p *staffPool) draw(target TierSplit, staffNeeded int) TierAllocation {
	wantBoxme := int(math.Round(float64(staffNeeded) * target.Boxme))
	wantVeteran := int(math.Round(float64(staffNeeded) * target.Veteran))
	wantSeasonal := int(math.Round(float64(staffNeeded) * target.Seasonal))

	alloc := TierAllocation{
		Boxme:    minInt(wantBoxme, p.boxme),
		Veteran:  minInt(wantVeteran, p.veteran),
		Seasonal: minInt(wantSeasonal, p.seasonal),
	}

	p.boxme -= alloc.Boxme
	p.veteran -= alloc.Veteran
	p.seasonal -= alloc.Seasonal

	return alloc
}

// AllocateByPriority splits the day's volume into the six urgency buckets
// and assigns staff tiers bucket by bucket, P1 first. Earlier buckets draw
// from the shared pool before later ones, so pool exhaustion leaves
// low-urgency buckets under their target — intended backpressure.
// shareOverride replaces the default volume shares when non-nil; the pool
// is seeded from the breakdown's available (not needed) counts.
func AllocateByPriority(
	totalOrders int,
	totalHours float64,
	staffBreakdown StaffBreakdown,
	shareOverride map[Priority]float64,
) []PriorityBucket {
	pool := &staffPool{
		boxme:    staffBreakdown.Boxme.Available,
		veteran:  staffBreakdown.Veteran.Available,
		seasonal: staffBreakdown.Seasonal.Available,
	}

	buckets := make([]PriorityBucket, 0, len(PriorityBuckets))
	for _, spec := range PriorityBuckets {
		share := spec.Share
		if shareOverride != nil {
			if s, ok := shareOverride[spec.Priority]; ok {
				share = s
			}
		}

		orders := int(float64(totalOrders) * share)
		hours := round2(totalHours * share)
		staffNeeded := CalculateStaffNeeded(hours, DefaultShiftHours)

		buckets = append(buckets, PriorityBucket{
			Priority:       spec.Priority,
			Name:           spec.Name,
			Description:    spec.Description,
			CutoffTime:     spec.CutoffTime,
			Orders:         orders,
			Hours:          hours,
			StaffNeeded:    staffNeeded,
			StaffAllocated: pool.draw(spec.Split, staffNeeded),
		})
	}

	return buckets
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
