// Package metabolic holds the MET-based calorie primitives and the resting
// metabolic model. Every table in this package is read-only after init.
package metabolic

import (
	"maps"

	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
)

// METEntry is one row of the activity table. Base is the compendium value;
// adjustments never leave [Min, Max].
type METEntry struct {
	Base            float64 `json:"base"`
	Min             float64 `json:"min"`
	Max             float64 `json:"max"`
	SpeedAdjustable bool    `json:"speed_adjustable"`
	HRAdjustable    bool    `json:"hr_adjustable"`
}

var metTable = map[fitness.ActivityType]METEntry{
	fitness.ActivityRunning:  {Base: 9.8, Min: 6, Max: 18, SpeedAdjustable: true, HRAdjustable: true},
	fitness.ActivityCycling:  {Base: 7.5, Min: 4, Max: 16, SpeedAdjustable: true, HRAdjustable: true},
	fitness.ActivitySwimming: {Base: 8.0, Min: 4, Max: 12, HRAdjustable: true},
	fitness.ActivityWalking:  {Base: 3.5, Min: 2, Max: 7, HRAdjustable: true},
	fitness.ActivityHiking:   {Base: 6.0, Min: 4, Max: 9, HRAdjustable: true},
	fitness.ActivityStrength: {Base: 5.0, Min: 3, Max: 8},
	fitness.ActivityCardio:   {Base: 7.0, Min: 4, Max: 12, HRAdjustable: true},
	fitness.ActivityHIIT:     {Base: 8.0, Min: 6, Max: 14, HRAdjustable: true},
	fitness.ActivityYoga:     {Base: 2.5, Min: 2, Max: 4},
	fitness.ActivityPilates:  {Base: 3.0, Min: 2, Max: 5},
	fitness.ActivityDance:    {Base: 5.0, Min: 3, Max: 8, HRAdjustable: true},
	fitness.ActivityFootball: {Base: 7.0, Min: 5, Max: 10, HRAdjustable: true},
	fitness.ActivityTennis:   {Base: 7.3, Min: 5, Max: 10, HRAdjustable: true},
	fitness.ActivityRowing:   {Base: 7.0, Min: 4, Max: 12, HRAdjustable: true},
	fitness.ActivityClimbing: {Base: 8.0, Min: 5, Max: 11, HRAdjustable: true},
	fitness.ActivityOther:    {Base: 5.0, Min: 2, Max: 12, HRAdjustable: true},
}

// speedModel describes how MET grows with speed above a reference pace.
type speedModel struct {
	referenceKMH float64
	perKMH       float64
}

var speedModels = map[fitness.ActivityType]speedModel{
	fitness.ActivityRunning: {referenceKMH: 8, perKMH: 0.8},
	fitness.ActivityCycling: {referenceKMH: 16, perKMH: 0.5},
}

// NormalizeType maps t onto a key of the MET table. Unknown types become
// fitness.ActivityOther, so callers can normalize once and never look back.
func NormalizeType(t fitness.ActivityType) fitness.ActivityType {
	t = t.Normalize()
	if _, ok := metTable[t]; ok {
		return t
	}
	return fitness.ActivityOther
}

// BaseMET never fails: unknown types get the "other" entry.
func BaseMET(t fitness.ActivityType) METEntry {
	return metTable[NormalizeType(t)]
}

// METTable returns a copy of the activity table.
func METTable() map[fitness.ActivityType]METEntry {
	return maps.Clone(metTable)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
