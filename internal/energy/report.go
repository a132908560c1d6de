package energy

import "github.com/zyclope0/supernovafit-sub004/internal/fitness"

type Report struct {
	BaseTDEE              int                     `json:"base_tdee"`
	AdjustedTDEE          int                     `json:"adjusted_tdee"`
	CorrectionFactor      float64                 `json:"correction_factor"`
	RawSportCalories      int                     `json:"raw_sport_calories"`
	AdjustedSportCalories int                     `json:"adjusted_sport_calories"`
	AvgDailySportCalories float64                 `json:"avg_daily_sport_calories"`
	AdjustedTrainings     []fitness.WorkoutRecord `json:"adjusted_trainings"`
	PeriodStats           fitness.NutritionTotals `json:"period_stats"`
	PeriodDays            int                     `json:"period_days"`
	// EnergyBalance is period intake minus adjusted TDEE; negative is a deficit.
	EnergyBalance float64 `json:"energy_balance"`
	// DailyEnergyBalance is the average daily intake minus adjusted TDEE.
	DailyEnergyBalance float64 `json:"daily_energy_balance"`
	IsDeficit          bool    `json:"is_deficit"`
}
