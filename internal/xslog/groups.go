package xslog

import (
	"fmt"
	"log/slog"
)

const (
	groupEstimate = "estimate"
	groupBalance  = "balance"
	groupError    = "error"
)

const (
	keyMet           = "met"
	keyBaseTDEE      = "base_tdee"
	keyAdjustedTDEE  = "adjusted_tdee"
	keyFactor        = "correction_factor"
	keyRawSport      = "raw_sport_calories"
	keyEnergyBalance = "energy_balance"
	keyMessage       = "message"
	keyType          = "type"
)

func EstimateGroup(activityType string, met float64, kcal int, method, confidence string) slog.Attr {
	return slog.Group(groupEstimate,
		ActivityType(activityType),
		slog.Float64(keyMet, met),
		Calories(kcal),
		Method(method),
		Confidence(confidence),
	)
}

func BalanceGroup(baseTDEE, adjustedTDEE int, factor float64, rawSport int, balance float64) slog.Attr {
	return slog.Group(groupBalance,
		slog.Int(keyBaseTDEE, baseTDEE),
		slog.Int(keyAdjustedTDEE, adjustedTDEE),
		slog.Float64(keyFactor, factor),
		slog.Int(keyRawSport, rawSport),
		slog.Float64(keyEnergyBalance, balance),
	)
}

func ErrorGroup(err error) slog.Attr {
	if err == nil {
		return slog.Group(groupError)
	}
	return slog.Group(groupError,
		slog.String(keyMessage, err.Error()),
		slog.String(keyType, fmt.Sprintf("%T", err)),
	)
}
