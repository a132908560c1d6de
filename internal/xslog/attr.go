package xslog

import (
	"log/slog"
	"time"

	"github.com/zyclope0/supernovafit-sub004/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Start(t time.Time) slog.Attr {
	const startKey = "start"
	return slog.Time(startKey, t)
}

func End(t time.Time) slog.Attr {
	const endKey = "end"
	return slog.Time(endKey, t)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func ActivityType(t string) slog.Attr {
	const activityTypeKey = "activity_type"
	return slog.String(activityTypeKey, t)
}

func Calories(kcal int) slog.Attr {
	const caloriesKey = "calories"
	return slog.Int(caloriesKey, kcal)
}

func Method(method string) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, method)
}

func Confidence(confidence string) slog.Attr {
	const confidenceKey = "confidence"
	return slog.String(confidenceKey, confidence)
}

func PeriodDays(days int) slog.Attr {
	const periodDaysKey = "period_days"
	return slog.Int(periodDaysKey, days)
}

func Duration(d time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, d)
}

func RunID(id string) slog.Attr {
	const runIDKey = "run_id"
	return slog.String(runIDKey, id)
}

func Dataset(name string) slog.Attr {
	const datasetKey = "dataset"
	return slog.String(datasetKey, name)
}
