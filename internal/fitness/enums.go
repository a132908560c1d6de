package fitness

import "strings"

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

func (s Sex) IsFemale() bool { return s == SexFemale }

// ParseSex accepts the short codes as well as the long forms found in older exports.
// Anything unrecognized is reported with ok=false.
func ParseSex(s string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male", "homme":
		return SexMale, true
	case "f", "female", "femme":
		return SexFemale, true
	default:
		return "", false
	}
}

type ActivityLevel string

const (
	ActivitySedentary   ActivityLevel = "sedentary"
	ActivityLight       ActivityLevel = "light"
	ActivityModerate    ActivityLevel = "moderate"
	ActivityIntense     ActivityLevel = "intense"
	ActivityVeryIntense ActivityLevel = "very_intense"
)

var activityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityIntense,
	ActivityVeryIntense,
}

func (l ActivityLevel) Valid() bool {
	for _, v := range activityLevels {
		if v == l {
			return true
		}
	}
	return false
}

// ActivityType values are the workout types as logged by the app.
type ActivityType string

const (
	ActivityRunning  ActivityType = "course"
	ActivityCycling  ActivityType = "velo"
	ActivitySwimming ActivityType = "natation"
	ActivityWalking  ActivityType = "marche"
	ActivityHiking   ActivityType = "randonnee"
	ActivityStrength ActivityType = "musculation"
	ActivityCardio   ActivityType = "cardio"
	ActivityHIIT     ActivityType = "hiit"
	ActivityYoga     ActivityType = "yoga"
	ActivityPilates  ActivityType = "pilates"
	ActivityDance    ActivityType = "danse"
	ActivityFootball ActivityType = "football"
	ActivityTennis   ActivityType = "tennis"
	ActivityRowing   ActivityType = "aviron"
	ActivityClimbing ActivityType = "escalade"
	ActivityOther    ActivityType = "autre"
)

// Normalize lowercases and trims the type. It does not map unknown values;
// that is the job of the MET lookup.
func (t ActivityType) Normalize() ActivityType {
	return ActivityType(strings.ToLower(strings.TrimSpace(string(t))))
}
