// Package scoring maps a symptom questionnaire to a numeric risk score and a
// categorical risk level. Evaluation is pure and deterministic.
package scoring

// Risk levels derived from the score thresholds.
const (
	LevelHigh     = "High Risk"
	LevelModerate = "Moderate Risk"
	LevelLow      = "Low Risk"
)

// Input is one questionnaire response set.
type Input struct {
	// Selected symptom tags. Counted by raw length; deduplication is a UI
	// concern and must not be assumed here.
	Symptoms []string

	PeriodRegularity string // "regular" / "irregular" / "missed" / ...
	MoodIssues       string // "yes" / "no"
	FatigueLevel     string // "never" / "sometimes" / "often"
	WeightGain       string // "yes" / "no"
	WeightDifficulty string // "yes" / "no"

	// Family history tags, e.g. "pcos", "diabetes".
	FamilyHistory []string
}

// Result couples the score with its classification. The two are always
// consistent because they are only ever produced together.
type Result struct {
	Score int
	Level string
}

// Evaluate applies the fixed point rule:
// one point per selected symptom, +2 for irregular or missed periods,
// +1 each for mood issues, frequent fatigue, weight gain and weight-loss
// difficulty, and +2 (capped, not cumulative) for a family history of
// PCOS or diabetes.
func Evaluate(in Input) Result {
	score := len(in.Symptoms)

	if in.PeriodRegularity == "irregular" || in.PeriodRegularity == "missed" {
		score += 2
	}
	if in.MoodIssues == "yes" {
		score++
	}
	if in.FatigueLevel == "often" {
		score++
	}
	if in.WeightGain == "yes" {
		score++
	}
	if in.WeightDifficulty == "yes" {
		score++
	}
	if contains(in.FamilyHistory, "pcos") || contains(in.FamilyHistory, "diabetes") {
		score += 2
	}

	return Result{Score: score, Level: classify(score)}
}

// classify buckets a score; thresholds are inclusive on the lower bound.
func classify(score int) string {
	switch {
	case score >= 8:
		return LevelHigh
	case score >= 4:
		return LevelModerate
	default:
		return LevelLow
	}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
