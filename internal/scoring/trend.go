package scoring

import "github.com/teampulse/teampulse/internal/domain"

// Trend risk levels. "unknown" signals insufficient data, "high" overrides
// the slope classification when the recent-week mean is elevated.
const (
	TrendRiskUnknown    = "unknown"
	TrendRiskIncreasing = "increasing"
	TrendRiskDecreasing = "decreasing"
	TrendRiskStable     = "stable"
	TrendRiskHigh       = "high"
)

const (
	trendMinCheckins = 7
	trendMaxCheckins = 28
	trendSlopeBand   = 0.1
	highRiskMeanCut  = 3.5
)

// TrendReport is the outcome of mood trend prediction for an employee.
type TrendReport struct {
	Prediction     string
	RiskLevel      string
	Recommendation string
	Slope          float64
	CurrentScore   float64
}

// PredictMoodTrend fits a linear trend over an employee's chronological
// mood history mapped to ordinal severity (happy 1 .. burnout 4). At
// least 7 check-ins are required; only the 28 most recent are considered.
// A recent-week mean severity of 3.5 or above overrides the slope
// classification with a high-risk result.
func PredictMoodTrend(history []domain.MoodCheckin) TrendReport {
	if len(history) < trendMinCheckins {
		return TrendReport{
			Prediction:     "Insufficient data",
			RiskLevel:      TrendRiskUnknown,
			Recommendation: "Need at least 1 week of mood check-ins",
		}
	}

	if len(history) > trendMaxCheckins {
		history = history[len(history)-trendMaxCheckins:]
	}

	scores := make([]float64, len(history))
	for i, c := range history {
		scores[i] = float64(c.Mood.Severity())
	}

	slope := linearSlope(scores)

	var prediction, riskLevel, recommendation string
	switch {
	case slope > trendSlopeBand:
		riskLevel = TrendRiskIncreasing
		prediction = "Burnout risk is increasing"
		recommendation = "Consider workload reduction and wellness support"
	case slope < -trendSlopeBand:
		riskLevel = TrendRiskDecreasing
		prediction = "Burnout risk is decreasing"
		recommendation = "Continue current support measures"
	default:
		riskLevel = TrendRiskStable
		prediction = "Burnout risk is stable"
		recommendation = "Maintain regular monitoring"
	}

	// Current state check: the trailing week dominates the slope.
	recent := scores[len(scores)-trendMinCheckins:]
	recentAvg := mean(recent)
	if recentAvg >= highRiskMeanCut {
		riskLevel = TrendRiskHigh
		recommendation = "Immediate intervention recommended"
	}

	return TrendReport{
		Prediction:     prediction,
		RiskLevel:      riskLevel,
		Recommendation: recommendation,
		Slope:          slope,
		CurrentScore:   recentAvg,
	}
}

// linearSlope computes the least-squares slope of y over x = 0..n-1.
func linearSlope(y []float64) float64 {
	n := float64(len(y))
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
