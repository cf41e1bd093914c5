package smartfinance

import (
	"math"
	"sort"
)

// GroupByCategory buckets transactions by category label. Transactions with
// no category land under DefaultCategory. An empty input yields an empty map.
func GroupByCategory(txns []Transaction) map[string][]Transaction {
	groups := make(map[string][]Transaction)
	for _, t := range txns {
		c := t.CategoryOrDefault()
		groups[c] = append(groups[c], t)
	}
	return groups
}

// DailySpending sums abs(amount) of debit transactions per calendar day,
// sorted ascending by day. Days with no debit activity are absent, never
// zero-filled.
func DailySpending(txns []Transaction) []DailyTotal {
	byDay := make(map[string]float64)
	dates := make(map[string]Date)
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		key := t.Date.DayKey()
		byDay[key] += -t.Amount
		dates[key] = DateOf(t.Date.Time)
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	totals := make([]DailyTotal, 0, len(keys))
	for _, k := range keys {
		totals = append(totals, DailyTotal{Day: dates[k], Amount: byDay[k]})
	}
	return totals
}

// MonthlySpending sums abs(amount) of debit transactions per calendar month,
// sorted ascending by month, keeping only the most recent months buckets that
// contain any spending. months <= 0 keeps everything.
func MonthlySpending(txns []Transaction, months int) []MonthlyTotal {
	byMonth := make(map[string]float64)
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		byMonth[t.Date.MonthKey()] += -t.Amount
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if months > 0 && len(keys) > months {
		keys = keys[len(keys)-months:]
	}

	totals := make([]MonthlyTotal, 0, len(keys))
	for _, k := range keys {
		totals = append(totals, MonthlyTotal{Month: k, Amount: byMonth[k]})
	}
	return totals
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StandardDeviation returns the population standard deviation of values.
// Zero or one value yields 0.
func StandardDeviation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// Trend returns the mean of successive first differences of values. This is
// a simple linear drift estimate, not a least-squares slope; downstream
// thresholds are tuned against this exact definition. Fewer than two values
// yields 0.
func Trend(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for i := 0; i+1 < len(values); i++ {
		sum += values[i+1] - values[i]
	}
	return sum / float64(len(values)-1)
}

// Percentile returns the p-th percentile (0-100) of values using linear
// interpolation between closest ranks. Empty input yields 0; p outside [0,100]
// clamps to the min or max value.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	pos := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	if lower+1 >= len(sorted) {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// CoefficientOfVariation returns stddev/mean of values, or 0 when the mean
// is 0.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return StandardDeviation(values) / mean
}

func dailyAmounts(days []DailyTotal) []float64 {
	amounts := make([]float64, len(days))
	for i, d := range days {
		amounts[i] = d.Amount
	}
	return amounts
}

func monthlyAmounts(months []MonthlyTotal) []float64 {
	amounts := make([]float64, len(months))
	for i, m := range months {
		amounts[i] = m.Amount
	}
	return amounts
}
