package services

import (
	"context"
	"math"
	"sort"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Aggregation types ----------

// DailyTotal is the per-calendar-day sum of logged macros. Dates are
// UTC yyyy-mm-dd strings.
type DailyTotal struct {
	Date       string  `json:"date"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein_g"`
	Carbs      float64 `json:"carbs_g"`
	Fat        float64 `json:"fat_g"`
	EntryCount int     `json:"entry_count"`
}

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
}

type OverallStats struct {
	TotalEntries int         `json:"total_entries"`
	TotalDays    int         `json:"total_days"`
	Totals       MacroTotals `json:"totals"`
	PerDayAvg    MacroTotals `json:"per_day_avg"`
}

type MacroBreakdown struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbPct    float64 `json:"carb_pct"`
	FatPct     float64 `json:"fat_pct"`
}

type FoodCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ---------- Pure aggregation ----------

// computeDailyTotals groups entries by UTC calendar date and sums their
// macros. Output is ordered ascending by date. Empty input yields an
// empty (non-nil) slice.
func computeDailyTotals(entries []models.NutritionLog) []DailyTotal {
	byDate := map[string]*DailyTotal{}
	for _, e := range entries {
		key := e.OccurredAt.UTC().Format("2006-01-02")
		dt, ok := byDate[key]
		if !ok {
			dt = &DailyTotal{Date: key}
			byDate[key] = dt
		}
		dt.Calories += e.Calories
		dt.Protein += e.Protein
		dt.Carbs += e.Carbs
		dt.Fat += e.Fat
		dt.EntryCount++
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DailyTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byDate[k])
	}
	return out
}

// computeOverallStats sums the daily totals and derives per-day
// averages. Zero days means all-zero averages, never NaN.
func computeOverallStats(days []DailyTotal) OverallStats {
	var out OverallStats
	out.TotalDays = len(days)
	for _, d := range days {
		out.TotalEntries += d.EntryCount
		out.Totals.Calories += d.Calories
		out.Totals.Protein += d.Protein
		out.Totals.Carbs += d.Carbs
		out.Totals.Fat += d.Fat
	}
	out.PerDayAvg = MacroTotals{
		Calories: avg(out.Totals.Calories, out.TotalDays),
		Protein:  avg(out.Totals.Protein, out.TotalDays),
		Carbs:    avg(out.Totals.Carbs, out.TotalDays),
		Fat:      avg(out.Totals.Fat, out.TotalDays),
	}
	return out
}

// computeMacroBreakdown converts gram totals into percent-of-calories
// using 4/4/9 kcal per gram. Zero calories yields all zeros.
func computeMacroBreakdown(t MacroTotals) MacroBreakdown {
	if t.Calories <= 0 {
		return MacroBreakdown{}
	}
	return MacroBreakdown{
		ProteinPct: round2(t.Protein * 4 / t.Calories * 100),
		CarbPct:    round2(t.Carbs * 4 / t.Calories * 100),
		FatPct:     round2(t.Fat * 9 / t.Calories * 100),
	}
}

// topFoods counts exact (case-sensitive) food labels and returns the k
// most frequent, ties broken by first appearance.
func topFoods(entries []models.NutritionLog, k int) []FoodCount {
	if k <= 0 {
		k = 5
	}
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		if _, seen := counts[e.FoodLabel]; !seen {
			order = append(order, e.FoodLabel)
		}
		counts[e.FoodLabel]++
	}

	out := make([]FoodCount, 0, len(order))
	for _, name := range order {
		out = append(out, FoodCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// ---------- Summary ----------

type AnalyticsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Daily     []DailyTotal   `json:"daily"`
	Stats     OverallStats   `json:"stats"`
	Breakdown MacroBreakdown `json:"macro_breakdown"`
	TopFoods  []FoodCount    `json:"top_foods"`

	Hydration struct {
		TotalMl float64 `json:"total_ml"`
		AvgMl   float64 `json:"avg_ml_per_day"`
		GoalMl  float64 `json:"goal_ml,omitempty"`
		Entries int     `json:"entries"`
	} `json:"hydration"`
}

// Summary aggregates a user's logs over the half-open range [from, to).
func (s *AnalyticsService) Summary(ctx context.Context, userID uint, from, to time.Time) (*AnalyticsSummary, error) {
	var entries []models.NutritionLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Order("occurred_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	var waters []models.HydrationLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Find(&waters).Error; err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	daily := computeDailyTotals(entries)
	stats := computeOverallStats(daily)

	out := &AnalyticsSummary{
		Daily:     daily,
		Stats:     stats,
		Breakdown: computeMacroBreakdown(stats.Totals),
		TopFoods:  topFoods(entries, 5),
	}
	out.Range.From = from.UTC().Format("2006-01-02")
	out.Range.To = to.UTC().Format("2006-01-02")

	for _, w := range waters {
		out.Hydration.TotalMl += w.Milliliters
	}
	// Hydration averages over hydration days, not nutrition days: the
	// two logs can cover disjoint dates within the range.
	out.Hydration.AvgMl = avg(out.Hydration.TotalMl, hydrationDayCount(waters))
	out.Hydration.GoalMl = user.HydrationGoalMl
	out.Hydration.Entries = len(waters)

	return out, nil
}

// Targets derives the metabolic target set from the stored profile.
func (s *AnalyticsService) Targets(ctx context.Context, userID uint) (*utils.MacroTargets, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	t := utils.CalculateMacroTargets(
		user.WeightKg, user.HeightCm, user.AgeYears,
		user.Gender, user.ActivityLevel, user.GoalType,
	)
	return &t, nil
}

// TopFoods returns the user's most frequent foods over [from, to).
func (s *AnalyticsService) TopFoods(ctx context.Context, userID uint, from, to time.Time, k int) ([]FoodCount, error) {
	var entries []models.NutritionLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Order("occurred_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return topFoods(entries, k), nil
}

// ---------- internals ----------

// hydrationDayCount counts the distinct UTC calendar dates that carry
// at least one hydration entry.
func hydrationDayCount(waters []models.HydrationLog) int {
	days := map[string]struct{}{}
	for _, w := range waters {
		days[w.OccurredAt.UTC().Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
