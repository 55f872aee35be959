package report

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
)

// Granularity selects the bucketing of the sales trend series
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityCustom  Granularity = "custom"
)

// IsValid checks if the granularity is a known value
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly, GranularityCustom:
		return true
	}
	return false
}

// ChartType selects the visual rendering hint attached to a series
type ChartType string

const (
	ChartTypeBar  ChartType = "bar"
	ChartTypeLine ChartType = "line"
	ChartTypePie  ChartType = "pie"
)

// IsValid checks if the chart type is a known value
func (c ChartType) IsValid() bool {
	return c == ChartTypeBar || c == ChartTypeLine || c == ChartTypePie
}

// SalesPoint is one bucket of the synthetic sales trend
type SalesPoint struct {
	Label  string
	Sales  int64
	Orders int64
}

// maxCustomDays caps a custom range at 31 daily points
const maxCustomDays = 30

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// SeriesGenerator produces demonstration sales series. Randomness is
// injected so tests can pin the output.
type SeriesGenerator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewSeriesGenerator creates a generator with the given random source.
// A nil source falls back to the shared global source.
func NewSeriesGenerator(rng *rand.Rand) *SeriesGenerator {
	return &SeriesGenerator{rng: rng, now: time.Now}
}

func (g *SeriesGenerator) intN(n int64) int64 {
	if g.rng != nil {
		return g.rng.Int64N(n)
	}
	return rand.Int64N(n)
}

// Daily returns seven points ending today, labeled MM/dd
func (g *SeriesGenerator) Daily() []SalesPoint {
	today := g.now()
	points := make([]SalesPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		points = append(points, SalesPoint{
			Label:  today.AddDate(0, 0, -i).Format("01/02"),
			Sales:  1000 + g.intN(5000),
			Orders: 5 + g.intN(50),
		})
	}
	return points
}

// Weekly returns five points labeled Week 1 through Week 5
func (g *SeriesGenerator) Weekly() []SalesPoint {
	points := make([]SalesPoint, 0, 5)
	for i := 1; i <= 5; i++ {
		points = append(points, SalesPoint{
			Label:  "Week " + strconv.Itoa(i),
			Sales:  5000 + g.intN(15000),
			Orders: 15 + g.intN(150),
		})
	}
	return points
}

// Monthly returns twelve points labeled Jan through Dec
func (g *SeriesGenerator) Monthly() []SalesPoint {
	points := make([]SalesPoint, 0, 12)
	for _, label := range monthLabels {
		points = append(points, SalesPoint{
			Label:  label,
			Sales:  5000 + g.intN(20000),
			Orders: 20 + g.intN(200),
		})
	}
	return points
}

// Custom returns one daily point per day from start through end,
// capped at 31 points. The range must be ordered.
func (g *SeriesGenerator) Custom(start, end time.Time) ([]SalesPoint, error) {
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_RANGE", "End date must not be before start date")
	}

	days := int(end.Sub(start).Hours() / 24)
	if days > maxCustomDays {
		days = maxCustomDays
	}

	points := make([]SalesPoint, 0, days+1)
	for i := 0; i <= days; i++ {
		day := start.AddDate(0, 0, i)
		if day.After(end) {
			break
		}
		points = append(points, SalesPoint{
			Label:  day.Format("01/02"),
			Sales:  1000 + g.intN(5000),
			Orders: 5 + g.intN(50),
		})
	}
	return points, nil
}

// Generate dispatches on granularity. Custom requires both dates.
func (g *SeriesGenerator) Generate(granularity Granularity, start, end time.Time) ([]SalesPoint, error) {
	switch granularity {
	case GranularityDaily:
		return g.Daily(), nil
	case GranularityWeekly:
		return g.Weekly(), nil
	case GranularityMonthly:
		return g.Monthly(), nil
	case GranularityCustom:
		if start.IsZero() || end.IsZero() {
			return nil, shared.NewDomainError("MISSING_RANGE", "Custom range requires start and end dates")
		}
		return g.Custom(start, end)
	default:
		return nil, shared.NewDomainError("INVALID_GRANULARITY", "Unknown granularity")
	}
}
