package report

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededGenerator() *SeriesGenerator {
	return NewSeriesGenerator(rand.New(rand.NewPCG(1, 2)))
}

func TestSeriesGenerator_Daily(t *testing.T) {
	points := newSeededGenerator().Daily()

	require.Len(t, points, 7)
	assert.Equal(t, time.Now().Format("01/02"), points[6].Label)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Sales, int64(1000))
		assert.LessOrEqual(t, p.Sales, int64(5999))
		assert.GreaterOrEqual(t, p.Orders, int64(5))
		assert.LessOrEqual(t, p.Orders, int64(54))
	}
}

func TestSeriesGenerator_Weekly(t *testing.T) {
	points := newSeededGenerator().Weekly()

	require.Len(t, points, 5)
	assert.Equal(t, "Week 1", points[0].Label)
	assert.Equal(t, "Week 5", points[4].Label)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Sales, int64(5000))
		assert.LessOrEqual(t, p.Sales, int64(19999))
	}
}

func TestSeriesGenerator_Monthly(t *testing.T) {
	points := newSeededGenerator().Monthly()

	require.Len(t, points, 12)
	assert.Equal(t, "Jan", points[0].Label)
	assert.Equal(t, "Dec", points[11].Label)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Sales, int64(5000))
		assert.LessOrEqual(t, p.Sales, int64(24999))
	}
}

func TestSeriesGenerator_Custom(t *testing.T) {
	gen := newSeededGenerator()

	t.Run("one point per day inclusive", func(t *testing.T) {
		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)

		points, err := gen.Custom(start, end)
		require.NoError(t, err)
		require.Len(t, points, 5)
		assert.Equal(t, "08/01", points[0].Label)
		assert.Equal(t, "08/05", points[4].Label)
	})

	t.Run("caps long ranges at 31 points", func(t *testing.T) {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

		points, err := gen.Custom(start, end)
		require.NoError(t, err)
		assert.Len(t, points, 31)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		start := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

		_, err := gen.Custom(start, end)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_RANGE", domainErr.Code)
	})
}

func TestSeriesGenerator_Generate(t *testing.T) {
	gen := newSeededGenerator()

	t.Run("dispatches on granularity", func(t *testing.T) {
		points, err := gen.Generate(GranularityWeekly, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Len(t, points, 5)
	})

	t.Run("custom requires dates", func(t *testing.T) {
		_, err := gen.Generate(GranularityCustom, time.Time{}, time.Time{})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "MISSING_RANGE", domainErr.Code)
	})

	t.Run("rejects unknown granularity", func(t *testing.T) {
		_, err := gen.Generate(Granularity("yearly"), time.Time{}, time.Time{})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_GRANULARITY", domainErr.Code)
	})
}

func TestDatasets(t *testing.T) {
	products := TopProducts()
	require.Len(t, products, 8)
	for i := 1; i < len(products); i++ {
		assert.GreaterOrEqual(t, products[i-1].Sales, products[i].Sales)
	}

	customers := TopCustomers()
	require.Len(t, customers, 4)
	assert.Equal(t, "John Smith", customers[0].Name)
	assert.Len(t, customers[2].Transactions, 3)
}
