package service

import (
	"testing"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldStats(t *testing.T) {
	summary := foldStats([]repoargs.MethodAggregate{
		{Method: domain.PaymentCashless, Count: 1, Sum: dec("45.00"), Max: dec("45.00"), Min: dec("45.00")},
		{Method: domain.PaymentCash, Count: 2, Sum: dec("260.50"), Max: dec("175.00"), Min: dec("85.50")},
	})

	assert.Equal(t, int64(3), summary.Count)
	assert.True(t, dec("305.50").Equal(summary.Sum))
	assert.True(t, dec("101.83").Equal(summary.Avg))
	assert.True(t, dec("175.00").Equal(summary.Max))
	assert.True(t, dec("45.00").Equal(summary.Min))

	require.Len(t, summary.ByMethod, 2)
	assert.Equal(t, domain.PaymentCash, summary.ByMethod[0].Method)
	assert.Equal(t, int64(2), summary.ByMethod[0].Count)
	assert.True(t, dec("260.50").Equal(summary.ByMethod[0].Sum))
	assert.Equal(t, domain.PaymentCashless, summary.ByMethod[1].Method)
	assert.Equal(t, int64(1), summary.ByMethod[1].Count)
}

func TestFoldStatsEmpty(t *testing.T) {
	for _, rows := range [][]repoargs.MethodAggregate{
		nil,
		{{Method: domain.PaymentCash}},
	} {
		summary := foldStats(rows)

		assert.Zero(t, summary.Count)
		assert.True(t, summary.Sum.IsZero())
		assert.True(t, summary.Avg.IsZero())
		assert.True(t, summary.Max.IsZero())
		assert.True(t, summary.Min.IsZero())
		assert.NotNil(t, summary.ByMethod)
		assert.Empty(t, summary.ByMethod)
	}
}

func TestFoldStatsSkipsEmptyFirstRow(t *testing.T) {
	summary := foldStats([]repoargs.MethodAggregate{
		{Method: domain.PaymentCash},
		{Method: domain.PaymentCashless, Count: 2, Sum: dec("30"), Max: dec("20"), Min: dec("10")},
	})

	assert.Equal(t, int64(2), summary.Count)
	assert.True(t, dec("10").Equal(summary.Min))
	assert.True(t, dec("20").Equal(summary.Max))
	assert.True(t, dec("15").Equal(summary.Avg))
	require.Len(t, summary.ByMethod, 1)
}

func TestFoldStatsPartitionsSum(t *testing.T) {
	summary := foldStats([]repoargs.MethodAggregate{
		{Method: domain.PaymentCash, Count: 4, Sum: dec("10.10"), Max: dec("5"), Min: dec("0.10")},
		{Method: domain.PaymentCashless, Count: 3, Sum: dec("7.77"), Max: dec("3"), Min: dec("1.77")},
	})

	var count int64
	sum := dec("0")
	for _, m := range summary.ByMethod {
		count += m.Count
		sum = sum.Add(m.Sum)
	}
	assert.Equal(t, summary.Count, count)
	assert.True(t, summary.Sum.Equal(sum))
	assert.True(t, summary.Min.LessThanOrEqual(summary.Avg))
	assert.True(t, summary.Avg.LessThanOrEqual(summary.Max))
}
