package service

import (
	"slices"
	"strings"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/fsdevblog/groph-receipts/pkg/money"
	"github.com/shopspring/decimal"
)

// foldStats сворачивает строки агрегации по способам оплаты в общую статистику. При отсутствии чеков
// все суммы равны нулю, а разбивка пустая.
func foldStats(rows []repoargs.MethodAggregate) *domain.StatsSummary {
	summary := &domain.StatsSummary{
		Sum:      decimal.Zero,
		Avg:      decimal.Zero,
		Max:      decimal.Zero,
		Min:      decimal.Zero,
		ByMethod: make([]domain.MethodStats, 0, len(rows)),
	}

	rows = slices.Clone(rows)
	slices.SortFunc(rows, func(a, b repoargs.MethodAggregate) int {
		return strings.Compare(string(a.Method), string(b.Method))
	})

	for _, row := range rows {
		if row.Count == 0 {
			continue
		}
		if summary.Count == 0 || row.Max.GreaterThan(summary.Max) {
			summary.Max = row.Max
		}
		if summary.Count == 0 || row.Min.LessThan(summary.Min) {
			summary.Min = row.Min
		}
		summary.Count += row.Count
		summary.Sum = summary.Sum.Add(row.Sum)
		summary.ByMethod = append(summary.ByMethod, domain.MethodStats{
			Method: row.Method,
			Count:  row.Count,
			Sum:    money.Round2(row.Sum),
		})
	}

	if summary.Count > 0 {
		summary.Avg = money.Round2(summary.Sum.Div(decimal.NewFromInt(summary.Count)))
	}
	summary.Sum = money.Round2(summary.Sum)
	summary.Max = money.Round2(summary.Max)
	summary.Min = money.Round2(summary.Min)
	return summary
}
