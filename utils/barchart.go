package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/cloud-optimizer/model"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawCostChart renders the category split as a bar chart, most expensive
// category in the hottest color
func DrawCostChart(breakdown *model.CostBreakdown) {
	categories := []struct {
		label string
		value float64
	}{
		{"Compute", breakdown.Compute},
		{"Database", breakdown.Database},
		{"Storage", breakdown.Storage},
		{"Network", breakdown.Network},
	}

	bc := barchart.New(80, 15)

	values := make([]float64, len(categories))
	for i, category := range categories {
		values[i] = category.value
	}
	indexedColors := assignRankedColors(values)

	for idx, category := range categories {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f USD", category.label, category.value),
			Values: []barchart.BarValue{
				{
					Value: category.value,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		})
	}

	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func assignRankedColors(values []float64) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4}

	type valueWithIndex struct {
		index int
		value float64
	}

	toSort := make([]valueWithIndex, len(values))
	for i, value := range values {
		toSort[i] = valueWithIndex{index: i, value: value}
	}

	sort.Slice(toSort, func(i, j int) bool {
		return toSort[i].value > toSort[j].value
	})

	resultColors := make([]string, len(values))
	for rank, sorted := range toSort {
		if rank < len(palette) {
			resultColors[sorted.index] = palette[rank]
		}
	}

	return resultColors
}
