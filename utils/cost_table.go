package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawCostTable displays the estimated cost breakdown for one client
func DrawCostTable(breakdown *model.CostBreakdown) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" 💰 ESTIMATED COSTS - %s (%d days)", strings.ToUpper(string(breakdown.Provider)), breakdown.PeriodDays))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Cost Breakdown")
	tw.AppendHeader(table.Row{"Category", "Estimated Cost"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	tw.AppendRows([]table.Row{
		{text.FgGreen.Sprint("Compute"), fmt.Sprintf("%.2f USD", breakdown.Compute)},
		{text.FgGreen.Sprint("Database"), fmt.Sprintf("%.2f USD", breakdown.Database)},
		{text.FgGreen.Sprint("Storage"), fmt.Sprintf("%.2f USD", breakdown.Storage)},
		{text.FgGreen.Sprint("Network"), fmt.Sprintf("%.2f USD", breakdown.Network)},
	})

	tw.AppendSeparator()
	tw.AppendRow(table.Row{
		text.FgHiWhite.Sprint("TOTAL"),
		text.FgHiGreen.Sprintf("%.2f USD", breakdown.Total),
	})
	tw.AppendRow(table.Row{
		text.FgHiWhite.Sprint("Projected / month"),
		text.FgHiYellow.Sprintf("%.2f USD", breakdown.ProjectedMonthly),
	})

	tw.Render()

	DrawCostChart(breakdown)
}
