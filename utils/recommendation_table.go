package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawRecommendationTable displays the recommendation set with its summary
func DrawRecommendationTable(set *model.RecommendationSet) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" 🔍 RECOMMENDATIONS - %s", strings.ToUpper(string(set.Provider))))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(set.Recommendations) == 0 {
		fmt.Printf("\n %s\n", text.FgHiGreen.Sprint("✅ No issues found"))
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Optimization Opportunities")
	tw.AppendHeader(table.Row{"Severity", "Category", "Title", "Resources", "Savings / month"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignCenter},
		{Number: 5, Align: text.AlignRight},
	})

	for _, rec := range set.Recommendations {
		savings := "-"
		if rec.EstimatedSavingsMonthly > 0 {
			savings = fmt.Sprintf("%.2f USD", rec.EstimatedSavingsMonthly)
		}
		tw.AppendRow(table.Row{
			formatSeverity(rec.Severity),
			rec.Category,
			rec.Title,
			len(rec.ResourceIDs),
			savings,
		})
	}

	tw.AppendSeparator()
	tw.AppendRow(table.Row{
		text.FgHiWhite.Sprintf("%d total (%d high)", set.Summary.Total, set.Summary.HighSeverity),
		"",
		"",
		"",
		text.FgHiGreen.Sprintf("%.2f USD", set.Summary.TotalPotentialSavingsMonthly),
	})

	tw.Render()

	for _, rec := range set.Recommendations {
		fmt.Printf("\n %s %s\n", formatSeverity(rec.Severity), text.FgHiCyan.Sprint(rec.Title))
		fmt.Printf("   %s\n", rec.Description)
		fmt.Printf("   %s %s\n", text.FgHiWhite.Sprint("Action:"), rec.Action)
	}
}

// DrawConnectionResult displays the outcome of a credential check
func DrawConnectionResult(result *model.ConnectionTestResult) {
	status := text.FgHiGreen.Sprint("✅ Connected")
	if !result.OK {
		status = text.FgHiRed.Sprint("⚠ Failed")
	}
	fmt.Printf("\n %s %s: %s\n",
		status,
		text.FgHiYellow.Sprint(strings.ToUpper(string(result.Provider))),
		result.Details)
}

func formatSeverity(severity model.Severity) string {
	switch severity {
	case model.SeverityHigh:
		return text.FgHiRed.Sprint("HIGH")
	case model.SeverityMedium:
		return text.FgHiYellow.Sprint("MEDIUM")
	default:
		return text.FgGreen.Sprint("LOW")
	}
}
