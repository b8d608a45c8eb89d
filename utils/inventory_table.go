package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawInventoryTable displays the normalized inventory, one section per
// resource category
func DrawInventoryTable(inv *model.ResourceInventory) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" 📦 RESOURCE INVENTORY - %s (%s)", inv.ClientName, strings.ToUpper(string(inv.Provider))))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	drawSummaryTable(inv)

	drawCategorySection("Virtual Machines", inv.VMs, vmRow, table.Row{"ID", "Name", "Region", "Size", "State", "CPU %"})
	drawCategorySection("Databases", inv.Databases, databaseRow, table.Row{"ID", "Engine", "Region", "Tier", "Storage GB", "Multi-AZ"})
	drawCategorySection("Storage", inv.Storage, storageRow, table.Row{"ID", "Region", "Class", "Size GB", "Encrypted", "Versioned"})
}

func drawSummaryTable(inv *model.ResourceInventory) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Inventory Summary")
	tw.AppendHeader(table.Row{"VMs", "Databases", "Storage Buckets"})
	tw.SetStyle(table.StyleRounded)
	tw.AppendRow(table.Row{
		inv.Summary.TotalVMs,
		inv.Summary.TotalDatabases,
		inv.Summary.TotalStorageBuckets,
	})
	tw.Render()
}

func drawCategorySection(title string, result model.CategoryResult, makeRow func(model.Resource) table.Row, header table.Row) {
	if result.Failed() {
		fmt.Printf("\n %s %s: %s\n",
			text.FgHiRed.Sprint("⚠"),
			text.FgHiYellow.Sprint(title),
			text.FgRed.Sprint(result.Error))
		return
	}

	if len(result.Resources) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(title)
	tw.AppendHeader(header)
	tw.SetStyle(table.StyleRounded)

	for _, res := range result.Resources {
		tw.AppendRow(makeRow(res))
	}
	tw.Render()
}

func vmRow(res model.Resource) table.Row {
	state := res.State
	switch state {
	case "running":
		state = text.FgGreen.Sprint(state)
	case "stopped", "deallocated", "terminated":
		state = text.FgRed.Sprint(state)
	}

	cpu := "-"
	if res.CPUPercent >= 0 {
		cpu = fmt.Sprintf("%.1f", res.CPUPercent)
	}

	return table.Row{res.ID, res.Name, res.Region, res.Size, state, cpu}
}

func databaseRow(res model.Resource) table.Row {
	return table.Row{res.ID, res.Engine, res.Region, res.Size, fmt.Sprintf("%.0f", res.StorageGB), formatBool(res.MultiAZ)}
}

func storageRow(res model.Resource) table.Row {
	size := "-"
	if res.StorageGB > 0 {
		size = fmt.Sprintf("%.0f", res.StorageGB)
	}
	return table.Row{res.ID, res.Region, res.Size, size, formatBool(res.Encrypted), formatBool(res.Versioned)}
}

func formatBool(value *bool) string {
	if value == nil {
		return "-"
	}
	if *value {
		return text.FgGreen.Sprint("yes")
	}
	return text.FgRed.Sprint("no")
}
