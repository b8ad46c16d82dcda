package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/appengine-ltd/short-order/internal/config"
	"github.com/appengine-ltd/short-order/internal/kitchen"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	var (
		outDir      string
		catalogPath string
	)
	flag.StringVar(&outDir, "out", filepath.Join("docs", "reference"), "output directory")
	flag.StringVar(&catalogPath, "catalog", "", "catalog YAML to document instead of the built-in one")
	flag.Parse()

	catalog := kitchen.DefaultCatalog()
	if catalogPath != "" {
		c, err := kitchen.LoadCatalog(catalogPath)
		if err != nil {
			fatal(err)
		}
		catalog = c
	}

	if err := writeDocs(outDir, generateDocs(catalog)); err != nil {
		fatal(err)
	}
}

func generateDocs(catalog *kitchen.Catalog) []docFile {
	return []docFile{
		generateShopDoc(catalog),
		generateMenuDoc(catalog),
		generateCapabilitiesDoc(),
		generateBalanceDoc(),
	}
}

func writeDocs(root string, files []docFile) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(generateIndex(files)), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", indexPath)
	return nil
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Kitchen Reference\n\n")
	b.WriteString("Generated from the catalog and balance presets using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateShopDoc(catalog *kitchen.Catalog) docFile {
	items := make([]kitchen.Definition, 0)
	for _, def := range catalog.All() {
		if def.ShopPrice > 0 {
			items = append(items, def)
		}
	}
	categoryRank := map[kitchen.Category]int{
		kitchen.CategoryAppliance: 0,
		kitchen.CategoryTile:      1,
		kitchen.CategoryBox:       2,
	}
	sort.Slice(items, func(i, j int) bool {
		ri, rj := categoryRank[items[i].Category], categoryRank[items[j].Category]
		if ri != rj {
			return ri < rj
		}
		if items[i].ShopPrice != items[j].ShopPrice {
			return items[i].ShopPrice < items[j].ShopPrice
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# Shop\n\n")
	b.WriteString(fmt.Sprintf("Items for sale: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Category | Appliance | Produces | Price |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, def := range items {
		b.WriteString("| ")
		b.WriteString(escape(def.ID))
		b.WriteString(" | ")
		b.WriteString(escape(def.DisplayName()))
		b.WriteString(" | ")
		b.WriteString(escape(string(def.Category)))
		b.WriteString(" | ")
		b.WriteString(escape(string(def.Appliance)))
		b.WriteString(" | ")
		b.WriteString(escape(def.Produces))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(def.ShopPrice))
		b.WriteString(" |\n")
	}
	return docFile{Name: "shop.md", Title: "Shop", Content: b.String()}
}

func generateMenuDoc(catalog *kitchen.Catalog) docFile {
	items := make([]kitchen.Definition, 0)
	for _, def := range catalog.All() {
		if def.Order != nil {
			items = append(items, def)
		}
	}
	kindRank := map[kitchen.OrderKind]int{
		kitchen.OrderBurger:  0,
		kitchen.OrderTopping: 1,
		kitchen.OrderSide:    2,
		kitchen.OrderDrink:   3,
	}
	sort.Slice(items, func(i, j int) bool {
		ri, rj := kindRank[items[i].Order.Kind], kindRank[items[j].Order.Kind]
		if ri != rj {
			return ri < rj
		}
		return items[i].ID < items[j].ID
	})

	total := 0.0
	var b strings.Builder
	b.WriteString("# Menu Items\n\n")
	b.WriteString("An item is orderable when it has no ancestors or any ancestor is in the kitchen, and its required capability is unlocked.\n\n")
	b.WriteString("| ID | Name | Kind | Price | Complexity | Requires | Unlocked By |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, def := range items {
		total += def.Order.Complexity
		b.WriteString("| ")
		b.WriteString(escape(def.ID))
		b.WriteString(" | ")
		b.WriteString(escape(def.DisplayName()))
		b.WriteString(" | ")
		b.WriteString(escape(string(def.Order.Kind)))
		b.WriteString(" | ")
		b.WriteString(formatFloat(def.Order.Price))
		b.WriteString(" | ")
		b.WriteString(formatFloat(def.Order.Complexity))
		b.WriteString(" | ")
		b.WriteString(escape(string(def.Order.Requires)))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(catalog.Ancestors(def.ID), ", ")))
		b.WriteString(" |\n")
	}
	b.WriteString(fmt.Sprintf("\nFull menu complexity: **%s**.\n", formatFloat(total)))
	return docFile{Name: "menu.md", Title: "Menu Items", Content: b.String()}
}

func generateCapabilitiesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Capabilities\n\n")
	b.WriteString("| Capability | Appliances | Needs |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, r := range kitchen.CapabilityRules() {
		appliances := make([]string, 0, len(r.Appliances))
		for _, a := range r.Appliances {
			appliances = append(appliances, string(a))
		}
		b.WriteString("| ")
		b.WriteString(escape(string(r.Capability)))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(appliances, ", ")))
		b.WriteString(" | ")
		b.WriteString(escape(r.Needs))
		b.WriteString(" |\n")
	}
	return docFile{Name: "capabilities.md", Title: "Capabilities", Content: b.String()}
}

func generateBalanceDoc() docFile {
	presets := []struct {
		name string
		b    config.Balance
	}{
		{"default", config.Default()},
		{"relaxed", config.Relaxed()},
		{"rush", config.Rush()},
	}
	rows := []struct {
		label string
		value func(config.Balance) float64
	}{
		{"Prep base (s)", func(b config.Balance) float64 { return b.PrepBaseSeconds }},
		{"Prep per complexity (s)", func(b config.Balance) float64 { return b.PrepPerComplexitySeconds }},
		{"Arrival interval (s)", func(b config.Balance) float64 { return b.ArrivalIntervalSeconds }},
		{"Print time (s)", func(b config.Balance) float64 { return b.PrintSeconds }},
		{"Fast threshold (s)", func(b config.Balance) float64 { return b.FastThresholdSeconds }},
		{"Fast reward", func(b config.Balance) float64 { return b.FastReward }},
		{"On-time reward", func(b config.Balance) float64 { return b.OnTimeReward }},
		{"Late reward", func(b config.Balance) float64 { return b.LateReward }},
		{"Rebate fraction", func(b config.Balance) float64 { return b.RebateFraction }},
		{"Give-up penalty", func(b config.Balance) float64 { return b.GiveUpPenalty }},
		{"Complexity star (low)", func(b config.Balance) float64 { return b.ComplexityStarLow }},
		{"Complexity star (high)", func(b config.Balance) float64 { return b.ComplexityStarHigh }},
		{"Starting money", func(b config.Balance) float64 { return b.StartingMoney }},
	}

	var b strings.Builder
	b.WriteString("# Balance Presets\n\n")
	b.WriteString("| Setting |")
	for _, p := range presets {
		b.WriteString(" " + p.name + " |")
	}
	b.WriteString("\n| --- |" + strings.Repeat(" --- |", len(presets)) + "\n")
	for _, row := range rows {
		b.WriteString("| " + row.label + " |")
		for _, p := range presets {
			b.WriteString(" " + formatFloat(row.value(p.b)) + " |")
		}
		b.WriteString("\n")
	}
	return docFile{Name: "balance.md", Title: "Balance Presets", Content: b.String()}
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
