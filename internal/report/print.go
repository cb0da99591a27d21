package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const rule = "=================================================="

// Print renders r as console text.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "Catalog snapshot report")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Generated at: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Data dir: %s\n", r.DataDir)

	r.printCategories(w)
	r.printRestaurants(w)
	r.printProducts(w)
	r.printMetadata(w)

	fmt.Fprintln(w, rule)
}

func (r *Report) printCategories(w io.Writer) {
	fmt.Fprintln(w, "\n=== Categories ===")
	if r.Categories == nil {
		fmt.Fprintln(w, "categories file not found")
		return
	}
	fmt.Fprintf(w, "Total categories: %d\n", r.Categories.Total)
	fmt.Fprintf(w, "Cities covered: %d\n", len(r.Categories.ByCity))
	for _, city := range sortedByCount(r.Categories.ByCity) {
		fmt.Fprintf(w, "  %s: %d categories\n", city, r.Categories.ByCity[city])
	}
	fmt.Fprintf(w, "Names: %s\n", strings.Join(r.Categories.Names, ", "))
}

func (r *Report) printRestaurants(w io.Writer) {
	fmt.Fprintln(w, "\n=== Restaurants ===")
	s := r.Restaurants
	if s == nil {
		fmt.Fprintln(w, "no restaurant files found")
		return
	}
	fmt.Fprintf(w, "Total restaurants: %d\n", s.Total)
	fmt.Fprintf(w, "Categories with data: %d\n", len(s.ByCategory))
	for _, name := range sortedByCount(s.ByCategory) {
		fmt.Fprintf(w, "  %s: %d restaurants\n", name, s.ByCategory[name])
	}

	if s.Rating != nil {
		fmt.Fprintln(w, "Ratings:")
		fmt.Fprintf(w, "  average: %.2f\n", s.Rating.Average)
		fmt.Fprintf(w, "  highest: %.1f\n", s.Rating.Max)
		fmt.Fprintf(w, "  lowest: %.1f\n", s.Rating.Min)
		keys := make([]string, 0, len(s.Rating.Distribution))
		for k := range s.Rating.Distribution {
			keys = append(keys, k)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
		for _, k := range keys {
			count := s.Rating.Distribution[k]
			fmt.Fprintf(w, "    %s: %d (%.1f%%)\n", k, count, percent(count, s.Rating.Count))
		}
	}

	if fees := s.FreeDelivery + s.PaidDelivery; fees > 0 {
		fmt.Fprintln(w, "Delivery fees:")
		fmt.Fprintf(w, "  free: %d (%.1f%%)\n", s.FreeDelivery, percent(s.FreeDelivery, fees))
		fmt.Fprintf(w, "  paid: %d (%.1f%%)\n", s.PaidDelivery, percent(s.PaidDelivery, fees))
	}
	fmt.Fprintf(w, "Restaurants with image: %d/%d (%.1f%%)\n", s.WithImage, s.Total, percent(s.WithImage, s.Total))
}

func (r *Report) printProducts(w io.Writer) {
	fmt.Fprintln(w, "\n=== Products ===")
	s := r.Products
	if s == nil {
		fmt.Fprintln(w, "no product files found")
		return
	}
	fmt.Fprintf(w, "Total products: %d\n", s.Total)
	fmt.Fprintf(w, "Restaurants with products: %d\n", s.Restaurants)
	fmt.Fprintln(w, "Top restaurants by variety:")
	for _, nc := range s.TopRestaurants {
		fmt.Fprintf(w, "  %s: %d products\n", nc.Name, nc.Count)
	}

	if s.Price != nil {
		fmt.Fprintln(w, "Prices:")
		fmt.Fprintf(w, "  average: R$ %.2f\n", s.Price.Average)
		fmt.Fprintf(w, "  lowest: R$ %.2f\n", s.Price.Min)
		fmt.Fprintf(w, "  highest: R$ %.2f\n", s.Price.Max)
		for _, band := range s.Price.Bands {
			fmt.Fprintf(w, "  %s: %d (%.1f%%)\n", band.Label, band.Count, percent(band.Count, s.Price.Count))
		}
	}

	fmt.Fprintln(w, "Top product categories:")
	for _, nc := range s.TopCategories {
		fmt.Fprintf(w, "  %s: %d products\n", nc.Name, nc.Count)
	}
}

func (r *Report) printMetadata(w io.Writer) {
	fmt.Fprintln(w, "\n=== Metadata ===")
	if r.Metadata == nil {
		fmt.Fprintln(w, "metadata file not found")
		return
	}
	tables := make([]string, 0, len(r.Metadata.Statistics))
	for table := range r.Metadata.Statistics {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		stats := r.Metadata.Statistics[table]
		lastUpdate := stats.LastUpdate
		if lastUpdate == "" {
			lastUpdate = "N/A"
		}
		fmt.Fprintf(w, "%s:\n", table)
		fmt.Fprintf(w, "  total saved: %d\n", stats.TotalSaved)
		fmt.Fprintf(w, "  duplicates: %d\n", stats.TotalDuplicates)
		fmt.Fprintf(w, "  last update: %s\n", lastUpdate)
	}
	fmt.Fprintf(w, "Run: %s, created at %s\n", r.Metadata.RunID, r.Metadata.CreatedAt.Format("2006-01-02 15:04:05"))
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func sortedByCount(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for _, nc := range top(counts, len(counts)) {
		names = append(names, nc.Name)
	}
	return names
}
