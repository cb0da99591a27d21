// Package report summarizes a snapshot written by the export package.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chrisdamba/foodcatalogsim/internal/export"
	"github.com/chrisdamba/foodcatalogsim/internal/textutil"
)

const (
	topN              = 10
	uncategorized     = "Não categorizado"
	maxPlausiblePrice = 1000
)

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CategoryStats struct {
	Total  int            `json:"total"`
	Names  []string       `json:"names"`
	ByCity map[string]int `json:"by_city"`
}

type RatingStats struct {
	Average      float64        `json:"average"`
	Min          float64        `json:"min"`
	Max          float64        `json:"max"`
	Count        int            `json:"count"`
	Distribution map[string]int `json:"distribution"` // keyed by rating rounded to one decimal
}

type RestaurantStats struct {
	Total        int            `json:"total"`
	ByCategory   map[string]int `json:"by_category"`
	Rating       *RatingStats   `json:"rating,omitempty"`
	FreeDelivery int            `json:"free_delivery"`
	PaidDelivery int            `json:"paid_delivery"`
	WithImage    int            `json:"with_image"`
}

type PriceBand struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type PriceStats struct {
	Average float64     `json:"average"`
	Min     float64     `json:"min"`
	Max     float64     `json:"max"`
	Count   int         `json:"count"`
	Bands   []PriceBand `json:"bands"`
}

type ProductStats struct {
	Total          int          `json:"total"`
	Restaurants    int          `json:"restaurants"`
	TopRestaurants []NamedCount `json:"top_restaurants"`
	Price          *PriceStats  `json:"price,omitempty"`
	TopCategories  []NamedCount `json:"top_categories"`
}

type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	DataDir     string           `json:"data_dir"`
	Categories  *CategoryStats   `json:"categories,omitempty"`
	Restaurants *RestaurantStats `json:"restaurants,omitempty"`
	Products    *ProductStats    `json:"products,omitempty"`
	Metadata    *export.Metadata `json:"metadata,omitempty"`
}

// Build reads the CSV snapshot under dir. Sections whose files are missing stay nil.
func Build(dir string, now time.Time) (*Report, error) {
	r := &Report{GeneratedAt: now, DataDir: dir}

	var err error
	if r.Categories, err = buildCategories(dir); err != nil {
		return nil, err
	}
	if r.Restaurants, err = buildRestaurants(dir); err != nil {
		return nil, err
	}
	if r.Products, err = buildProducts(dir); err != nil {
		return nil, err
	}
	if r.Metadata, err = readMetadata(dir); err != nil {
		return nil, err
	}
	return r, nil
}

func buildCategories(dir string) (*CategoryStats, error) {
	rows, err := readTable(filepath.Join(dir, export.CategoriesDir, export.CategoriesFileName+"."+export.FormatCSV))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	stats := &CategoryStats{ByCity: make(map[string]int)}
	seen := make(map[string]bool)
	for _, row := range rows {
		stats.Total++
		stats.ByCity[row["city"]]++
		if name := row["name"]; !seen[name] {
			seen[name] = true
			stats.Names = append(stats.Names, name)
		}
	}
	return stats, nil
}

func buildRestaurants(dir string) (*RestaurantStats, error) {
	files, err := tableFiles(filepath.Join(dir, export.RestaurantsDir), export.RestaurantFilePrefix)
	if err != nil || len(files) == 0 {
		return nil, err
	}

	stats := &RestaurantStats{ByCategory: make(map[string]int)}
	var ratings []float64
	for _, file := range files {
		rows, err := readTable(file)
		if err != nil {
			return nil, err
		}
		stats.ByCategory[tableName(file, export.RestaurantFilePrefix)] += len(rows)
		stats.Total += len(rows)

		for _, row := range rows {
			if rating, err := strconv.ParseFloat(row["rating"], 64); err == nil && rating > 0 {
				ratings = append(ratings, rating)
			}
			if fee, ok := row["delivery_fee"]; ok && fee != "" {
				if isFreeDelivery(fee) {
					stats.FreeDelivery++
				} else {
					stats.PaidDelivery++
				}
			}
			if url := strings.TrimSpace(row["image_url"]); url != "" && url != "None" {
				stats.WithImage++
			}
		}
	}
	stats.Rating = ratingStats(ratings)
	return stats, nil
}

func isFreeDelivery(fee string) bool {
	if strings.Contains(strings.ToLower(fee), "grátis") {
		return true
	}
	v, err := strconv.ParseFloat(fee, 64)
	return err == nil && v == 0
}

func ratingStats(ratings []float64) *RatingStats {
	if len(ratings) == 0 {
		return nil
	}
	stats := &RatingStats{Min: math.Inf(1), Max: math.Inf(-1), Count: len(ratings), Distribution: make(map[string]int)}
	sum := 0.0
	for _, v := range ratings {
		sum += v
		stats.Min = math.Min(stats.Min, v)
		stats.Max = math.Max(stats.Max, v)
		stats.Distribution[strconv.FormatFloat(v, 'f', 1, 64)]++
	}
	stats.Average = sum / float64(len(ratings))
	return stats
}

func buildProducts(dir string) (*ProductStats, error) {
	files, err := tableFiles(filepath.Join(dir, export.ProductsDir), export.ProductFilePrefix)
	if err != nil || len(files) == 0 {
		return nil, err
	}

	stats := &ProductStats{}
	perRestaurant := make(map[string]int)
	categories := make(map[string]int)
	var prices []float64
	for _, file := range files {
		rows, err := readTable(file)
		if err != nil {
			return nil, err
		}
		perRestaurant[tableName(file, export.ProductFilePrefix)] += len(rows)
		stats.Total += len(rows)

		for _, row := range rows {
			if price, ok := parsePrice(row["price"]); ok {
				prices = append(prices, price)
			}
			category := strings.TrimSpace(row["category"])
			if category == "" {
				category = uncategorized
			}
			categories[category]++
		}
	}
	stats.Restaurants = len(perRestaurant)
	stats.TopRestaurants = top(perRestaurant, topN)
	stats.TopCategories = top(categories, topN)
	stats.Price = priceStats(prices)
	return stats, nil
}

// parsePrice accepts plain decimals and "R$ 12,90" style values inside (0, 1000).
func parsePrice(raw string) (float64, bool) {
	cleaned := strings.NewReplacer("R$", "", " ", "", ",", ".").Replace(raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v <= 0 || v >= maxPlausiblePrice {
		return 0, false
	}
	return v, true
}

func priceStats(prices []float64) *PriceStats {
	if len(prices) == 0 {
		return nil
	}
	stats := &PriceStats{Min: math.Inf(1), Max: math.Inf(-1), Count: len(prices)}
	bands := []PriceBand{{Label: "up to R$ 10"}, {Label: "R$ 10-20"}, {Label: "R$ 20-50"}, {Label: "above R$ 50"}}
	sum := 0.0
	for _, p := range prices {
		sum += p
		stats.Min = math.Min(stats.Min, p)
		stats.Max = math.Max(stats.Max, p)
		switch {
		case p <= 10:
			bands[0].Count++
		case p <= 20:
			bands[1].Count++
		case p <= 50:
			bands[2].Count++
		default:
			bands[3].Count++
		}
	}
	stats.Average = sum / float64(len(prices))
	stats.Bands = bands
	return stats
}

func readMetadata(dir string) (*export.Metadata, error) {
	data, err := os.ReadFile(filepath.Join(dir, export.MetadataFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var metadata export.Metadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("invalid metadata file: %w", err)
	}
	return &metadata, nil
}

func tableFiles(dir, prefix string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, prefix+"*."+export.FormatCSV))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// tableName turns ".../restaurants_sabor_arabe.csv" into "Sabor Arabe".
func tableName(file, prefix string) string {
	stem := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return textutil.Unslug(strings.TrimPrefix(stem, prefix))
}

func readTable(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func top(counts map[string]int, n int) []NamedCount {
	out := make([]NamedCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NamedCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
