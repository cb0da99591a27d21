// Package export writes the active catalog as a snapshot of CSV or Parquet
// tables plus a metadata document.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/lucsky/cuid"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/chrisdamba/foodcatalogsim/internal/cloudwriter"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
	"github.com/chrisdamba/foodcatalogsim/internal/textutil"
)

const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"

	CategoriesDir        = "categories"
	RestaurantsDir       = "restaurants"
	ProductsDir          = "products"
	CategoriesFileName   = "categories"
	RestaurantFilePrefix = "restaurants_"
	ProductFilePrefix    = "products_"
	MetadataFile         = "metadata.json"
)

type TableStats struct {
	TotalSaved      int    `json:"total_saved"`
	TotalDuplicates int    `json:"total_duplicates"`
	LastUpdate      string `json:"last_update"`
}

type Metadata struct {
	RunID      string                `json:"run_id"`
	CreatedAt  time.Time             `json:"created_at"`
	Statistics map[string]TableStats `json:"statistics"`
}

// Summary lists where each file of a snapshot was written.
type Summary struct {
	Metadata Metadata `json:"metadata"`
	Files    []string `json:"files"`
}

type Exporter struct {
	factory cloudwriter.CloudWriterFactory
	format  string
	now     func() time.Time
	runID   string
	logger  *slog.Logger
}

type Option func(*Exporter)

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) { e.logger = logger }
}

// WithRunID stamps the snapshot with an existing run id instead of a fresh one.
func WithRunID(id string) Option {
	return func(e *Exporter) { e.runID = id }
}

func NewExporter(factory cloudwriter.CloudWriterFactory, format string, opts ...Option) (*Exporter, error) {
	switch format {
	case "":
		format = FormatCSV
	case FormatCSV, FormatParquet:
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	e := &Exporter{
		factory: factory,
		format:  format,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.runID == "" {
		e.runID = cuid.New()
	}
	return e, nil
}

// Export writes restaurants and products, deduplicated by natural key, into the
// snapshot layout and returns where everything went.
func (e *Exporter) Export(ctx context.Context, restaurants []*models.Restaurant, products []*models.Product) (*Summary, error) {
	restaurants, restaurantDups := dedupeRestaurants(restaurants)
	products, productDups := dedupeProducts(products)

	byID := make(map[int64]*models.Restaurant, len(restaurants))
	for _, r := range restaurants {
		if r.HasID() {
			byID[r.ID] = r
		}
	}

	summary := &Summary{}
	write := func(objectPath string, fn func(string) error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(objectPath); err != nil {
			return fmt.Errorf("failed to export %s: %w", objectPath, err)
		}
		location := e.factory.Location(objectPath)
		summary.Files = append(summary.Files, location)
		e.logger.Debug("wrote snapshot file", "location", location)
		return nil
	}

	categories := categoryRows(restaurants, products, byID)
	if err := write(e.objectPath(CategoriesDir, CategoriesFileName), func(p string) error {
		return writeTable(e, p, CategoryHeader, categories)
	}); err != nil {
		return nil, err
	}

	restaurantGroups := make(map[string][]restaurantRow)
	for _, r := range restaurants {
		slug := textutil.Slug(r.Category.String())
		restaurantGroups[slug] = append(restaurantGroups[slug], newRestaurantRow(r))
	}
	for _, slug := range sortedKeys(restaurantGroups) {
		rows := restaurantGroups[slug]
		if err := write(e.objectPath(RestaurantsDir, RestaurantFilePrefix+slug), func(p string) error {
			return writeTable(e, p, RestaurantHeader, rows)
		}); err != nil {
			return nil, err
		}
	}

	byRestaurant := make(map[int64][]productRow)
	for _, p := range products {
		row := newProductRow(p)
		if row.RestaurantName == "" {
			if r, ok := byID[p.RestaurantID]; ok {
				row.RestaurantName = r.Name
			}
		}
		byRestaurant[p.RestaurantID] = append(byRestaurant[p.RestaurantID], row)
	}
	productGroups := groupBySlug(byRestaurant)
	for _, slug := range sortedKeys(productGroups) {
		rows := productGroups[slug]
		if err := write(e.objectPath(ProductsDir, ProductFilePrefix+slug), func(p string) error {
			return writeTable(e, p, ProductHeader, rows)
		}); err != nil {
			return nil, err
		}
	}

	summary.Metadata = Metadata{
		RunID:     e.runID,
		CreatedAt: e.now().UTC(),
		Statistics: map[string]TableStats{
			models.TableRestaurants: {
				TotalSaved:      len(restaurants),
				TotalDuplicates: restaurantDups,
				LastUpdate:      formatTime(latestRestaurantUpdate(restaurants)),
			},
			models.TableProducts: {
				TotalSaved:      len(products),
				TotalDuplicates: productDups,
				LastUpdate:      formatTime(latestProductUpdate(products)),
			},
		},
	}
	if err := write(MetadataFile, func(p string) error {
		return e.writeMetadata(p, summary.Metadata)
	}); err != nil {
		return nil, err
	}

	e.logger.Info("snapshot exported",
		"format", e.format,
		"restaurants", len(restaurants),
		"products", len(products),
		"files", len(summary.Files))
	return summary, nil
}

func (e *Exporter) objectPath(dir, name string) string {
	return path.Join(dir, name+"."+e.format)
}

type tabular interface {
	restaurantRow | productRow | categoryRow
	record() []string
}

func writeTable[T tabular](e *Exporter, objectPath string, header []string, rows []T) error {
	if e.format == FormatParquet {
		return writeParquet(e, objectPath, rows)
	}

	w, err := e.factory.NewWriter(objectPath)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		w.Close()
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.record()); err != nil {
			w.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func writeParquet[T tabular](e *Exporter, objectPath string, rows []T) error {
	fw, err := e.parquetFile(objectPath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(T), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			fw.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return fw.Close()
}

// parquetFile opens local snapshots through parquet-go-source and everything
// else through the cloud writer adapter.
func (e *Exporter) parquetFile(objectPath string) (source.ParquetFile, error) {
	if lf, ok := e.factory.(*cloudwriter.LocalWriterFactory); ok {
		filePath := lf.Location(objectPath)
		if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
			return nil, err
		}
		return local.NewLocalFileWriter(filePath)
	}
	w, err := e.factory.NewWriter(objectPath)
	if err != nil {
		return nil, err
	}
	return NewCloudParquetFile(w), nil
}

func (e *Exporter) writeMetadata(objectPath string, metadata Metadata) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return err
	}
	w, err := e.factory.NewWriter(objectPath)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func categoryRows(restaurants []*models.Restaurant, products []*models.Product, byID map[int64]*models.Restaurant) []categoryRow {
	type key struct{ name, city string }
	counts := make(map[key]*categoryRow)
	get := func(r *models.Restaurant) *categoryRow {
		k := key{r.Category.String(), CityOf(r.Address)}
		row, ok := counts[k]
		if !ok {
			row = &categoryRow{Name: k.name, City: k.city}
			counts[k] = row
		}
		return row
	}
	for _, r := range restaurants {
		get(r).Restaurants++
	}
	for _, p := range products {
		if r, ok := byID[p.RestaurantID]; ok {
			get(r).Products++
		}
	}

	rows := make([]categoryRow, 0, len(counts))
	for _, row := range counts {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].City != rows[j].City {
			return rows[i].City < rows[j].City
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// dedupeRestaurants keeps the most recently updated record per (name, category).
func dedupeRestaurants(restaurants []*models.Restaurant) ([]*models.Restaurant, int) {
	type key struct {
		name     string
		category models.Category
	}
	index := make(map[key]int, len(restaurants))
	out := make([]*models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r == nil {
			continue
		}
		k := key{r.Name, r.Category}
		if i, ok := index[k]; ok {
			if r.UpdatedAt.After(out[i].UpdatedAt) {
				out[i] = r
			}
			continue
		}
		index[k] = len(out)
		out = append(out, r)
	}
	return out, countNonNil(restaurants) - len(out)
}

// dedupeProducts keeps the most recently updated record per (name, restaurant_id).
func dedupeProducts(products []*models.Product) ([]*models.Product, int) {
	type key struct {
		name         string
		restaurantID int64
	}
	index := make(map[key]int, len(products))
	out := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		k := key{p.Name, p.RestaurantID}
		if i, ok := index[k]; ok {
			if p.UpdatedAt.After(out[i].UpdatedAt) {
				out[i] = p
			}
			continue
		}
		index[k] = len(out)
		out = append(out, p)
	}
	return out, countNonNil(products) - len(out)
}

func countNonNil[T any](records []*T) int {
	n := 0
	for _, r := range records {
		if r != nil {
			n++
		}
	}
	return n
}

func latestRestaurantUpdate(restaurants []*models.Restaurant) time.Time {
	var latest time.Time
	for _, r := range restaurants {
		if r.UpdatedAt.After(latest) {
			latest = r.UpdatedAt
		}
	}
	return latest
}

func latestProductUpdate(products []*models.Product) time.Time {
	var latest time.Time
	for _, p := range products {
		if p.UpdatedAt.After(latest) {
			latest = p.UpdatedAt
		}
	}
	return latest
}

// groupBySlug names one products file per restaurant. Restaurants sharing a
// name across categories keep the plain slug for the lowest id and get the
// id appended otherwise.
func groupBySlug(byRestaurant map[int64][]productRow) map[string][]productRow {
	ids := make([]int64, 0, len(byRestaurant))
	for id := range byRestaurant {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	groups := make(map[string][]productRow, len(ids))
	for _, id := range ids {
		rows := byRestaurant[id]
		slug := textutil.Slug(rows[0].RestaurantName)
		if _, taken := groups[slug]; taken {
			slug = fmt.Sprintf("%s_%d", slug, id)
		}
		groups[slug] = rows
	}
	return groups
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
