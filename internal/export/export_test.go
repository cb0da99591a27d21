package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"github.com/chrisdamba/foodcatalogsim/internal/cloudwriter"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func sampleCatalog() ([]*models.Restaurant, []*models.Product) {
	older := fixedNow.Add(-time.Hour)
	restaurants := []*models.Restaurant{
		{ID: 1, Name: "Pizza Palace", Category: models.CategoryPizza, Rating: 4.5, DeliveryFee: 0,
			DeliveryTime: "30 min", Address: "Av. Paulista, 1000 - São Paulo, SP", Tags: []string{"Pizza", "Forno a Lenha"},
			IsOpen: true, ImageURL: "https://example.com/restaurants/a.jpg", UpdatedAt: older},
		{ID: 1, Name: "Pizza Palace", Category: models.CategoryPizza, Rating: 4.6, DeliveryFee: 0,
			DeliveryTime: "30 min", Address: "Av. Paulista, 1000 - São Paulo, SP", UpdatedAt: fixedNow},
		{ID: 2, Name: "Sabor Árabe", Category: models.CategoryArabe, Rating: 4.1, DeliveryFee: 4.99,
			DeliveryTime: "40 min", Address: "Rua Augusta, 200 - São Paulo, SP", UpdatedAt: older},
	}
	products := []*models.Product{
		{ID: 10, Name: "Pizza Margherita", Price: 45.9, OriginalPrice: 50, Category: models.CategoryPizza,
			RestaurantID: 1, Tags: []string{"Tradicional"}, UpdatedAt: older},
		{ID: 11, Name: "Esfiha", Price: 6.5, OriginalPrice: 6.5, Category: models.CategoryArabe,
			RestaurantID: 2, RestaurantName: "Sabor Árabe", UpdatedAt: older},
		{ID: 11, Name: "Esfiha", Price: 6.5, OriginalPrice: 6.5, Category: models.CategoryArabe,
			RestaurantID: 2, RestaurantName: "Sabor Árabe", UpdatedAt: older},
	}
	return restaurants, products
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportCSVLayout(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(cloudwriter.NewLocalWriterFactory(dir), FormatCSV,
		WithClock(func() time.Time { return fixedNow }), WithRunID("run-1"))
	require.NoError(t, err)

	restaurants, products := sampleCatalog()
	summary, err := exporter.Export(context.Background(), restaurants, products)
	require.NoError(t, err)
	assert.Len(t, summary.Files, 6)

	categories := readCSV(t, filepath.Join(dir, "categories", "categories.csv"))
	assert.Equal(t, CategoryHeader, categories[0])
	assert.Equal(t, [][]string{
		{"pizza", "São Paulo", "1", "1"},
		{"árabe", "São Paulo", "1", "1"},
	}, categories[1:])

	pizza := readCSV(t, filepath.Join(dir, "restaurants", "restaurants_pizza.csv"))
	require.Len(t, pizza, 2)
	assert.Equal(t, RestaurantHeader, pizza[0])
	assert.Equal(t, "4.6", pizza[1][4], "newest duplicate wins")
	assert.FileExists(t, filepath.Join(dir, "restaurants", "restaurants_arabe.csv"))

	margherita := readCSV(t, filepath.Join(dir, "products", "products_pizza_palace.csv"))
	require.Len(t, margherita, 2)
	assert.Equal(t, "Pizza Palace", margherita[1][7])
	assert.Equal(t, "45.90", margherita[1][3])
	esfiha := readCSV(t, filepath.Join(dir, "products", "products_sabor_arabe.csv"))
	assert.Len(t, esfiha, 2)

	data, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	require.NoError(t, err)
	var metadata Metadata
	require.NoError(t, json.Unmarshal(data, &metadata))
	assert.Equal(t, "run-1", metadata.RunID)
	assert.True(t, fixedNow.Equal(metadata.CreatedAt))
	assert.Equal(t, TableStats{TotalSaved: 2, TotalDuplicates: 1, LastUpdate: "2026-03-14T12:00:00Z"},
		metadata.Statistics[models.TableRestaurants])
	assert.Equal(t, 1, metadata.Statistics[models.TableProducts].TotalDuplicates)
}

func TestExportSeparatesSameNamedRestaurants(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(cloudwriter.NewLocalWriterFactory(dir), FormatCSV)
	require.NoError(t, err)

	address := "Rua Augusta, 10 - São Paulo, SP"
	restaurants := []*models.Restaurant{
		{ID: 3, Name: "Casa Nobre", Category: models.CategoryPizza, Address: address},
		{ID: 7, Name: "Casa Nobre", Category: models.CategoryDoces, Address: address},
	}
	products := []*models.Product{
		{ID: 1, Name: "Calabresa", RestaurantID: 3, Category: models.CategoryPizza},
		{ID: 2, Name: "Brigadeiro", RestaurantID: 7, Category: models.CategoryDoces},
		{ID: 3, Name: "Beijinho", RestaurantID: 7, Category: models.CategoryDoces},
	}
	_, err = exporter.Export(context.Background(), restaurants, products)
	require.NoError(t, err)

	pizza := readCSV(t, filepath.Join(dir, "products", "products_casa_nobre.csv"))
	require.Len(t, pizza, 2)
	assert.Equal(t, "Calabresa", pizza[1][1])

	doces := readCSV(t, filepath.Join(dir, "products", "products_casa_nobre_7.csv"))
	assert.Len(t, doces, 3)
}

func TestExportParquetLocal(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(cloudwriter.NewLocalWriterFactory(dir), FormatParquet)
	require.NoError(t, err)

	restaurants, products := sampleCatalog()
	_, err = exporter.Export(context.Background(), restaurants, products)
	require.NoError(t, err)

	fr, err := local.NewLocalFileReader(filepath.Join(dir, "restaurants", "restaurants_pizza.parquet"))
	require.NoError(t, err)
	defer fr.Close()
	pr, err := reader.NewParquetReader(fr, new(restaurantRow), 1)
	require.NoError(t, err)
	defer pr.ReadStop()

	require.Equal(t, int64(1), pr.GetNumRows())
	rows := make([]restaurantRow, 1)
	require.NoError(t, pr.Read(&rows))
	assert.Equal(t, "Pizza Palace", rows[0].Name)
	assert.Equal(t, "São Paulo", rows[0].City)
}

type memoryObject struct {
	bytes.Buffer
	closed bool
}

func (m *memoryObject) Close() error {
	m.closed = true
	return nil
}

type memoryFactory struct {
	mu      sync.Mutex
	objects map[string]*memoryObject
}

func (f *memoryFactory) NewWriter(objectPath string) (cloudwriter.CloudWriter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj := &memoryObject{}
	f.objects[objectPath] = obj
	return obj, nil
}

func (f *memoryFactory) Location(objectPath string) string {
	return "mem://" + objectPath
}

func TestExportParquetThroughCloudWriter(t *testing.T) {
	factory := &memoryFactory{objects: map[string]*memoryObject{}}
	exporter, err := NewExporter(factory, FormatParquet)
	require.NoError(t, err)

	restaurants, products := sampleCatalog()
	summary, err := exporter.Export(context.Background(), restaurants, products)
	require.NoError(t, err)
	assert.Contains(t, summary.Files, "mem://products/products_pizza_palace.parquet")

	obj := factory.objects["restaurants/restaurants_arabe.parquet"]
	require.NotNil(t, obj)
	assert.True(t, obj.closed)
	// parquet files start and end with the PAR1 magic
	assert.True(t, bytes.HasPrefix(obj.Bytes(), []byte("PAR1")))
	assert.True(t, bytes.HasSuffix(obj.Bytes(), []byte("PAR1")))
}

func TestExportStopsOnCanceledContext(t *testing.T) {
	factory := &memoryFactory{objects: map[string]*memoryObject{}}
	exporter, err := NewExporter(factory, FormatCSV)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	restaurants, products := sampleCatalog()
	_, err = exporter.Export(ctx, restaurants, products)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, factory.objects)
}

func TestNewExporterRejectsUnknownFormat(t *testing.T) {
	_, err := NewExporter(cloudwriter.NewLocalWriterFactory(t.TempDir()), "xlsx")
	assert.Error(t, err)
}

func TestCityOf(t *testing.T) {
	assert.Equal(t, "São Paulo", CityOf("Rua Augusta, 200 - São Paulo, SP"))
	assert.Equal(t, "Campinas", CityOf("Rua A, 1 - Campinas"))
	assert.Equal(t, UnknownCity, CityOf("Rua sem cidade"))
	assert.Equal(t, UnknownCity, CityOf("Rua, 1 - , SP"))
}
