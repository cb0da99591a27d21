package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisdamba/foodcatalogsim/internal/cloudwriter"
	"github.com/chrisdamba/foodcatalogsim/internal/export"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

var now = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func writeSnapshot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	exporter, err := export.NewExporter(cloudwriter.NewLocalWriterFactory(dir), export.FormatCSV,
		export.WithClock(func() time.Time { return now }), export.WithRunID("run-42"))
	require.NoError(t, err)

	address := "Av. Paulista, 1500 - São Paulo, SP"
	restaurants := []*models.Restaurant{
		{ID: 1, Name: "Pizza Palace", Category: models.CategoryPizza, Rating: 4.5, DeliveryFee: 0, Address: address, ImageURL: "https://example.com/a.jpg", UpdatedAt: now},
		{ID: 2, Name: "Forno Nobre", Category: models.CategoryPizza, Rating: 3.9, DeliveryFee: 5.99, Address: address, UpdatedAt: now},
		{ID: 3, Name: "Doce Vida", Category: models.CategoryDoces, Rating: 4.5, DeliveryFee: 2.99, Address: "Rua A, 10 - Campinas, SP", ImageURL: "https://example.com/c.jpg", UpdatedAt: now},
	}
	products := []*models.Product{
		{ID: 1, Name: "Margherita", Price: 45, Category: models.CategoryPizza, RestaurantID: 1},
		{ID: 2, Name: "Calabresa", Price: 52, Category: models.CategoryPizza, RestaurantID: 1},
		{ID: 3, Name: "Salada Caprese", Price: 19.9, Category: models.CategorySaladas, RestaurantID: 1},
		{ID: 4, Name: "Portuguesa", Price: 49, Category: models.CategoryPizza, RestaurantID: 2},
		{ID: 5, Name: "Brigadeiro", Price: 4.5, Category: models.CategoryDoces, RestaurantID: 3},
	}
	_, err = exporter.Export(context.Background(), restaurants, products)
	require.NoError(t, err)
	return dir
}

func TestBuildFromExportedSnapshot(t *testing.T) {
	dir := writeSnapshot(t)
	r, err := Build(dir, now)
	require.NoError(t, err)

	require.NotNil(t, r.Categories)
	assert.Equal(t, 2, r.Categories.Total)
	assert.Equal(t, map[string]int{"São Paulo": 1, "Campinas": 1}, r.Categories.ByCity)

	require.NotNil(t, r.Restaurants)
	assert.Equal(t, 3, r.Restaurants.Total)
	assert.Equal(t, map[string]int{"Pizza": 2, "Doces": 1}, r.Restaurants.ByCategory)
	require.NotNil(t, r.Restaurants.Rating)
	assert.InDelta(t, 4.3, r.Restaurants.Rating.Average, 1e-9)
	assert.Equal(t, 3.9, r.Restaurants.Rating.Min)
	assert.Equal(t, 4.5, r.Restaurants.Rating.Max)
	assert.Equal(t, 2, r.Restaurants.Rating.Distribution["4.5"])
	assert.Equal(t, 1, r.Restaurants.FreeDelivery)
	assert.Equal(t, 2, r.Restaurants.PaidDelivery)
	assert.Equal(t, 2, r.Restaurants.WithImage)

	require.NotNil(t, r.Products)
	assert.Equal(t, 5, r.Products.Total)
	assert.Equal(t, 3, r.Products.Restaurants)
	assert.Equal(t, NamedCount{Name: "Pizza Palace", Count: 3}, r.Products.TopRestaurants[0])
	assert.Equal(t, NamedCount{Name: "pizza", Count: 3}, r.Products.TopCategories[0])

	require.NotNil(t, r.Products.Price)
	assert.Equal(t, 4.5, r.Products.Price.Min)
	assert.Equal(t, 52.0, r.Products.Price.Max)
	assert.Equal(t, []PriceBand{
		{Label: "up to R$ 10", Count: 1},
		{Label: "R$ 10-20", Count: 1},
		{Label: "R$ 20-50", Count: 2},
		{Label: "above R$ 50", Count: 1},
	}, r.Products.Price.Bands)

	require.NotNil(t, r.Metadata)
	assert.Equal(t, "run-42", r.Metadata.RunID)
	assert.Equal(t, 5, r.Metadata.Statistics[models.TableProducts].TotalSaved)
}

func TestBuildEmptyDirectory(t *testing.T) {
	r, err := Build(t.TempDir(), now)
	require.NoError(t, err)
	assert.Nil(t, r.Categories)
	assert.Nil(t, r.Restaurants)
	assert.Nil(t, r.Products)
	assert.Nil(t, r.Metadata)

	var buf bytes.Buffer
	r.Print(&buf)
	assert.Contains(t, buf.String(), "categories file not found")
	assert.Contains(t, buf.String(), "metadata file not found")
}

func TestBuildRejectsCorruptMetadata(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, export.MetadataFile), []byte("{"), 0o644))
	_, err := Build(dir, now)
	assert.ErrorContains(t, err, "invalid metadata file")
}

func TestPrintIncludesSections(t *testing.T) {
	r, err := Build(writeSnapshot(t), now)
	require.NoError(t, err)

	var buf bytes.Buffer
	r.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Total restaurants: 3")
	assert.Contains(t, out, "free: 1 (33.3%)")
	assert.Contains(t, out, "Pizza Palace: 3 products")
	assert.Contains(t, out, "average: R$ 34.08")
	assert.Contains(t, out, "Run: run-42")
}

func TestParsePrice(t *testing.T) {
	v, ok := parsePrice("R$ 12,90")
	assert.True(t, ok)
	assert.InDelta(t, 12.9, v, 1e-9)

	_, ok = parsePrice("Não informado")
	assert.False(t, ok)
	_, ok = parsePrice("0")
	assert.False(t, ok)
	_, ok = parsePrice("1500")
	assert.False(t, ok)
}
