package sqlrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/chrisdamba/foodcatalogsim/internal/database"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

type StoreTestSuite struct {
	suite.Suite
	db    *database.DB
	store *Store
	now   time.Time
}

func (s *StoreTestSuite) SetupTest() {
	ctx := context.Background()
	db, err := database.Open(ctx, models.DatabaseConfig{Driver: database.DriverSQLite, DSN: ":memory:"})
	s.Require().NoError(err)
	s.Require().NoError(database.EnsureSchema(ctx, db))

	s.db = db
	s.now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.store = NewFromDB(db, WithClock(func() time.Time { return s.now }))
}

func (s *StoreTestSuite) TearDownTest() {
	s.db.Close()
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func pizzaPalace() *models.Restaurant {
	return &models.Restaurant{
		Name:         "Pizza Palace",
		Category:     models.CategoryPizza,
		Rating:       4.2,
		DeliveryFee:  3.99,
		DeliveryTime: "30 min",
		Address:      "Av. Paulista, 1000 - São Paulo, SP",
		Tags:         []string{"Italiana", "Delivery"},
		IsOpen:       true,
		ImageURL:     "https://example.com/restaurants/abc.jpg",
	}
}

func (s *StoreTestSuite) TestSaveRestaurantsIsIdempotentByNaturalKey() {
	ctx := context.Background()

	first, err := s.store.SaveRestaurants(ctx, []*models.Restaurant{pizzaPalace()})
	s.Require().NoError(err)
	s.Equal(models.ReconciliationResult{Inserted: 1, TotalProcessed: 1}, first)

	for i := 0; i < 3; i++ {
		again := pizzaPalace()
		again.Rating = 4.8
		result, err := s.store.SaveRestaurants(ctx, []*models.Restaurant{again})
		s.Require().NoError(err)
		s.Equal(models.ReconciliationResult{Updated: 1, TotalProcessed: 1}, result)
	}

	active := s.store.LoadActiveRestaurants(ctx)
	s.Require().Len(active, 1)
	s.Equal(4.8, active[0].Rating)
	s.Equal([]string{"Italiana", "Delivery"}, active[0].Tags)
	s.True(active[0].IsActive)
	s.True(active[0].CreatedAt.Equal(s.now))
}

func (s *StoreTestSuite) TestSaveRestaurantsAssignsIDs() {
	ctx := context.Background()
	a := pizzaPalace()
	b := pizzaPalace()
	b.Category = models.CategoryItaliana

	result, err := s.store.SaveRestaurants(ctx, []*models.Restaurant{a, b})
	s.Require().NoError(err)
	s.Equal(2, result.Inserted)
	s.True(a.HasID())
	s.True(b.HasID())
	s.NotEqual(a.ID, b.ID)

	dup := pizzaPalace()
	_, err = s.store.SaveRestaurants(ctx, []*models.Restaurant{dup})
	s.Require().NoError(err)
	s.Equal(a.ID, dup.ID)

	counts, err := s.store.CountByCategory(ctx)
	s.Require().NoError(err)
	s.Equal(map[models.Category]int{models.CategoryPizza: 1, models.CategoryItaliana: 1}, counts)
}

func (s *StoreTestSuite) TestSaveProductsDropsMissingKeys() {
	ctx := context.Background()
	r := pizzaPalace()
	_, err := s.store.SaveRestaurants(ctx, []*models.Restaurant{r})
	s.Require().NoError(err)

	products := []*models.Product{
		{Name: "Pizza Calabresa", Price: 40, OriginalPrice: 40, Category: models.CategoryPizza, RestaurantID: r.ID},
		{Name: "  ", Price: 10, Category: models.CategoryPizza, RestaurantID: r.ID},
		{Name: "Sem restaurante", Price: 10, Category: models.CategoryPizza},
		{Name: "Sem categoria", Price: 10, RestaurantID: r.ID},
		{Name: "Pizza Portuguesa", Price: -5, OriginalPrice: -10, Category: models.CategoryPizza, RestaurantID: r.ID},
	}

	result, err := s.store.SaveProducts(ctx, products)
	s.Require().NoError(err)
	s.Equal(models.ReconciliationResult{Inserted: 2, TotalProcessed: 2, Skipped: 3}, result)

	loaded := s.store.LoadActiveProducts(ctx)
	s.Require().Len(loaded, 2)
	s.Equal("Pizza Palace", loaded[0].RestaurantName)
	s.Equal(0.0, loaded[1].Price)
	s.Equal(0.0, loaded[1].OriginalPrice)

	// formatting never touches the caller's records
	s.Equal(-5.0, products[4].Price)
	s.True(products[4].ID > 0)
}

func (s *StoreTestSuite) TestSaveProductsUpdatesByNameAndRestaurant() {
	ctx := context.Background()
	r := pizzaPalace()
	_, err := s.store.SaveRestaurants(ctx, []*models.Restaurant{r})
	s.Require().NoError(err)

	p := &models.Product{Name: "Pizza Margherita", Price: 30, OriginalPrice: 25, Category: models.CategoryPizza, RestaurantID: r.ID, Tags: []string{"Assada"}}
	result, err := s.store.SaveProducts(ctx, []*models.Product{p})
	s.Require().NoError(err)
	s.Equal(1, result.Inserted)

	p2 := *p
	p2.Price = 35
	p2.OriginalPrice = 35
	result, err = s.store.SaveProducts(ctx, []*models.Product{&p2})
	s.Require().NoError(err)
	s.Equal(models.ReconciliationResult{Updated: 1, TotalProcessed: 1}, result)

	loaded := s.store.LoadActiveProducts(ctx)
	s.Require().Len(loaded, 1)
	s.Equal(35.0, loaded[0].Price)
	s.Equal([]string{"Assada"}, loaded[0].Tags)
}

func (s *StoreTestSuite) TestOriginalPriceClampedToPrice() {
	ctx := context.Background()
	r := pizzaPalace()
	_, err := s.store.SaveRestaurants(ctx, []*models.Restaurant{r})
	s.Require().NoError(err)

	_, err = s.store.SaveProducts(ctx, []*models.Product{
		{Name: "Pizza Margherita", Price: 30.123, OriginalPrice: 25, Category: models.CategoryPizza, RestaurantID: r.ID},
	})
	s.Require().NoError(err)

	loaded := s.store.LoadActiveProducts(ctx)
	s.Require().Len(loaded, 1)
	s.Equal(30.12, loaded[0].Price)
	s.Equal(30.12, loaded[0].OriginalPrice)
}

func (s *StoreTestSuite) TestDeactivateStaleCascadesToProducts() {
	ctx := context.Background()
	stale := pizzaPalace()
	_, err := s.store.SaveRestaurants(ctx, []*models.Restaurant{stale})
	s.Require().NoError(err)
	_, err = s.store.SaveProducts(ctx, []*models.Product{
		{Name: "Pizza Calabresa", Price: 40, OriginalPrice: 40, Category: models.CategoryPizza, RestaurantID: stale.ID},
		{Name: "Pizza Margherita", Price: 40, OriginalPrice: 40, Category: models.CategoryPizza, RestaurantID: stale.ID},
	})
	s.Require().NoError(err)

	daysOld := 30
	s.now = s.now.Add(time.Duration(daysOld+1) * 24 * time.Hour)

	fresh := pizzaPalace()
	fresh.Name = "Nonna Maria"
	_, err = s.store.SaveRestaurants(ctx, []*models.Restaurant{fresh})
	s.Require().NoError(err)
	_, err = s.store.SaveProducts(ctx, []*models.Product{
		{Name: "Pizza Portuguesa", Price: 40, OriginalPrice: 40, Category: models.CategoryPizza, RestaurantID: fresh.ID},
	})
	s.Require().NoError(err)

	result := s.store.DeactivateStale(ctx, daysOld)
	s.Equal(models.DeactivationResult{RestaurantsDeactivated: 1, ProductsDeactivated: 2}, result)

	active := s.store.LoadActiveRestaurants(ctx)
	s.Require().Len(active, 1)
	s.Equal("Nonna Maria", active[0].Name)

	products := s.store.LoadActiveProducts(ctx)
	s.Require().Len(products, 1)
	s.Equal("Pizza Portuguesa", products[0].Name)

	counts, err := s.store.Counts(ctx)
	s.Require().NoError(err)
	s.Equal(models.CatalogCounts{Restaurants: 1, Products: 1}, counts)

	// saving the stale restaurant again creates a new active row
	again := pizzaPalace()
	result2, err := s.store.SaveRestaurants(ctx, []*models.Restaurant{again})
	s.Require().NoError(err)
	s.Equal(1, result2.Inserted)
	s.NotEqual(stale.ID, again.ID)
}

func (s *StoreTestSuite) TestSaveStopsOnCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.store.SaveRestaurants(ctx, []*models.Restaurant{pizzaPalace()})
	s.ErrorIs(err, context.Canceled)
	s.Equal(0, result.TotalProcessed)
}

// failingQuerier fails every statement.
type failingQuerier struct{ err error }

func (f failingQuerier) QueryRow(context.Context, string, ...any) database.Row { return failingRow{f.err} }
func (f failingQuerier) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, f.err
}
func (f failingQuerier) Exec(context.Context, string, ...any) (int64, error) { return 0, f.err }

type failingRow struct{ err error }

func (r failingRow) Scan(...any) error { return r.err }

func TestPersistenceFailuresAreCounted(t *testing.T) {
	boom := errors.New("connection reset")
	store := New(failingQuerier{err: boom}, database.DialectPostgres)
	ctx := context.Background()

	result, err := store.SaveRestaurants(ctx, []*models.Restaurant{pizzaPalace(), pizzaPalace()})
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationResult{Errors: 2, TotalProcessed: 2}, result)

	assert.Empty(t, store.LoadActiveRestaurants(ctx))
	assert.Empty(t, store.LoadActiveProducts(ctx))
	assert.Equal(t, models.DeactivationResult{}, store.DeactivateStale(ctx, 30))
}

func TestFormatProductErrors(t *testing.T) {
	_, err := formatProduct(&models.Product{Name: "x", Category: models.CategoryPizza})
	var missing *MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "restaurant_id", missing.Field)
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = formatProduct(nil)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestPersistenceErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := error(&PersistenceError{Table: "products", Op: "insert", Key: "x/1", Err: cause})
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert products")
}

func TestTagsRoundTrip(t *testing.T) {
	assert.Equal(t, "a,b", joinTags([]string{" a", "", "b "}))
	assert.Equal(t, []string{"a", "b"}, splitTags("a,b"))
	assert.Empty(t, splitTags(""))
}
