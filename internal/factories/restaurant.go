package factories

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/chrisdamba/foodcatalogsim/internal/catalog"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

var (
	nameSuffixes = []string{"Express", "Delivery", "Gourmet", "Premium", "Plus", "Prime"}
	deliveryFees = []float64{0.0, 2.99, 3.99, 4.99, 5.99, 6.99, 7.99}
	streets      = []string{
		"Rua das Flores", "Av. Paulista", "Rua Augusta", "Rua Oscar Freire",
		"Av. Faria Lima", "Rua da Consolação", "Av. Rebouças", "Rua Haddock Lobo",
		"Av. Ibirapuera", "Rua Teodoro Sampaio", "Av. Brasil", "Rua XV de Novembro",
	}
)

const (
	MinRating       = 3.5
	MaxRating       = 4.9
	MinDeliveryTime = 25
	MaxDeliveryTime = 60
	openProbability = 0.75
)

type RestaurantFactory struct {
	catalog *catalog.Catalog
	src     *Source
}

func NewRestaurantFactory(c *catalog.Catalog, src *Source) *RestaurantFactory {
	if c == nil {
		c = catalog.Default()
	}
	return &RestaurantFactory{catalog: c, src: src}
}

// CreateRestaurants generates count independent restaurants for category.
func (rf *RestaurantFactory) CreateRestaurants(category models.Category, count int) []*models.Restaurant {
	restaurants := make([]*models.Restaurant, 0, count)
	for i := 0; i < count; i++ {
		restaurants = append(restaurants, rf.CreateRestaurant(category, i))
	}
	return restaurants
}

// CreateRestaurant builds the restaurant at position index of a batch. Once index
// passes the size of the name pool a suffix is appended to the chosen base name.
func (rf *RestaurantFactory) CreateRestaurant(category models.Category, index int) *models.Restaurant {
	pool := rf.catalog.RestaurantNames(category)
	name := rf.src.Pick(pool)
	if index >= len(pool) {
		name = fmt.Sprintf("%s %s", rf.src.Pick(pool), rf.src.Pick(nameSuffixes))
	}

	return &models.Restaurant{
		Name:         name,
		Category:     category,
		Rating:       round(rf.src.Uniform(MinRating, MaxRating), 1),
		DeliveryFee:  deliveryFees[rf.src.Rand().Intn(len(deliveryFees))],
		DeliveryTime: fmt.Sprintf("%d min", rf.src.IntBetween(MinDeliveryTime, MaxDeliveryTime)),
		Address:      rf.createAddress(),
		Tags:         rf.catalog.Tags(rf.src.Rand(), category),
		IsOpen:       rf.src.Chance(openProbability),
		ImageURL:     imageURL("restaurants", name),
	}
}

func (rf *RestaurantFactory) createAddress() string {
	return fmt.Sprintf("%s, %d - São Paulo, SP", rf.src.Pick(streets), rf.src.fake.IntBetween(100, 2000))
}

func imageURL(kind, name string) string {
	sum := md5.Sum([]byte(name))
	return fmt.Sprintf("https://example.com/%s/%s.jpg", kind, hex.EncodeToString(sum[:]))
}
