package models

const (
	TableRestaurants = "restaurants"
	TableProducts    = "products"

	// TagSeparator joins tag lists into the single text column they are stored in.
	TagSeparator = ","

	// NoAllergens is written when a category declares no allergens at all.
	NoAllergens = "Não contém alérgenos declarados"

	IDResolutionDirect = "direct"
	IDResolutionReload = "reload"

	TopicRestaurantBatch = "restaurant_batch_events"
	TopicProductBatch    = "product_batch_events"
	TopicExtractionRun   = "extraction_run_events"
)
