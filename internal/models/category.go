package models

// Category is a canonical cuisine identifier. Values outside the supported set are
// allowed and fall back to generic tables wherever category data is consulted.
type Category string

const (
	CategoryPizza      Category = "pizza"
	CategoryHamburguer Category = "hamburguer"
	CategoryJaponesa   Category = "japonesa"
	CategoryItaliana   Category = "italiana"
	CategoryBrasileira Category = "brasileira"
	CategoryChinesa    Category = "chinesa"
	CategoryMexicana   Category = "mexicana"
	CategoryArabe      Category = "árabe"
	CategorySaudavel   Category = "saudável"
	CategoryDoces      Category = "doces"
	CategoryLanches    Category = "lanches"
	CategoryBebidas    Category = "bebidas"

	// product-only categories assigned by keyword classification
	CategorySaladas     Category = "saladas"
	CategoryMassas      Category = "massas"
	CategoryCarnes      Category = "carnes"
	CategoryPeixes      Category = "peixes"
	CategoryVegetariano Category = "vegetariano"
)

func (c Category) String() string {
	return string(c)
}
