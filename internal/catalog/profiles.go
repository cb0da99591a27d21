package catalog

import "github.com/chrisdamba/foodcatalogsim/internal/models"

var defaultCatalog = New(
	[]models.Category{
		models.CategoryPizza,
		models.CategoryHamburguer,
		models.CategoryJaponesa,
		models.CategoryItaliana,
		models.CategoryBrasileira,
		models.CategoryChinesa,
		models.CategoryMexicana,
		models.CategoryArabe,
		models.CategorySaudavel,
		models.CategoryDoces,
		models.CategoryLanches,
		models.CategoryBebidas,
	},
	map[models.Category]Profile{
		models.CategoryPizza: {
			RestaurantNames: []string{
				"Pizzaria Bella Vista", "Dom Pietro Pizza", "Pizza Express SP", "Nonna Maria",
				"Pizzaria da Esquina", "Pizza Palace", "Margherita Pizzeria", "Tony's Pizza",
				"Pizza Romana", "Forno di Napoli", "Pizza & Vino", "La Bela Pizza",
			},
			Products:       []string{"Pizza Margherita", "Pizza Calabresa", "Pizza Portuguesa", "Pizza Quatro Queijos"},
			Price:          &PriceRange{25.0, 65.0},
			RestaurantTags: []string{"Italiana", "Forno a Lenha", "Delivery", "Tradicional"},
			ProductTags:    []string{"Italiana", "Assada", "Tradicional", "Gourmet"},
			Allergens:      []string{"Glúten", "Leite", "Ovos"},
			Nutrition: &NutritionTemplate{
				Format: "Calorias: %d por fatia | Carboidratos: %dg | Proteínas: %dg",
				Ranges: []IntRange{{200, 400}, {20, 35}, {8, 15}},
			},
			PrepTime:    &IntRange{15, 30},
			Portions:    []string{"Pequena (4 fatias)", "Média (6 fatias)", "Grande (8 fatias)", "Família (12 fatias)"},
			Description: "Deliciosa {name} com ingredientes frescos e massa artesanal. Assada no forno a lenha.",
		},
		models.CategoryHamburguer: {
			RestaurantNames: []string{
				"Burger King Brasil", "McDonald's", "Burger House", "Smash Burger",
				"The Burger Joint", "Classic Burger", "Gourmet Burger", "Big Burger",
				"Burger Station", "Prime Burger", "Artisan Burger", "Burger Palace",
			},
			Products:       []string{"Big Mac", "Whopper", "Cheese Burger", "Bacon Burger"},
			Price:          &PriceRange{18.0, 45.0},
			RestaurantTags: []string{"Fast Food", "Gourmet", "American", "Artesanal"},
			ProductTags:    []string{"Grelhado", "Artesanal", "Suculento", "Crocante"},
			Allergens:      []string{"Glúten", "Leite", "Ovos", "Soja"},
			Nutrition: &NutritionTemplate{
				Format: "Calorias: %d | Carboidratos: %dg | Proteínas: %dg",
				Ranges: []IntRange{{300, 600}, {25, 45}, {15, 30}},
			},
			PrepTime:    &IntRange{10, 20},
			Portions:    []string{"Individual", "Duplo", "Triplo"},
			Description: "Suculento {name} com carne 100% bovina, acompanhado de batatas fritas crocantes.",
		},
		models.CategoryJaponesa: {
			RestaurantNames: []string{
				"Sushi Zen", "Temaki House", "Sakura Sushi", "Tokyo Express",
				"Sushi Bar", "Yamato Sushi", "Koi Sushi", "Nipon Sushi",
				"Sushi Time", "Hokkaido Sushi", "Wasabi Sushi", "Fuji Sushi",
			},
			Products:       []string{"Sushi Salmão", "Temaki Filadélfia", "Yakisoba", "Udon"},
			Price:          &PriceRange{35.0, 85.0},
			RestaurantTags: []string{"Sushi", "Oriental", "Temaki", "Frutos do Mar"},
			ProductTags:    []string{"Fresco", "Oriental", "Tradicional", "Premium"},
			Allergens:      []string{"Peixe", "Soja", "Glúten"},
			PrepTime:       &IntRange{15, 25},
			Portions:       []string{"8 peças", "12 peças", "16 peças"},
			Description:    "Autêntico {name} preparado pelo chef japonês com ingredientes importados.",
		},
		models.CategoryItaliana: {
			RestaurantNames: []string{
				"Cantina Italiana", "Nonna Rosa", "Trattoria Milano", "Pasta & Basta",
				"Il Forno", "Bella Italia", "Osteria del Centro", "Mamma Mia",
				"Ristorante Toscana", "La Tavola", "Dolce Vita", "Casa Italiana",
			},
			Products:       []string{"Lasanha", "Fettuccine Alfredo", "Risotto", "Gnocchi"},
			Price:          &PriceRange{28.0, 70.0},
			RestaurantTags: []string{"Massas", "Mediterrânea", "Vinho", "Tradicional"},
			Allergens:      []string{"Glúten", "Leite", "Ovos"},
			PrepTime:       &IntRange{20, 35},
			Portions:       []string{"Pequena", "Média", "Grande"},
			Description:    "Tradicional {name} com receita da nonna, servido com molho especial da casa.",
		},
		models.CategoryBrasileira: {
			RestaurantNames: []string{
				"Boteco do João", "Churrascaria Gaúcha", "Comida Caseira", "Sabor Mineiro",
				"Cantina da Vovó", "Tempero Brasileiro", "Casa do Norte", "Fogão a Lenha",
				"Tradição Brasileira", "Sabores do Brasil", "Cozinha Caipira", "Rancho Alegre",
			},
			Products:       []string{"Feijoada", "Picanha", "Pão de Açúcar", "Coxinha"},
			Price:          &PriceRange{22.0, 55.0},
			RestaurantTags: []string{"Caseira", "Regional", "Churrasco", "Mineira"},
			Description:    "Saboroso {name} preparado com temperos regionais e ingredientes selecionados.",
		},
		models.CategoryChinesa: {
			RestaurantNames: []string{
				"China Express", "Dragão Dourado", "Panda House", "Great Wall",
				"China Palace", "Golden Dragon", "Lotus Garden", "Bamboo House",
				"Orient Express", "China Town", "Red Dragon", "Jade Garden",
			},
			Products:       []string{"Frango Xadrez", "Chop Suey", "Rolinho Primavera", "Macarrão Chow Mein"},
			Price:          &PriceRange{20.0, 50.0},
			RestaurantTags: []string{"Oriental", "Wok", "Vegetariana", "Agridoce"},
			Description:    "Exótico {name} com sabores orientais e vegetais frescos, preparado no wok.",
		},
		models.CategoryMexicana: {
			RestaurantNames: []string{
				"El Sombrero", "Taco Bell", "Azteca Restaurant", "Chili's",
				"Casa Mexico", "Mariachi", "Viva Mexico", "Cantina Mexicana",
				"Señor Frog's", "Hacienda", "Guadalajara", "Tierra Mexico",
			},
			Products:       []string{"Tacos", "Burrito", "Quesadilla", "Nachos"},
			Price:          &PriceRange{25.0, 60.0},
			RestaurantTags: []string{"Picante", "Tex-Mex", "Apimentada", "Latina"},
			Description:    "Picante {name} com especiarias mexicanas e molho apimentado especial.",
		},
		models.CategoryArabe: {
			RestaurantNames: []string{
				"Habib's", "Arábia", "Cedro do Líbano", "Al Janiah",
				"Beirute", "Petra", "Oasis", "Sahara",
				"Damascus", "Aladdin", "Sheik Palace", "Sultão",
			},
			Products:       []string{"Esfiha", "Kebab", "Homus", "Tabule"},
			Price:          &PriceRange{15.0, 40.0},
			RestaurantTags: []string{"Mediterrânea", "Especiarias", "Halal", "Tradicional"},
			Description:    "Aromático {name} com especiarias do Oriente Médio e receita tradicional.",
		},
		models.CategorySaudavel: {
			RestaurantNames: []string{
				"Green Life", "Fit Food", "Vida Saudável", "Natural Gourmet",
				"Organic Kitchen", "Salad Bar", "Healthy Choice", "Fresh Market",
				"Pure Life", "Clean Eating", "Detox Kitchen", "Vegan Delights",
			},
			Products:       []string{"Salada Caesar", "Smoothie Verde", "Wrap Integral", "Quinoa Bowl"},
			Price:          &PriceRange{20.0, 50.0},
			RestaurantTags: []string{"Fitness", "Orgânica", "Vegetariana", "Diet"},
			ProductTags:    []string{"Natural", "Orgânico", "Fitness", "Integral"},
			Nutrition: &NutritionTemplate{
				Format: "Calorias: %d | Carboidratos: %dg | Proteínas: %dg | Fibras: %dg",
				Ranges: []IntRange{{150, 350}, {10, 25}, {10, 20}, {3, 8}},
			},
			PrepTime:    &IntRange{5, 15},
			Portions:    []string{"300g", "400g", "500g"},
			Description: "Nutritivo {name} com ingredientes orgânicos e baixo teor calórico.",
		},
		models.CategoryDoces: {
			RestaurantNames: []string{
				"Doce Sabor", "Açaí da Hora", "Gelateria Italiana", "Cupcake House",
				"Chocolateria Cacau", "Brigadeiro Gourmet", "Sorveteria Polar", "Doce Mania",
				"Confeitaria Central", "Sugar Rush", "Sweet Dreams", "Candy Shop",
			},
			Products:       []string{"Brigadeiro", "Açaí", "Sorvete", "Cupcake"},
			Price:          &PriceRange{8.0, 25.0},
			RestaurantTags: []string{"Sobremesas", "Artesanal", "Gelatos", "Confeitaria"},
			ProductTags:    []string{"Cremoso", "Artesanal", "Doce", "Irresistível"},
			Allergens:      []string{"Leite", "Ovos", "Glúten", "Amendoim"},
			Nutrition: &NutritionTemplate{
				Format: "Calorias: %d | Açúcares: %dg | Gorduras: %dg",
				Ranges: []IntRange{{150, 400}, {15, 40}, {5, 20}},
			},
			PrepTime:    &IntRange{5, 10},
			Portions:    []string{"Individual", "Para 2 pessoas", "Família"},
			Description: "Irresistível {name} preparado com ingredientes premium e muito amor.",
		},
		models.CategoryLanches: {
			RestaurantNames: []string{
				"Lanche da Esquina", "Hot Dog do Carlinhos", "Sanduíche Mania", "Quick Bite",
				"Lanchonete Central", "Subway", "Sandwich Shop", "Bite Size",
				"Fast Food Express", "Snack Bar", "Quick Lunch", "Grab & Go",
			},
			Products:       []string{"Sanduíche Natural", "Hot Dog", "Batata Frita", "Milk Shake"},
			Price:          &PriceRange{10.0, 30.0},
			RestaurantTags: []string{"Rápido", "Prático", "Casual", "Sanduíches"},
			Description:    "Prático {name} ideal para um lanche rápido e saboroso.",
		},
		models.CategoryBebidas: {
			RestaurantNames: []string{
				"Juice Bar", "Café Central", "Starbucks", "Smoothie House",
				"Tropical Drinks", "Fresh Juice", "Café da Manhã", "Drink Station",
				"Beverage Corner", "Liquid Lounge", "Refresh Bar", "Hydration Station",
			},
			Products:       []string{"Suco de Laranja", "Café Expresso", "Refrigerante", "Água Mineral"},
			Price:          &PriceRange{5.0, 20.0},
			RestaurantTags: []string{"Natural", "Refrescante", "Vitaminas", "Sucos"},
			ProductTags:    []string{"Refrescante", "Natural", "Gelado", "Energético"},
			Allergens:      []string{},
			Nutrition: &NutritionTemplate{
				Format: "Calorias: %d | Açúcares: %dg | Vitamina C: %dmg",
				Ranges: []IntRange{{0, 150}, {0, 25}, {10, 100}},
			},
			PrepTime:    &IntRange{2, 5},
			Portions:    []string{"300ml", "500ml", "700ml", "1L"},
			Description: "Refrescante {name} preparado com frutas frescas e ingredientes naturais.",
		},
	},
)
