package menu

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sandwich(key, name, priceStr, description string) Entry {
	return Entry{Key: key, Name: name, Price: price(priceStr), Description: description, Available: true}
}

func ingredient(key, name string) Entry {
	return Entry{Key: key, Name: name, Available: true}
}

// Default returns the shop catalog.
func Default() *Catalog {
	return New(map[Category][]Entry{
		CategorySandwiches: {
			sandwich("turkey_club", "Turkey Club", "8.99", "Classic turkey with bacon, lettuce, and tomato"),
			sandwich("italian_sub", "Italian Sub", "9.99", "Ham, salami, provolone with Italian dressing"),
			sandwich("roast_beef", "Roast Beef", "10.99", "Premium roast beef with your choice of toppings"),
			sandwich("veggie_delight", "Veggie Delight", "7.99", "Fresh vegetables with choice of cheese and dressing"),
			sandwich("blt", "BLT", "7.99", "Bacon, lettuce, and tomato classic"),
		},
		CategoryMeats: {
			ingredient("turkey", "Turkey"),
			ingredient("ham", "Ham"),
			ingredient("roast_beef", "Roast Beef"),
			ingredient("bacon", "Bacon"),
			ingredient("salami", "Salami"),
		},
		CategoryCheeses: {
			ingredient("swiss", "Swiss"),
			ingredient("cheddar", "Cheddar"),
			ingredient("provolone", "Provolone"),
			ingredient("pepper_jack", "Pepper Jack"),
			ingredient("american", "American"),
		},
		CategoryToppings: {
			ingredient("lettuce", "Lettuce"),
			ingredient("tomato", "Tomato"),
			ingredient("onion", "Onion"),
			ingredient("pickles", "Pickles"),
			ingredient("jalapenos", "Jalapenos"),
			ingredient("bell_peppers", "Bell Peppers"),
			ingredient("cucumbers", "Cucumbers"),
		},
		CategoryCondiments: {
			ingredient("mayo", "Mayo"),
			ingredient("mustard", "Mustard"),
			ingredient("ranch", "Ranch"),
			ingredient("italian_dressing", "Italian Dressing"),
			ingredient("oil_vinegar", "Oil & Vinegar"),
			ingredient("hot_sauce", "Hot Sauce"),
		},
		CategoryBreads: {
			ingredient("white", "White"),
			ingredient("wheat", "Wheat"),
			ingredient("sourdough", "Sourdough"),
			ingredient("italian", "Italian"),
			ingredient("wrap", "Wrap"),
		},
	})
}
