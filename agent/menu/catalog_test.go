package menu

import (
	"strings"
	"testing"
)

func testCatalog() *Catalog {
	return New(map[Category][]Entry{
		CategorySandwiches: {
			sandwich("turkey_club", "Turkey Club", "8.99", "Classic turkey with bacon, lettuce, and tomato"),
			{Key: "italian_sub", Name: "Italian Sub", Price: price("9.99"), Description: "Ham, salami, provolone", Available: false},
		},
		CategoryMeats: {
			ingredient("turkey", "Turkey"),
			{Key: "salami", Name: "Salami", Available: false},
		},
		CategoryCheeses:   {ingredient("swiss", "Swiss")},
		CategoryToppings:  {ingredient("lettuce", "Lettuce"), ingredient("tomato", "Tomato")},
		CategoryCondiments: {ingredient("mayo", "Mayo")},
		CategoryBreads:    {ingredient("wheat", "Wheat")},
	})
}

func TestDescribeSandwichesIncludesPrices(t *testing.T) {
	t.Parallel()

	got := testCatalog().Describe("Sandwiches")
	if got != "Our sandwiches: Turkey Club ($8.99)" {
		t.Fatalf("unexpected listing: %q", got)
	}
}

func TestDescribeIngredientCategoryNamesOnly(t *testing.T) {
	t.Parallel()

	got := testCatalog().Describe("meats")
	if got != "Available meats: Turkey" {
		t.Fatalf("unexpected listing: %q", got)
	}
}

func TestDescribeUnknownCategoryListsValidOnes(t *testing.T) {
	t.Parallel()

	got := testCatalog().Describe("desserts")
	if !strings.Contains(got, "not found") {
		t.Fatalf("expected not-found message, got %q", got)
	}
	for _, cat := range []string{"sandwiches", "meats", "cheeses", "toppings", "condiments", "breads"} {
		if !strings.Contains(got, cat) {
			t.Fatalf("message %q missing category %s", got, cat)
		}
	}
}

func TestDescribeEmptyReturnsFullMenuInOrder(t *testing.T) {
	t.Parallel()

	got := testCatalog().Describe("")
	idxSandwiches := strings.Index(got, "Sandwiches:")
	idxMeats := strings.Index(got, "Meats:")
	idxBreads := strings.Index(got, "Breads:")
	if idxSandwiches < 0 || idxMeats < 0 || idxBreads < 0 {
		t.Fatalf("full menu missing sections: %q", got)
	}
	if !(idxSandwiches < idxMeats && idxMeats < idxBreads) {
		t.Fatalf("sections out of order: %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Fatalf("full menu should end with a period: %q", got)
	}
}

func TestCheckAvailabilityNormalizesCaseAndWhitespace(t *testing.T) {
	t.Parallel()

	c := testCatalog()
	a := c.CheckAvailability("turkey club")
	b := c.CheckAvailability("Turkey_Club")
	if a != b {
		t.Fatalf("normalization mismatch: %q vs %q", a, b)
	}
	if a != "Turkey Club is available and costs $8.99. Classic turkey with bacon, lettuce, and tomato" {
		t.Fatalf("unexpected message: %q", a)
	}
}

func TestCheckAvailabilityIngredient(t *testing.T) {
	t.Parallel()

	got := testCatalog().CheckAvailability("turkey")
	if got != "Turkey is available." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestCheckAvailabilityUnavailableEntry(t *testing.T) {
	t.Parallel()

	got := testCatalog().CheckAvailability("salami")
	if got != "Sorry, Salami is currently unavailable." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestCheckAvailabilityNotOnMenu(t *testing.T) {
	t.Parallel()

	got := testCatalog().CheckAvailability("chicken")
	if got != "chicken is not on our menu. Would you like to hear what we have available?" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestSandwichDetails(t *testing.T) {
	t.Parallel()

	c := testCatalog()
	if got := c.SandwichDetails("turkey club"); got != "Turkey Club: Classic turkey with bacon, lettuce, and tomato. Price: $8.99" {
		t.Fatalf("unexpected details: %q", got)
	}
	if got := c.SandwichDetails("italian sub"); got != "Sorry, Italian Sub is currently unavailable." {
		t.Fatalf("unexpected unavailable message: %q", got)
	}
	if got := c.SandwichDetails("club 99"); !strings.Contains(got, "We don't have a sandwich called 'club 99'") {
		t.Fatalf("unexpected not-found message: %q", got)
	}
	// Ingredient names must not match the sandwich-only lookup.
	if got := c.SandwichDetails("turkey"); !strings.Contains(got, "We don't have a sandwich called") {
		t.Fatalf("ingredient leaked into sandwich lookup: %q", got)
	}
}

func TestListToppingsAndCondiments(t *testing.T) {
	t.Parallel()

	got := testCatalog().ListToppingsAndCondiments()
	if got != "Toppings: Lettuce, Tomato. Condiments: Mayo." {
		t.Fatalf("unexpected listing: %q", got)
	}
}

func TestDefaultCatalogIsFullyAvailable(t *testing.T) {
	t.Parallel()

	c := Default()
	if got := c.CheckAvailability("BLT"); got != "BLT is available and costs $7.99. Bacon, lettuce, and tomato classic" {
		t.Fatalf("unexpected BLT message: %q", got)
	}
	if got := c.CheckAvailability("oil & vinegar"); got != "Oil & Vinegar is available." {
		t.Fatalf("unexpected condiment message: %q", got)
	}
}
