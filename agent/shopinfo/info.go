// Package shopinfo answers the customer-service questions that are not about
// the live menu: store details, allergens, dietary restrictions, complaints.
package shopinfo

import (
	"fmt"
	"strings"
)

type keyedText struct {
	key  string
	text string
}

// Info is immutable after construction and safe for concurrent reads.
type Info struct {
	store       []keyedText
	ingredients []keyedText
	dietary     []keyedText
}

// Default returns the shop's customer-service tables.
func Default() *Info {
	return &Info{
		store: []keyedText{
			{"hours", "Store Hours: Mon-Fri 7am-9pm, Sat-Sun 8am-8pm"},
			{"location", "Location: 123 Main Street, Downtown District"},
			{"contact", "Phone: (555) 123-4567, Email: info@sandwichshop.com"},
		},
		ingredients: []keyedText{
			{"turkey", "Turkey breast, no artificial ingredients. Contains: wheat (bread). May contain: soy, eggs, dairy (if cheese/mayo added)"},
			{"ham", "Premium ham. Contains: wheat (bread), pork. May contain: soy, eggs, dairy (if cheese/mayo added)"},
			{"roast beef", "Slow-roasted beef. Contains: wheat (bread), beef. May contain: soy, eggs, dairy (if cheese/mayo added)"},
			{"veggie", "Fresh vegetables, hummus. Contains: wheat (bread), chickpeas, tahini. Vegan-friendly option available. May contain: sesame"},
		},
		dietary: []keyedText{
			{"vegetarian", "Vegetarian options: Veggie Delight sandwich. You can also customize any sandwich without meat."},
			{"vegan", "Vegan options: Veggie Delight (no cheese, no mayo) on wheat bread. Add oil & vinegar for flavor!"},
			{"gluten-free", "We currently don't offer gluten-free bread, but we can make a lettuce wrap version of any sandwich upon request."},
			{"dairy-free", "Dairy-free: Skip the cheese and mayo. Use mustard, oil & vinegar instead."},
		},
	}
}

// StoreInfo returns one store detail, or all of them for "all".
func (i *Info) StoreInfo(infoType string) string {
	key := strings.ToLower(strings.TrimSpace(infoType))
	if key == "" {
		key = "hours"
	}
	if key == "all" {
		parts := make([]string, 0, len(i.store))
		for _, entry := range i.store {
			parts = append(parts, entry.text)
		}
		return strings.Join(parts, " | ")
	}
	for _, entry := range i.store {
		if entry.key == key {
			return entry.text
		}
	}
	return "Information type not found."
}

// IngredientInfo returns allergen text for the sandwich the item name refers
// to. Matching is a substring check so "roast beef sandwich" still resolves.
func (i *Info) IngredientInfo(item string) string {
	lowered := strings.ToLower(item)
	for _, entry := range i.ingredients {
		if strings.Contains(lowered, entry.key) {
			return entry.text
		}
	}
	return "Please specify which sandwich you'd like ingredient information for: turkey, ham, roast beef, or veggie."
}

// DietaryOptions suggests menu choices for a dietary restriction.
func (i *Info) DietaryOptions(restriction string) string {
	lowered := strings.ToLower(restriction)
	for _, entry := range i.dietary {
		if strings.Contains(lowered, entry.key) {
			return entry.text
		}
	}
	return "Please specify your dietary restriction: vegetarian, vegan, gluten-free, or dairy-free."
}

// Complaint acknowledges an issue and promises a follow-up.
func (i *Info) Complaint(issue string) string {
	return fmt.Sprintf("I sincerely apologize for the issue with %s. "+
		"Your satisfaction is our top priority. I'm noting this complaint "+
		"and our manager will follow up with you shortly. "+
		"Would you like a refund or replacement for your order?", issue)
}
