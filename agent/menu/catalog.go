// Package menu holds the shop's read-only catalog and the lookup skills
// exposed to the conversational agents. Every outcome is a speakable string;
// nothing in this package returns an error.
package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategorySandwiches Category = "sandwiches"
	CategoryMeats      Category = "meats"
	CategoryCheeses    Category = "cheeses"
	CategoryToppings   Category = "toppings"
	CategoryCondiments Category = "condiments"
	CategoryBreads     Category = "breads"
)

// categoryOrder fixes the order lookups walk categories in. First match wins,
// so the order is part of the contract.
var categoryOrder = []Category{
	CategorySandwiches,
	CategoryMeats,
	CategoryCheeses,
	CategoryToppings,
	CategoryCondiments,
	CategoryBreads,
}

// Entry is one catalog item. Price and Description are only populated for
// sandwiches; ingredient categories carry a name and an availability flag.
type Entry struct {
	Key         string
	Name        string
	Price       decimal.Decimal
	Description string
	Available   bool
}

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	categories map[Category][]Entry
}

func New(categories map[Category][]Entry) *Catalog {
	copied := make(map[Category][]Entry, len(categories))
	for cat, entries := range categories {
		copied[cat] = append([]Entry(nil), entries...)
	}
	return &Catalog{categories: copied}
}

// normalizeKey lowercases, trims, and treats embedded whitespace as a key
// separator so "Turkey Club" and "turkey_club" resolve to the same entry.
func normalizeKey(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(normalized, " ", "_")
}

func (c *Catalog) find(name string) (Category, Entry, bool) {
	key := normalizeKey(name)
	display := strings.TrimSpace(name)
	for _, cat := range categoryOrder {
		for _, entry := range c.categories[cat] {
			if entry.Key == key || strings.EqualFold(entry.Name, display) {
				return cat, entry, true
			}
		}
	}
	return "", Entry{}, false
}

func (c *Catalog) availableNames(cat Category) []string {
	entries := c.categories[cat]
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Available {
			names = append(names, entry.Name)
		}
	}
	return names
}

func (c *Catalog) availableSandwiches() []string {
	entries := c.categories[CategorySandwiches]
	listed := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Available {
			listed = append(listed, fmt.Sprintf("%s ($%s)", entry.Name, entry.Price.StringFixed(2)))
		}
	}
	return listed
}

// Describe lists the available entries of one category, or the full menu when
// category is empty. An unknown category yields a message naming the valid
// ones.
func (c *Catalog) Describe(category string) string {
	if strings.TrimSpace(category) == "" {
		return c.DescribeAll()
	}

	cat := Category(normalizeKey(category))
	if _, ok := c.categories[cat]; !ok {
		valid := make([]string, 0, len(categoryOrder))
		for _, known := range categoryOrder {
			valid = append(valid, string(known))
		}
		return fmt.Sprintf("Category '%s' not found. Valid categories: %s", cat, strings.Join(valid, ", "))
	}

	if cat == CategorySandwiches {
		return fmt.Sprintf("Our sandwiches: %s", strings.Join(c.availableSandwiches(), ", "))
	}
	return fmt.Sprintf("Available %s: %s", cat, strings.Join(c.availableNames(cat), ", "))
}

// DescribeAll renders every category's availability listing in menu order.
func (c *Catalog) DescribeAll() string {
	sections := make([]string, 0, len(categoryOrder))
	sections = append(sections, fmt.Sprintf("Sandwiches: %s", strings.Join(c.availableSandwiches(), ", ")))
	for _, cat := range categoryOrder[1:] {
		title := strings.ToUpper(string(cat[:1])) + string(cat[1:])
		sections = append(sections, fmt.Sprintf("%s: %s", title, strings.Join(c.availableNames(cat), ", ")))
	}
	return strings.Join(sections, ". ") + "."
}

// CheckAvailability searches every category for the named item.
func (c *Catalog) CheckAvailability(name string) string {
	cat, entry, ok := c.find(name)
	if !ok {
		return fmt.Sprintf("%s is not on our menu. Would you like to hear what we have available?", name)
	}
	if !entry.Available {
		return fmt.Sprintf("Sorry, %s is currently unavailable.", entry.Name)
	}
	if cat == CategorySandwiches {
		return fmt.Sprintf("%s is available and costs $%s. %s", entry.Name, entry.Price.StringFixed(2), entry.Description)
	}
	return fmt.Sprintf("%s is available.", entry.Name)
}

// SandwichDetails applies the same matching rule restricted to sandwiches.
func (c *Catalog) SandwichDetails(name string) string {
	key := normalizeKey(name)
	display := strings.TrimSpace(name)
	for _, entry := range c.categories[CategorySandwiches] {
		if entry.Key != key && !strings.EqualFold(entry.Name, display) {
			continue
		}
		if !entry.Available {
			return fmt.Sprintf("Sorry, %s is currently unavailable.", entry.Name)
		}
		return fmt.Sprintf("%s: %s. Price: $%s", entry.Name, entry.Description, entry.Price.StringFixed(2))
	}
	return fmt.Sprintf("We don't have a sandwich called '%s'. Would you like to hear our sandwich menu?", name)
}

// ListToppingsAndCondiments lists the available toppings and condiments only.
func (c *Catalog) ListToppingsAndCondiments() string {
	return fmt.Sprintf("Toppings: %s. Condiments: %s.",
		strings.Join(c.availableNames(CategoryToppings), ", "),
		strings.Join(c.availableNames(CategoryCondiments), ", "))
}
