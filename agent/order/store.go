// Package order owns the in-memory order records for the sandwich shop. The
// store is the only component that touches the records; callers address them
// by order id and get back speakable confirmation messages.
package order

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultOrderID scopes the single global order used when the caller does not
// supply an identifier.
const DefaultOrderID = "default"

type Status string

const (
	StatusBuilding  Status = "building"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Line is one entry in an order. Item is free text and is deliberately not
// validated against the catalog; the agent upstream decides what to add.
type Line struct {
	Item           string    `json:"item"`
	Quantity       int       `json:"quantity"`
	Customizations string    `json:"customizations,omitempty"`
	AddedAt        time.Time `json:"added_at"`
}

type Order struct {
	ID          string    `json:"id"`
	Lines       []Line    `json:"lines"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ConfirmedAt time.Time `json:"confirmed_at,omitempty"`
}

// Archive records confirmed orders out-of-band (receipt rows). Failures are
// logged, never surfaced to the customer.
type Archive interface {
	Record(ctx context.Context, o Order) error
}

// Notifier announces confirmed orders to the kitchen. Same best-effort
// semantics as Archive.
type Notifier interface {
	OrderConfirmed(ctx context.Context, o Order) error
}

// Store serializes all access behind one mutex. Operations are O(lines) and
// never block internally, so a single lock is enough.
type Store struct {
	mu     sync.Mutex
	orders map[string]*Order

	archive  Archive
	notifier Notifier
	now      func() time.Time
}

type Option func(*Store)

func WithArchive(a Archive) Option {
	return func(s *Store) { s.archive = a }
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		orders: make(map[string]*Order),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func normalizeOrderID(orderID string) string {
	if strings.TrimSpace(orderID) == "" {
		return DefaultOrderID
	}
	return orderID
}

func (s *Store) getOrCreateLocked(orderID string) *Order {
	o, ok := s.orders[orderID]
	if !ok {
		o = &Order{
			ID:        orderID,
			Status:    StatusBuilding,
			CreatedAt: s.now().UTC(),
		}
		s.orders[orderID] = o
	}
	return o
}

// AddItem appends a line to the order, creating the record on first use.
// Non-positive quantities are rejected without touching the order.
func (s *Store) AddItem(ctx context.Context, orderID, item string, quantity int, customizations string) Result {
	if quantity <= 0 {
		return rejected("Please specify a positive quantity.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.getOrCreateLocked(normalizeOrderID(orderID))
	o.Lines = append(o.Lines, Line{
		Item:           item,
		Quantity:       quantity,
		Customizations: customizations,
		AddedAt:        s.now().UTC(),
	})

	desc := fmt.Sprintf("%d x %s", quantity, item)
	if customizations != "" {
		desc = fmt.Sprintf("%s (%s)", desc, customizations)
	}
	return applied("Added %s to your order.", desc)
}

// RemoveItem removes the first line whose item name matches, case-insensitive.
// Duplicate item names are not aggregated; the lowest index wins.
func (s *Store) RemoveItem(ctx context.Context, orderID, item string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[normalizeOrderID(orderID)]
	if !ok || len(o.Lines) == 0 {
		return rejected("You don't have any items in your order yet.")
	}

	for i, line := range o.Lines {
		if !matchItem(line.Item, item) {
			continue
		}
		o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
		return applied("Removed %s from your order.", line.Item)
	}
	return rejected("Couldn't find '%s' in your order.", item)
}

// ViewOrder renders the current order contents and the total item count
// (the sum of quantities, not the number of lines).
func (s *Store) ViewOrder(ctx context.Context, orderID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[normalizeOrderID(orderID)]
	if !ok || len(o.Lines) == 0 {
		return rejected("Your order is empty. What would you like to order?")
	}

	total := totalQuantity(o.Lines)
	return applied("Your order: %s. Total: %d item%s.", renderLines(o.Lines), total, plural(total))
}

// ConfirmOrder marks the order confirmed and keeps the record in the store.
// Archive and notifier hooks run after the lock is released so slow IO never
// stalls other orders.
func (s *Store) ConfirmOrder(ctx context.Context, orderID string) Result {
	s.mu.Lock()

	o, ok := s.orders[normalizeOrderID(orderID)]
	if !ok || len(o.Lines) == 0 {
		s.mu.Unlock()
		return rejected("You don't have any items in your order to confirm.")
	}

	summary := renderLines(o.Lines)
	o.Status = StatusConfirmed
	o.ConfirmedAt = s.now().UTC()
	snapshot := o.clone()
	s.mu.Unlock()

	s.dispatchConfirmed(ctx, snapshot)
	return applied("Order confirmed: %s. Sending to the kitchen now! Your order will be ready in about 10-15 minutes.", summary)
}

// CancelOrder removes the record regardless of status. Cancelling an order
// that was already confirmed is allowed but flagged in the message.
func (s *Store) CancelOrder(ctx context.Context, orderID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := normalizeOrderID(orderID)
	o, ok := s.orders[id]
	if !ok {
		return rejected("There's no order to cancel.")
	}

	wasConfirmed := o.Status == StatusConfirmed
	o.Status = StatusCancelled
	o.Lines = nil
	delete(s.orders, id)

	if wasConfirmed {
		return applied("Your confirmed order has been cancelled. If you placed this order recently, please check with staff.")
	}
	return applied("Your order has been cancelled. Let me know if you'd like to start a new order!")
}

// ModifyItem replaces the customization note on the first matching line.
func (s *Store) ModifyItem(ctx context.Context, orderID, item, newCustomizations string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[normalizeOrderID(orderID)]
	if !ok || len(o.Lines) == 0 {
		return rejected("You don't have any items in your order yet.")
	}

	for i := range o.Lines {
		if !matchItem(o.Lines[i].Item, item) {
			continue
		}
		o.Lines[i].Customizations = newCustomizations
		return applied("Updated %s: %s", o.Lines[i].Item, newCustomizations)
	}
	return rejected("Couldn't find '%s' in your order to modify.", item)
}

// ClearOrder empties the lines and resets the status to building. The record
// itself is retained so the session keeps its creation metadata.
func (s *Store) ClearOrder(ctx context.Context, orderID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[normalizeOrderID(orderID)]
	if !ok {
		return rejected("Your order is already empty.")
	}

	o.Lines = nil
	o.Status = StatusBuilding
	return applied("Cleared all items from your order. What would you like to order?")
}

// Snapshot returns a copy of the order record, if it exists.
func (s *Store) Snapshot(orderID string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[normalizeOrderID(orderID)]
	if !ok {
		return Order{}, false
	}
	return o.clone(), true
}

func (s *Store) dispatchConfirmed(ctx context.Context, o Order) {
	if s.archive != nil {
		if err := s.archive.Record(ctx, o); err != nil {
			log.Warn().Err(err).Str("order_id", o.ID).Msg("archive receipt failed")
		}
	}
	if s.notifier != nil {
		if err := s.notifier.OrderConfirmed(ctx, o); err != nil {
			log.Warn().Err(err).Str("order_id", o.ID).Msg("kitchen notification failed")
		}
	}
}

func (o *Order) clone() Order {
	copied := *o
	copied.Lines = append([]Line(nil), o.Lines...)
	return copied
}

func matchItem(have, want string) bool {
	return strings.EqualFold(strings.TrimSpace(have), strings.TrimSpace(want))
}

func renderLines(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		part := fmt.Sprintf("%d x %s", line.Quantity, line.Item)
		if line.Customizations != "" {
			part = fmt.Sprintf("%s (%s)", part, line.Customizations)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func totalQuantity(lines []Line) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
