package order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	for _, qty := range []int{0, -1, -10} {
		res := s.AddItem(ctx, "", "Turkey Club", qty, "")
		if res.OK {
			t.Fatalf("quantity %d must be rejected", qty)
		}
		if res.Message != "Please specify a positive quantity." {
			t.Fatalf("unexpected message: %q", res.Message)
		}
	}

	if _, ok := s.Snapshot(""); ok {
		t.Fatal("rejected add must not create the order record")
	}
}

func TestAddItemConfirmationIncludesCustomizations(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	res := s.AddItem(ctx, "", "BLT", 2, "no mayo, extra bacon")
	if !res.OK {
		t.Fatalf("unexpected rejection: %q", res.Message)
	}
	if res.Message != "Added 2 x BLT (no mayo, extra bacon) to your order." {
		t.Fatalf("unexpected message: %q", res.Message)
	}

	res = s.AddItem(ctx, "", "Turkey Club", 1, "")
	if res.Message != "Added 1 x Turkey Club to your order." {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestViewOrderTotalsQuantitiesNotLines(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "A", 1, "")
	s.AddItem(ctx, "", "B", 2, "")

	res := s.ViewOrder(ctx, "")
	if res.Message != "Your order: 1 x A, 2 x B. Total: 3 items." {
		t.Fatalf("unexpected summary: %q", res.Message)
	}
}

func TestViewOrderSingularItem(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "BLT", 1, "")
	res := s.ViewOrder(ctx, "")
	if !strings.HasSuffix(res.Message, "Total: 1 item.") {
		t.Fatalf("expected singular form, got %q", res.Message)
	}
}

func TestViewOrderEmpty(t *testing.T) {
	t.Parallel()

	s := NewStore()
	res := s.ViewOrder(context.Background(), "")
	if res.OK || res.Message != "Your order is empty. What would you like to order?" {
		t.Fatalf("unexpected empty view: ok=%v msg=%q", res.OK, res.Message)
	}
}

func TestRemoveItemFirstMatchCaseInsensitive(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "Turkey Club", 1, "no tomato")
	s.AddItem(ctx, "", "Turkey Club", 1, "extra bacon")

	res := s.RemoveItem(ctx, "", "turkey club")
	if !res.OK || res.Message != "Removed Turkey Club from your order." {
		t.Fatalf("unexpected removal: ok=%v msg=%q", res.OK, res.Message)
	}

	o, ok := s.Snapshot("")
	if !ok || len(o.Lines) != 1 {
		t.Fatalf("expected exactly one line left, got %d", len(o.Lines))
	}
	if o.Lines[0].Customizations != "extra bacon" {
		t.Fatalf("first occurrence must be removed, remaining line is %+v", o.Lines[0])
	}
}

func TestRemoveItemNotFound(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "BLT", 1, "")
	res := s.RemoveItem(ctx, "", "Italian Sub")
	if res.OK || res.Message != "Couldn't find 'Italian Sub' in your order." {
		t.Fatalf("unexpected result: ok=%v msg=%q", res.OK, res.Message)
	}
}

func TestRemoveItemFromMissingOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	res := s.RemoveItem(context.Background(), "", "BLT")
	if res.OK || res.Message != "You don't have any items in your order yet." {
		t.Fatalf("unexpected result: ok=%v msg=%q", res.OK, res.Message)
	}
}

func TestConfirmOrderKeepsRecord(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "BLT", 1, "")
	res := s.ConfirmOrder(ctx, "")
	if !res.OK {
		t.Fatalf("unexpected rejection: %q", res.Message)
	}
	if !strings.HasPrefix(res.Message, "Order confirmed: 1 x BLT.") {
		t.Fatalf("unexpected confirmation: %q", res.Message)
	}
	if !strings.Contains(res.Message, "10-15 minutes") {
		t.Fatalf("confirmation missing wait-time phrase: %q", res.Message)
	}

	o, ok := s.Snapshot("")
	if !ok {
		t.Fatal("confirmed order must stay in the store")
	}
	if o.Status != StatusConfirmed {
		t.Fatalf("unexpected status: %s", o.Status)
	}
	if o.ConfirmedAt.IsZero() {
		t.Fatal("confirmation timestamp not set")
	}

	view := s.ViewOrder(ctx, "")
	if !strings.Contains(view.Message, "1 x BLT") {
		t.Fatalf("view after confirm lost the lines: %q", view.Message)
	}
}

func TestConfirmOrderEmpty(t *testing.T) {
	t.Parallel()

	s := NewStore()
	res := s.ConfirmOrder(context.Background(), "")
	if res.OK || res.Message != "You don't have any items in your order to confirm." {
		t.Fatalf("unexpected result: ok=%v msg=%q", res.OK, res.Message)
	}
}

func TestCancelOrderDeletesRecord(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "BLT", 1, "")
	res := s.CancelOrder(ctx, "")
	if !res.OK || res.Message != "Your order has been cancelled. Let me know if you'd like to start a new order!" {
		t.Fatalf("unexpected cancellation: ok=%v msg=%q", res.OK, res.Message)
	}

	if _, ok := s.Snapshot(""); ok {
		t.Fatal("cancelled order must be removed from the store")
	}
	view := s.ViewOrder(ctx, "")
	if view.OK {
		t.Fatalf("view after cancel should report empty, got %q", view.Message)
	}
}

func TestCancelConfirmedOrderFlagsStaffCheck(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "BLT", 1, "")
	s.ConfirmOrder(ctx, "")

	res := s.CancelOrder(ctx, "")
	if !res.OK || !strings.Contains(res.Message, "check with staff") {
		t.Fatalf("unexpected cancellation of confirmed order: %q", res.Message)
	}
	if _, ok := s.Snapshot(""); ok {
		t.Fatal("record must be deleted even when the order was confirmed")
	}
}

func TestCancelMissingOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	res := s.CancelOrder(context.Background(), "")
	if res.OK || res.Message != "There's no order to cancel." {
		t.Fatalf("unexpected result: ok=%v msg=%q", res.OK, res.Message)
	}
}

func TestModifyItemReplacesCustomizations(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "Turkey Club", 1, "no lettuce")
	s.AddItem(ctx, "", "Turkey Club", 1, "extra cheese")

	res := s.ModifyItem(ctx, "", "TURKEY CLUB", "no lettuce, extra tomato")
	if !res.OK || res.Message != "Updated Turkey Club: no lettuce, extra tomato" {
		t.Fatalf("unexpected modify result: ok=%v msg=%q", res.OK, res.Message)
	}

	o, _ := s.Snapshot("")
	if o.Lines[0].Customizations != "no lettuce, extra tomato" {
		t.Fatalf("first line not updated: %+v", o.Lines[0])
	}
	if o.Lines[1].Customizations != "extra cheese" {
		t.Fatalf("second line must be untouched: %+v", o.Lines[1])
	}
}

func TestModifyItemNotFound(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "BLT", 1, "")
	res := s.ModifyItem(ctx, "", "Italian Sub", "on wheat")
	if res.OK || res.Message != "Couldn't find 'Italian Sub' in your order to modify." {
		t.Fatalf("unexpected result: ok=%v msg=%q", res.OK, res.Message)
	}
}

func TestClearOrderKeepsRecord(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "", "BLT", 2, "")
	s.ConfirmOrder(ctx, "")

	res := s.ClearOrder(ctx, "")
	if !res.OK || res.Message != "Cleared all items from your order. What would you like to order?" {
		t.Fatalf("unexpected clear result: ok=%v msg=%q", res.OK, res.Message)
	}

	o, ok := s.Snapshot("")
	if !ok {
		t.Fatal("cleared order record must survive")
	}
	if len(o.Lines) != 0 || o.Status != StatusBuilding {
		t.Fatalf("clear must reset lines and status: %+v", o)
	}

	add := s.AddItem(ctx, "", "Veggie Delight", 1, "")
	if !add.OK {
		t.Fatalf("add after clear failed: %q", add.Message)
	}
}

func TestClearMissingOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	res := s.ClearOrder(context.Background(), "")
	if res.OK || res.Message != "Your order is already empty." {
		t.Fatalf("unexpected result: ok=%v msg=%q", res.OK, res.Message)
	}
}

func TestOrdersAreScopedByID(t *testing.T) {
	t.Parallel()

	s := NewStore(WithClock(fixedClock()))
	ctx := context.Background()

	s.AddItem(ctx, "thread-a", "BLT", 1, "")
	s.AddItem(ctx, "thread-b", "Turkey Club", 2, "")

	a := s.ViewOrder(ctx, "thread-a")
	if strings.Contains(a.Message, "Turkey Club") {
		t.Fatalf("thread-a sees thread-b's lines: %q", a.Message)
	}
	b := s.ViewOrder(ctx, "thread-b")
	if !strings.Contains(b.Message, "2 x Turkey Club") {
		t.Fatalf("thread-b summary wrong: %q", b.Message)
	}
}

type captureArchive struct {
	records []Order
	err     error
}

func (c *captureArchive) Record(ctx context.Context, o Order) error {
	c.records = append(c.records, o)
	return c.err
}

type captureNotifier struct {
	orders []Order
	err    error
}

func (c *captureNotifier) OrderConfirmed(ctx context.Context, o Order) error {
	c.orders = append(c.orders, o)
	return c.err
}

func TestConfirmOrderDispatchesHooks(t *testing.T) {
	t.Parallel()

	archive := &captureArchive{}
	notifier := &captureNotifier{}
	s := NewStore(WithClock(fixedClock()), WithArchive(archive), WithNotifier(notifier))
	ctx := context.Background()

	s.AddItem(ctx, "", "BLT", 2, "no mayo")
	res := s.ConfirmOrder(ctx, "")
	if !res.OK {
		t.Fatalf("unexpected rejection: %q", res.Message)
	}

	if len(archive.records) != 1 {
		t.Fatalf("expected 1 archived order, got %d", len(archive.records))
	}
	if len(notifier.orders) != 1 {
		t.Fatalf("expected 1 kitchen notification, got %d", len(notifier.orders))
	}
	if got := archive.records[0]; got.Status != StatusConfirmed || len(got.Lines) != 1 {
		t.Fatalf("archived snapshot wrong: %+v", got)
	}
}

func TestConfirmOrderHookFailureIsNotSurfaced(t *testing.T) {
	t.Parallel()

	archive := &captureArchive{err: errors.New("db down")}
	s := NewStore(WithClock(fixedClock()), WithArchive(archive))
	ctx := context.Background()

	s.AddItem(ctx, "", "BLT", 1, "")
	res := s.ConfirmOrder(ctx, "")
	if !res.OK {
		t.Fatalf("archive failure leaked to the customer: %q", res.Message)
	}
}
