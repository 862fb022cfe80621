package order

import (
	"context"
	"time"

	qstashx "delivoice/pkg/qstash"
)

type kitchenTicket struct {
	OrderID     string    `json:"order_id"`
	Summary     string    `json:"summary"`
	ItemCount   int       `json:"item_count"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// KitchenNotifier publishes confirmed orders to the kitchen webhook through
// QStash so the shop's ticket printer picks them up.
type KitchenNotifier struct {
	client      *qstashx.Client
	destination string
}

func NewKitchenNotifier(client *qstashx.Client, destination string) *KitchenNotifier {
	return &KitchenNotifier{client: client, destination: destination}
}

func (n *KitchenNotifier) OrderConfirmed(ctx context.Context, o Order) error {
	return n.client.PublishJSON(ctx, n.destination, kitchenTicket{
		OrderID:     o.ID,
		Summary:     renderLines(o.Lines),
		ItemCount:   totalQuantity(o.Lines),
		ConfirmedAt: o.ConfirmedAt,
	})
}
