package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Receipt is the archived form of a confirmed order.
type Receipt struct {
	bun.BaseModel `bun:"table:order_receipts,alias:r"`

	ID          string    `bun:"id,pk"`
	OrderID     string    `bun:"order_id,notnull"`
	Summary     string    `bun:"summary,notnull"`
	ItemCount   int       `bun:"item_count,notnull"`
	ConfirmedAt time.Time `bun:"confirmed_at,notnull"`
}

// PostgresArchive writes one receipt row per confirmed order.
type PostgresArchive struct {
	db *bun.DB
}

func NewPostgresArchive(dsn string) *PostgresArchive {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return &PostgresArchive{db: bun.NewDB(sqldb, pgdialect.New())}
}

// Init creates the receipts table if it does not exist yet.
func (a *PostgresArchive) Init(ctx context.Context) error {
	_, err := a.db.NewCreateTable().
		Model((*Receipt)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (a *PostgresArchive) Record(ctx context.Context, o Order) error {
	receipt := &Receipt{
		ID:          uuid.NewString(),
		OrderID:     o.ID,
		Summary:     renderLines(o.Lines),
		ItemCount:   totalQuantity(o.Lines),
		ConfirmedAt: o.ConfirmedAt,
	}
	_, err := a.db.NewInsert().Model(receipt).Exec(ctx)
	return err
}

func (a *PostgresArchive) Close() error {
	return a.db.Close()
}
