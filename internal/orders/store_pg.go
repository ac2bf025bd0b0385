package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgStore struct{ DB *pgxpool.Pool }

func (s *PgStore) InTx(ctx context.Context, fn func(tx StoreTx) error) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }() // no-op setelah commit

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type pgTx struct{ tx pgx.Tx }

// ReserveStock: lock baris produk (FOR UPDATE) -> cek -> kurangi. Cek dan
// mutasi terjadi di bawah lock yang sama, jadi dua request konkuren utk
// produk yang sama terserialisasi oleh storage, bukan oleh mutex aplikasi.
func (t *pgTx) ReserveStock(ctx context.Context, productID string, qty int) (ItemSnapshot, error) {
	var snap ItemSnapshot
	var stock int
	err := t.tx.QueryRow(ctx, `
		SELECT name, sku, price_cents, quantity
		FROM products WHERE id=$1 FOR UPDATE`, productID).
		Scan(&snap.Name, &snap.SKU, &snap.PriceCents, &stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return ItemSnapshot{}, ProductNotFoundError{ProductID: productID}
	}
	if err != nil {
		return ItemSnapshot{}, err
	}
	if stock < qty {
		return ItemSnapshot{}, InsufficientStockError{
			ProductID: productID, ProductName: snap.Name,
			Available: stock, Requested: qty,
		}
	}

	_, err = t.tx.Exec(ctx, `
		UPDATE products SET quantity = quantity - $2, updated_at = now()
		WHERE id=$1`, productID, qty)
	if err != nil {
		return ItemSnapshot{}, err
	}
	return snap, nil
}

func (t *pgTx) ReleaseStock(ctx context.Context, productID string, qty int) error {
	// Produk bisa saja sudah dihapus dari katalog; release jadi no-op.
	_, err := t.tx.Exec(ctx, `
		UPDATE products SET quantity = quantity + $2, updated_at = now()
		WHERE id=$1`, productID, qty)
	return err
}

func (t *pgTx) NextSeq(ctx context.Context, day string) (int, error) {
	var seq int
	err := t.tx.QueryRow(ctx, `
		INSERT INTO order_sequences(day, seq) VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE SET seq = order_sequences.seq + 1
		RETURNING seq`, day).Scan(&seq)
	return seq, err
}

func (t *pgTx) InsertOrder(ctx context.Context, o *Order) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO orders(id, order_number, total_cents, status,
		                   customer_name, customer_email, notes, created_by, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		o.ID, o.OrderNumber, o.TotalCents, o.Status,
		o.CustomerName, o.CustomerEmail, o.Notes, o.CreatedBy, o.CreatedAt)
	if err != nil {
		return err
	}
	for i, it := range o.Items {
		_, err = t.tx.Exec(ctx, `
			INSERT INTO order_items(order_id, line_no, product_id, product_name,
			                        sku, qty, price_cents, subtotal_cents)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			o.ID, i+1, it.ProductID, it.ProductName, it.SKU, it.Qty, it.PriceCents, it.SubtotalCents)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *pgTx) LockOrder(ctx context.Context, id string) (Order, error) {
	o, err := scanOrder(t.tx.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		return Order{}, err
	}
	o.Items, err = loadItems(ctx, t.tx, id)
	return o, err
}

func (t *pgTx) SetStatus(ctx context.Context, id string, st Status) error {
	return setStatus(ctx, t.tx, id, st)
}

// ---- read side (di luar unit of work) ----

const orderCols = `id, order_number, total_cents, status,
	customer_name, customer_email, notes, created_by, created_at`

// querier dipenuhi oleh pgx.Tx maupun *pgxpool.Pool.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.TotalCents, &o.Status,
		&o.CustomerName, &o.CustomerEmail, &o.Notes, &o.CreatedBy, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

func loadItems(ctx context.Context, q querier, orderID string) ([]Item, error) {
	rows, err := q.Query(ctx, `
		SELECT product_id, product_name, sku, qty, price_cents, subtotal_cents
		FROM order_items WHERE order_id=$1 ORDER BY line_no`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.SKU,
			&it.Qty, &it.PriceCents, &it.SubtotalCents); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *PgStore) GetOrder(ctx context.Context, id string) (Order, error) {
	o, err := scanOrder(s.DB.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return Order{}, err
	}
	o.Items, err = loadItems(ctx, s.DB, id)
	return o, err
}

func (s *PgStore) ListOrders(ctx context.Context, f ListFilter) ([]Order, int, error) {
	where := ``
	args := []any{}
	if f.Status != "" {
		args = append(args, f.Status)
		where = `WHERE status=$1`
	}

	var total int
	if err := s.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	q := fmt.Sprintf(`SELECT `+orderCols+` FROM orders %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := s.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range out {
		if out[i].Items, err = loadItems(ctx, s.DB, out[i].ID); err != nil {
			return nil, 0, err
		}
	}
	return out, total, nil
}

func (s *PgStore) SetStatus(ctx context.Context, id string, st Status) error {
	return setStatus(ctx, s.DB, id, st)
}

func setStatus(ctx context.Context, db querier, id string, st Status) error {
	ct, err := db.Exec(ctx, `UPDATE orders SET status=$2 WHERE id=$1`, id, st)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}
