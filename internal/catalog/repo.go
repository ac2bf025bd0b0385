package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("product not found")
	ErrSKUTaken       = errors.New("sku already exists")
	ErrInvalidProduct = errors.New("invalid product")
)

type Repo struct{ DB *pgxpool.Pool }

type ListFilter struct {
	Category Category
	LowStock bool
	Search   string
	Page     int
	Limit    int
}

const productCols = `id, name, sku, category, price_cents, quantity,
	low_stock_threshold, COALESCE(image_url, ''), created_by, created_at, updated_at`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.PriceCents, &p.Quantity,
		&p.LowStockThreshold, &p.ImageURL, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *Repo) Create(ctx context.Context, p *Product) error {
	p.SKU = NormalizeSKU(p.SKU)
	if err := p.Validate(); err != nil {
		return err
	}
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now

	_, err := r.DB.Exec(ctx, `
		INSERT INTO products(id, name, sku, category, price_cents, quantity,
		                     low_stock_threshold, image_url, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NULLIF($8,''),$9,$10,$11)`,
		p.ID, p.Name, p.SKU, p.Category, p.PriceCents, p.Quantity,
		p.LowStockThreshold, p.ImageURL, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrSKUTaken, p.SKU)
	}
	return err
}

func (r *Repo) GetByID(ctx context.Context, id string) (Product, error) {
	p, err := scanProduct(r.DB.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

// List pakai filter dinamis; total dihitung dengan query COUNT yang sama filternya.
func (r *Repo) List(ctx context.Context, f ListFilter) ([]Product, int, error) {
	where := `WHERE 1=1`
	args := []any{}
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(` AND category=$%d`, len(args))
	}
	if f.LowStock {
		where += ` AND quantity <= low_stock_threshold`
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where += fmt.Sprintf(` AND (name ILIKE $%d OR sku ILIKE $%d)`, len(args), len(args))
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	q := fmt.Sprintf(`SELECT `+productCols+` FROM products %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

// ListAll untuk export CSV (tanpa pagination).
func (r *Repo) ListAll(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productCols+` FROM products ORDER BY sku`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update mengganti field katalog. Quantity sengaja TIDAK di-update di sini:
// stok hanya boleh berubah lewat ledger di package orders.
func (r *Repo) Update(ctx context.Context, p *Product) error {
	p.SKU = NormalizeSKU(p.SKU)
	if err := p.Validate(); err != nil {
		return err
	}
	ct, err := r.DB.Exec(ctx, `
		UPDATE products
		SET name=$2, sku=$3, category=$4, price_cents=$5,
		    low_stock_threshold=$6, image_url=NULLIF($7,''), updated_at=now()
		WHERE id=$1`,
		p.ID, p.Name, p.SKU, p.Category, p.PriceCents, p.LowStockThreshold, p.ImageURL)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrSKUTaken, p.SKU)
	}
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
