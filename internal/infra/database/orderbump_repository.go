package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paglink/checkout-api/internal/entity"
)

type OrderBumpRepository struct {
	DB *sql.DB
}

func NewOrderBumpRepository(db *sql.DB) *OrderBumpRepository {
	return &OrderBumpRepository{DB: db}
}

func (r *OrderBumpRepository) ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.OrderBump, error) {
	query := `
		SELECT id, product_id, product_name, description, price, final_price, image,
		       specific_products, allow_quantity_selection, quantity_limit
		FROM checkout_orderbumps
		WHERE checkout_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar orderbumps: %w", err)
	}
	defer rows.Close()

	var bumps []entity.OrderBump
	for rows.Next() {
		var b entity.OrderBump
		err := rows.Scan(
			&b.ID, &b.ProductID, &b.ProductName, &b.Description, &b.Price, &b.FinalPrice, &b.Image,
			&b.SpecificProducts, &b.AllowQuantitySelection, &b.QuantityLimit,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear orderbump: %w", err)
		}
		bumps = append(bumps, b)
	}
	return bumps, rows.Err()
}
