package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paglink/checkout-api/internal/entity"
)

type ProductRepository struct {
	DB *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.Product, error) {
	query := `
		SELECT id, product_id, product_name, description, price, final_price, image,
		       allow_quantity_selection, quantity_limit, product_type, service_type, service_config
		FROM checkout_products
		WHERE checkout_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID, &p.ProductID, &p.ProductName, &p.Description, &p.Price, &p.FinalPrice, &p.Image,
			&p.AllowQuantitySelection, &p.QuantityLimit, &p.ProductType, &p.ServiceType, &p.ServiceConfig,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
