package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paglink/checkout-api/internal/entity"
)

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create grava o pedido e os itens na mesma transação; o cartão nunca é
// persistido, só o que o gateway já processou.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao abrir transação: %w", err)
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (id, slug, customer_name, customer_email, customer_cpf,
		                    customer_ddi, customer_phone, total, coupon,
		                    payment_method, payment_method_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = tx.ExecContext(ctx, orderQuery,
		order.ID, order.Slug, order.Customer.Name, order.Customer.Email, order.Customer.CPF,
		order.Customer.DDI, order.Customer.Phone, order.Total, order.Coupon,
		order.PaymentMethod, order.PaymentMethodID, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("erro ao inserir pedido: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, item_id, name, price, quantity, type)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, itemQuery,
			order.ID, item.ID, item.Name, item.Price, item.Quantity, item.Type,
		)
		if err != nil {
			return fmt.Errorf("erro ao inserir item do pedido: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	query := `UPDATE orders SET status = $2 WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, orderID, status)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
