package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paglink/checkout-api/internal/entity"
)

type PaymentMethodRepository struct {
	DB *sql.DB
}

func NewPaymentMethodRepository(db *sql.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{DB: db}
}

func (r *PaymentMethodRepository) ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.PaymentMethod, error) {
	query := `
		SELECT id, payment_methods, discount_percentage, installment_fee,
		       tag, enable_client_side, config
		FROM checkout_payment_methods
		WHERE checkout_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar métodos de pagamento: %w", err)
	}
	defer rows.Close()

	var methods []entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		var config sql.NullString
		err := rows.Scan(
			&m.ID, &m.PaymentMethods, &m.DiscountPercentage, &m.InstallmentFee,
			&m.Tag, &m.EnableClientSide, &config,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear método de pagamento: %w", err)
		}
		if config.Valid {
			m.Config = []byte(config.String)
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}
