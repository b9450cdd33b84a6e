package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paglink/checkout-api/internal/entity"
)

type CouponRepository struct {
	DB *sql.DB
}

func NewCouponRepository(db *sql.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

func (r *CouponRepository) ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.Coupon, error) {
	query := `
		SELECT id, code, discount_type, discount_value
		FROM checkout_coupons
		WHERE checkout_id = $1 AND active = true
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar cupons: %w", err)
	}
	defer rows.Close()

	var coupons []entity.Coupon
	for rows.Next() {
		var c entity.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear cupom: %w", err)
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}
