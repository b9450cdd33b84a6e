package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paglink/checkout-api/internal/entity"
)

type CheckoutRepository struct {
	DB *sql.DB
}

func NewCheckoutRepository(db *sql.DB) *CheckoutRepository {
	return &CheckoutRepository{DB: db}
}

// FindBySlug carrega a configuração da página; nil sem erro quando o slug
// não existe, para o caso virar 404 na camada de cima.
func (r *CheckoutRepository) FindBySlug(ctx context.Context, slug string) (*entity.CheckoutConfig, error) {
	query := `
		SELECT id, name, slug, display_logo_text, display_logo_flag, logotipo, favicon,
		       order_bumps_enabled, order_bump_message,
		       timer_enabled, timer_message, timer_duration,
		       coupons_enabled, banners_enabled, banner_image,
		       marquee_enabled, marquee_text,
		       sales_counter_enabled, sales_message, sales_min, sales_max,
		       reviews_enabled, reviews,
		       primary_color, secondary_color, background_color, text_color
		FROM checkouts
		WHERE slug = $1
	`
	c := &entity.CheckoutConfig{}
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&c.ID, &c.Name, &c.Slug, &c.DisplayLogoText, &c.DisplayLogoFlag, &c.Logotipo, &c.Favicon,
		&c.OrderBumpsEnabled, &c.OrderBumpMessage,
		&c.TimerEnabled, &c.TimerMessage, &c.TimerDuration,
		&c.CouponsEnabled, &c.BannersEnabled, &c.BannerImage,
		&c.MarqueeEnabled, &c.MarqueeText,
		&c.SalesCounterEnabled, &c.SalesMessage, &c.SalesMin, &c.SalesMax,
		&c.ReviewsEnabled, &c.Reviews,
		&c.PrimaryColor, &c.SecondaryColor, &c.BackgroundColor, &c.TextColor,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar checkout: %w", err)
	}
	return c, nil
}
