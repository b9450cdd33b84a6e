package entity

import (
	"strconv"
	"strings"
)

// CheckoutConfig é a configuração visual e de funcionalidades de uma página
// de checkout. Campos cosméticos (timer, marquee, contador de vendas,
// reviews) são servidos como dado; quem renderiza é o front.
type CheckoutConfig struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Slug                string  `json:"slug"`
	DisplayLogoText     Flag    `json:"display_logo_text"`
	DisplayLogoFlag     Flag    `json:"display_logo_flag"`
	Logotipo            string  `json:"logotipo"`
	Favicon             string  `json:"favicon"`
	OrderBumpsEnabled   Flag    `json:"order_bumps_enabled"`
	OrderBumpMessage    string  `json:"order_bump_message"`
	TimerEnabled        Flag    `json:"timer_enabled"`
	TimerMessage        string  `json:"timer_message"`
	TimerDuration       *string `json:"timer_duration"`
	CouponsEnabled      Flag    `json:"coupons_enabled"`
	BannersEnabled      Flag    `json:"banners_enabled"`
	BannerImage         string  `json:"banner_image"`
	MarqueeEnabled      Flag    `json:"marquee_enabled"`
	MarqueeText         *string `json:"marquee_text"`
	SalesCounterEnabled Flag    `json:"sales_counter_enabled"`
	SalesMessage        string  `json:"sales_message"`
	SalesMin            int     `json:"sales_min"`
	SalesMax            int     `json:"sales_max"`
	ReviewsEnabled      Flag    `json:"reviews_enabled"`
	Reviews             *string `json:"reviews"`
	PrimaryColor        string  `json:"primary_color"`
	SecondaryColor      string  `json:"secondary_color"`
	BackgroundColor     string  `json:"background_color"`
	TextColor           string  `json:"text_color"`
}

const defaultTimerSeconds = 900

// TimerSeconds normaliza timer_duration para segundos. Aceita um número puro
// ou o formato "HH:MM:SS"; qualquer outra coisa cai no padrão de 15 minutos.
func (c *CheckoutConfig) TimerSeconds() int {
	if c.TimerDuration == nil || strings.TrimSpace(*c.TimerDuration) == "" {
		return defaultTimerSeconds
	}
	raw := strings.TrimSpace(*c.TimerDuration)

	if secs, err := strconv.Atoi(raw); err == nil {
		return secs
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return defaultTimerSeconds
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	s, errS := strconv.Atoi(parts[2])
	if errH != nil || errM != nil || errS != nil {
		return defaultTimerSeconds
	}
	return h*3600 + m*60 + s
}

// CheckoutData é o envelope completo do catálogo servido ao front.
type CheckoutData struct {
	Checkout       *CheckoutConfig `json:"checkout"`
	Products       []Product       `json:"products"`
	OrderBumps     []OrderBump     `json:"orderbumps"`
	Coupons        []Coupon        `json:"coupons"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
}
