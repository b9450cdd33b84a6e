package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectVisa(t *testing.T) {
	assert.Equal(t, BrandVisa, Detect("4111111111111111"))
	assert.Equal(t, BrandVisa, Detect("4"))

	// Prefixo Elo começado em 4 cai na regra Visa, que roda antes.
	assert.Equal(t, BrandVisa, Detect("401178"))
}

func TestDetectMastercard(t *testing.T) {
	assert.Equal(t, BrandMastercard, Detect("5112345678901234"))
	assert.Equal(t, BrandMastercard, Detect("5512345678901234"))
	assert.Equal(t, BrandMastercard, Detect("2212345678901234"))
	assert.Equal(t, BrandMastercard, Detect("2712345678901234"))

	// Fora das faixas 51-55 e 22-27.
	assert.NotEqual(t, BrandMastercard, Detect("5612345678901234"))
	assert.NotEqual(t, BrandMastercard, Detect("2112345678901234"))
}

func TestDetectAmex(t *testing.T) {
	assert.Equal(t, BrandAmex, Detect("341234567890123"))
	assert.Equal(t, BrandAmex, Detect("371234567890123"))
}

func TestDetectDiscover(t *testing.T) {
	assert.Equal(t, BrandDiscover, Detect("6011123456789012"))
	assert.Equal(t, BrandDiscover, Detect("6512345678901234"))
}

func TestDetectHipercard(t *testing.T) {
	assert.Equal(t, BrandHipercard, Detect("6062821234567890"))
	assert.Equal(t, BrandHipercard, Detect("3841001234567890"))
}

func TestDetectElo(t *testing.T) {
	assert.Equal(t, BrandElo, Detect("6362971234567890"))
	assert.Equal(t, BrandElo, Detect("6277801234567890"))
	assert.Equal(t, BrandElo, Detect("5041751234567890"))
}

func TestDetectNone(t *testing.T) {
	assert.Equal(t, BrandNone, Detect(""))
	assert.Equal(t, BrandNone, Detect("9999999999999999"))
	assert.Equal(t, BrandNone, Detect("1234"))
}

func TestDetectIgnoresSpaces(t *testing.T) {
	assert.Equal(t, BrandVisa, Detect("4111 1111 1111 1111"))
	assert.Equal(t, BrandElo, Detect("6362 9712 3456 7890"))
}
