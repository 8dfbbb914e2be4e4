package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/listas-precios/internal/domain/pricing"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSplitCost_IncluyeIVA(t *testing.T) {
	split := pricing.SplitCost(d("11.3"), true, d("0.13"))

	assert.True(t, split.Gross.Equal(d("11.3")))
	assert.True(t, split.Net.Equal(d("10")), "neto = %s", split.Net)
}

func TestSplitCost_SinIVA(t *testing.T) {
	split := pricing.SplitCost(d("10"), false, d("0.13"))

	assert.True(t, split.Net.Equal(d("10")))
	assert.True(t, split.Gross.Equal(d("11.3")), "bruto = %s", split.Gross)
}

func TestSplitCost_RedondeoCincoDecimales(t *testing.T) {
	split := pricing.SplitCost(d("1"), true, d("0.13"))
	assert.Equal(t, "0.88496", split.Net.String())

	// mitad lejos de cero: 0.123455 * 1 -> 0.12346
	split = pricing.SplitCost(d("0.123455"), false, d("0"))
	assert.Equal(t, "0.12346", split.Gross.String())
}

func TestSplitCost_Propiedades(t *testing.T) {
	costs := []string{"0.01", "1", "3.33333", "10.5", "99.99", "1234.5678", "250000"}
	rates := []string{"0.01", "0.05", "0.13", "0.19", "0.21"}
	tolerance := d("0.00001")

	for _, c := range costs {
		for _, r := range rates {
			cost, rate := d(c), d(r)

			inc := pricing.SplitCost(cost, true, rate)
			assert.True(t, inc.Gross.Equal(cost), "bruto conservado c=%s r=%s", c, r)
			diff := inc.Net.Mul(d("1").Add(rate)).Round(5).Sub(inc.Gross.Round(5)).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance.Mul(d("2"))), "neto*(1+iva)≈bruto c=%s r=%s diff=%s", c, r, diff)

			exc := pricing.SplitCost(cost, false, rate)
			assert.True(t, exc.Net.Equal(cost), "neto conservado c=%s r=%s", c, r)
			diff = exc.Net.Mul(d("1").Add(rate)).Round(5).Sub(exc.Gross).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance), "neto*(1+iva)≈bruto c=%s r=%s diff=%s", c, r, diff)
		}
	}
}

func TestToNetYTaxPart_PrecisionMoneda(t *testing.T) {
	assert.Equal(t, "10", pricing.ToNet(d("11.3"), d("0.13")).String())
	assert.Equal(t, "1.3", pricing.TaxPart(d("11.3"), d("0.13")).String())

	// 5 / 1.13 = 4.4247... -> 4.42 ; IVA = 0.58
	assert.Equal(t, "4.42", pricing.ToNet(d("5"), d("0.13")).String())
	assert.Equal(t, "0.58", pricing.TaxPart(d("5"), d("0.13")).String())
}
