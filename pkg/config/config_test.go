package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "BOB", cfg.PriceList.Currency)
	assert.False(t, cfg.PriceList.TaxInclusive)
	assert.Equal(t, 0.13, cfg.PriceList.TaxRate)
	assert.Zero(t, cfg.PriceList.BatchSize)
	assert.Equal(t, "uploads/listas-precios/", cfg.PriceList.UploadPrefix)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PRICELIST_CURRENCY", "USD")
	t.Setenv("PRICELIST_TAX_INCLUSIVE", "true")
	t.Setenv("PRICELIST_TAX_RATE", "0.05")
	t.Setenv("PRICELIST_BATCH_SIZE", "9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.PriceList.Currency)
	assert.True(t, cfg.PriceList.TaxInclusive)
	assert.Equal(t, 0.05, cfg.PriceList.TaxRate)
	assert.Equal(t, 9000, cfg.PriceList.BatchSize, "el límite lo aplica el caso de uso")
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
}

func TestLoad_TasaNegativa(t *testing.T) {
	t.Setenv("PRICELIST_TAX_RATE", "-0.1")
	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "listas", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/listas?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())
}
