package config_test

import (
	"testing"

	"stock-reconciler/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "2023-10", cfg.Catalog.APIVersion)
	assert.Equal(t, "TR-AU", cfg.Catalog.Vendor)
	assert.Equal(t, 100, cfg.Catalog.PageSize)
	assert.Equal(t, 101, cfg.Catalog.TargetCapacity)
	assert.Equal(t, 100, cfg.Catalog.RestoreRate)
	assert.Equal(t, 0, cfg.Catalog.MaxThrottleRetries)
	assert.Equal(t, 1, cfg.Catalog.CooldownSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.IntervalMinutes)

	// The exempt allow-list defaults to the original placeholder SKUs.
	exempt := cfg.Reconcile.ExemptSet()
	assert.Contains(t, exempt, "this product keeps track of images 1")
	assert.Contains(t, exempt, "this product keeps track of images 2")
}

func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("CATALOG_SHOP_NAME", "my-test-shop")
	t.Setenv("CATALOG_VENDOR", "ACME")
	t.Setenv("SUPPLIER_URL", "https://feed.example.com/inventory")
	t.Setenv("SERVER_INTERVAL_MINUTES", "15")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "my-test-shop", cfg.Catalog.ShopName)
	assert.Equal(t, "ACME", cfg.Catalog.Vendor)
	assert.Equal(t, "https://feed.example.com/inventory", cfg.Supplier.URL)
	assert.Equal(t, 15, cfg.Server.IntervalMinutes)
}

func TestCatalogURL(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Catalog.ShopName = "acme"
	assert.Equal(t, "https://acme.myshopify.com/admin/api/2023-10/graphql.json", cfg.Catalog.URL())

	cfg.Catalog.Endpoint = "http://127.0.0.1:9999/graphql"
	assert.Equal(t, "http://127.0.0.1:9999/graphql", cfg.Catalog.URL())
}
