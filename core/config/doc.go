// Package config provides configuration management for the reconciler.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Supplier: feed URL and credential
//   - Catalog: storefront admin API credentials, vendor selector, location
//   - Reconcile: exempt SKU allow-list
//   - Notify: SMTP account and recipient for the unmatched-SKU report
//   - Log: logging level and format
//   - Server: status server port and scheduler interval
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.ShopName)
package config
