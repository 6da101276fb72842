package main

import (
	"net/http"
	"time"

	"github.com/adampresley/artbrowser/pkg/services"
	"github.com/spf13/viper"
)

const defaultTimeout = 30 * time.Second

func newCatalog() (services.CatalogService, error) {
	timeout := viper.GetDuration("timeout")

	if timeout == 0 {
		timeout = defaultTimeout
	}

	return services.NewCatalogService(services.CatalogServiceConfig{
		APIKey:     viper.GetString("api-key"),
		BaseURL:    viper.GetString("api-url"),
		HTTPClient: &http.Client{Timeout: timeout},
		PageSize:   viper.GetInt("page-size"),
	})
}

func newPrinter() (printer, error) {
	format, err := parseFormat(viper.GetString("output"))

	if err != nil {
		return printer{}, err
	}

	return printer{format: format}, nil
}
