package viewmodels

import "github.com/adampresley/artbrowser/pkg/models"

type Settings struct {
	BaseViewModel
	Settings *models.Settings
}
