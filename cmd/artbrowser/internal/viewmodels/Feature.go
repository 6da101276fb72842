package viewmodels

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/adampresley/artbrowser/pkg/browser"
	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/microcosm-cc/bluemonday"
)

var markupPolicy = bluemonday.StrictPolicy()

type Fact struct {
	Label      string
	Value      string
	Searchable bool
	SearchURL  string
}

type Photo struct {
	URL string
	Alt string
}

type Feature struct {
	Present bool
	Title   string
	Dated   string
	Facts   []Fact
	Photos  []Photo
}

/*
NewFeature builds the fact sheet for the featured record. Facts keep a
fixed order; absent facts are left out. Culture, technique, medium and
each person are search shortcuts, with technique and medium lower-cased.
*/
func NewFeature(record *models.Record) Feature {
	if record == nil {
		return Feature{}
	}

	result := Feature{
		Present: true,
		Title:   TitleOf(*record),
		Dated:   models.Value(record.Dated),
		Facts:   []Fact{},
		Photos:  []Photo{},
	}

	add := func(label, value string, searchable bool) {
		if value == "" {
			return
		}

		fact := Fact{Label: label, Value: value, Searchable: searchable}

		if searchable {
			fact.SearchURL = "/fact?" + url.Values{"term": {label}, "value": {value}}.Encode()
		}

		result.Facts = append(result.Facts, fact)
	}

	add("Description", plainText(models.Value(record.Description)), false)
	add("Style", models.Value(record.Style), false)
	add(browser.TermCulture, models.Value(record.Culture), true)
	add(browser.TermTechnique, strings.ToLower(models.Value(record.Technique)), true)
	add(browser.TermMedium, strings.ToLower(models.Value(record.Medium)), true)

	for _, person := range record.People {
		add(browser.TermPeople, models.Value(person.DisplayName), true)
	}

	add("Dimensions", models.Value(record.Dimensions), false)
	add("Department", models.Value(record.Department), false)
	add("Division", models.Value(record.Division), false)
	add("Contact", models.Value(record.Contact), false)
	add("Credit", models.Value(record.CreditLine), false)

	images := make([]models.Image, 0, len(record.Images))

	for _, image := range record.Images {
		if models.Has(image.BaseImageURL) {
			images = append(images, image)
		}
	}

	for index, image := range images {
		result.Photos = append(result.Photos, Photo{
			URL: models.Value(image.BaseImageURL),
			Alt: altText(*record, image, index, len(images)),
		})
	}

	return result
}

// altText never returns an empty string.
func altText(record models.Record, image models.Image, index, total int) string {
	if models.Has(image.AltText) {
		return plainText(models.Value(image.AltText))
	}

	if models.Has(image.Description) {
		return plainText(models.Value(image.Description))
	}

	name := fmt.Sprintf("Catalog object %d", record.ID)

	if models.Has(record.Title) {
		name = models.Value(record.Title)
	}

	if total > 1 {
		return fmt.Sprintf("%s, image %d of %d", name, index+1, total)
	}

	return name
}

// plainText strips any markup the API embeds in free-text fields.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(markupPolicy.Sanitize(s)))
}
