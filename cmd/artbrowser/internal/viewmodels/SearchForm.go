package viewmodels

import (
	"strconv"

	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/artbrowser/pkg/models"
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type SearchForm struct {
	QueryString         string
	Centuries           []Option
	Classifications     []Option
	CenturyCount        int
	ClassificationCount int
}

func NewSearchForm(filter models.Filter, centuries, classifications []models.Lookup) SearchForm {
	return SearchForm{
		QueryString:         filter.QueryString,
		Centuries:           newOptions(filter.Century, centuries),
		Classifications:     newOptions(filter.Classification, classifications),
		CenturyCount:        len(centuries),
		ClassificationCount: len(classifications),
	}
}

// newOptions always leads with the "any" sentinel.
func newOptions(selected string, lookups []models.Lookup) []Option {
	result := []Option{
		{Value: models.AnyOption, Label: "Any", Selected: selected == models.AnyOption || selected == ""},
	}

	return append(result, slices.Map(lookups, func(lookup models.Lookup, index int) Option {
		value := strconv.Itoa(lookup.ID)

		return Option{
			Value:    value,
			Label:    lookup.Name,
			Selected: value == selected,
		}
	})...)
}
