package viewmodels

import (
	"net/url"
	"strconv"

	"github.com/adampresley/artbrowser/pkg/models"
)

// MissingInfoLabel stands in for a record without a title.
const MissingInfoLabel = "MISSING INFO"

type Tile struct {
	Index    int
	RecordID int
	HasImage bool
	ImageURL string
	ImageAlt string
	Title    string
}

type Preview struct {
	Tiles        []Tile
	HasPrev      bool
	HasNext      bool
	TotalRecords int
	Page         int
	Pages        int
}

func NewPreview(result models.SearchResult) Preview {
	preview := Preview{
		Tiles:        make([]Tile, 0, len(result.Records)),
		HasPrev:      result.Info.HasPrev(),
		HasNext:      result.Info.HasNext(),
		TotalRecords: result.Info.TotalRecords,
		Page:         result.Info.Page,
		Pages:        result.Info.Pages,
	}

	for index, record := range result.Records {
		tile := Tile{
			Index:    index,
			RecordID: record.ID,
			Title:    TitleOf(record),
		}

		if record.HasPrimaryImage() {
			tile.HasImage = true
			tile.ImageURL = ThumbnailURL(models.Value(record.PrimaryImageURL))
			tile.ImageAlt = describe(record)
		}

		preview.Tiles = append(preview.Tiles, tile)
	}

	return preview
}

// TitleOf returns the record title, or the fallback label.
func TitleOf(record models.Record) string {
	if models.Has(record.Title) {
		return models.Value(record.Title)
	}

	return MissingInfoLabel
}

// ThumbnailURL routes a remote image through the local thumbnail proxy.
func ThumbnailURL(src string) string {
	return "/thumbnail?src=" + url.QueryEscape(src)
}

func describe(record models.Record) string {
	if models.Has(record.Description) {
		return plainText(models.Value(record.Description))
	}

	if models.Has(record.Title) {
		return models.Value(record.Title)
	}

	return "Catalog object " + strconv.Itoa(record.ID)
}
