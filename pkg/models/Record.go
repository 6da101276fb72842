package models

import (
	"strconv"
	"strings"
)

/*
Record is a single catalog object as returned by the search API. Every
descriptive attribute is optional, so they are modeled as nullable
fields. Use the Has/Value helpers rather than dereferencing directly.
*/
type Record struct {
	ID              int      `json:"id"`
	ObjectNumber    *string  `json:"objectnumber,omitempty"`
	Title           *string  `json:"title,omitempty"`
	Dated           *string  `json:"dated,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Style           *string  `json:"style,omitempty"`
	Culture         *string  `json:"culture,omitempty"`
	Technique       *string  `json:"technique,omitempty"`
	Medium          *string  `json:"medium,omitempty"`
	Dimensions      *string  `json:"dimensions,omitempty"`
	Department      *string  `json:"department,omitempty"`
	Division        *string  `json:"division,omitempty"`
	Contact         *string  `json:"contact,omitempty"`
	CreditLine      *string  `json:"creditline,omitempty"`
	People          []Person `json:"people,omitempty"`
	Images          []Image  `json:"images,omitempty"`
	PrimaryImageURL *string  `json:"primaryimageurl,omitempty"`
	URL             *string  `json:"url,omitempty"`
}

type Person struct {
	DisplayName *string `json:"displayname,omitempty"`
	Role        *string `json:"role,omitempty"`
}

type Image struct {
	BaseImageURL *string `json:"baseimageurl,omitempty"`
	AltText      *string `json:"alttext,omitempty"`
	Description  *string `json:"description,omitempty"`
	Width        int     `json:"width,omitempty"`
	Height       int     `json:"height,omitempty"`
}

/*
Value returns the trimmed string behind an optional field, or an empty
string when the field is absent.
*/
func Value(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}

/*
Has reports whether an optional field is present and not blank.
*/
func Has(s *string) bool {
	return Value(s) != ""
}

func (r Record) HasPrimaryImage() bool {
	return Has(r.PrimaryImageURL)
}

func (r Record) String() string {
	b := &strings.Builder{}

	b.WriteString("Record (" + strconv.Itoa(r.ID) + ") '" + Value(r.Title) + "'\n")
	b.WriteString("  Dated: " + Value(r.Dated) + "\n")
	b.WriteString("  Culture: " + Value(r.Culture) + "\n")
	b.WriteString("  Technique: " + Value(r.Technique) + "\n")
	b.WriteString("  Medium: " + Value(r.Medium) + "\n")
	b.WriteString("  Images: " + strconv.Itoa(len(r.Images)) + "\n")

	return b.String()
}
