package models

type LookupKind string

const (
	LookupKindCentury        LookupKind = "century"
	LookupKindClassification LookupKind = "classification"
)

/*
Lookup is one selectable filter value, such as a century or a
classification.
*/
type Lookup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

/*
CachedLookups is a row of the lookups table.
*/
type CachedLookups struct {
	Kind        string
	Items       DbLookupSlice
	RefreshedAt int64
}
