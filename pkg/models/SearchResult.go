package models

/*
SearchResult is one page of records plus the pagination cursors the API
issued for it. A new page always replaces the previous one.
*/
type SearchResult struct {
	Info    PageInfo `json:"info"`
	Records []Record `json:"records"`
}

type PageInfo struct {
	TotalRecordsPerQuery int    `json:"totalrecordsperquery"`
	TotalRecords         int    `json:"totalrecords"`
	Pages                int    `json:"pages"`
	Page                 int    `json:"page"`
	Next                 string `json:"next,omitempty"`
	Prev                 string `json:"prev,omitempty"`
}

func (i PageInfo) HasNext() bool {
	return i.Next != ""
}

func (i PageInfo) HasPrev() bool {
	return i.Prev != ""
}

/*
RecordAt returns the record at index on this page, and false when the
index is out of range.
*/
func (r SearchResult) RecordAt(index int) (Record, bool) {
	if index < 0 || index >= len(r.Records) {
		return Record{}, false
	}

	return r.Records[index], true
}
