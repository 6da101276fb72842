package browser

import "fmt"

var (
	ErrNoPage          = fmt.Errorf("no page in that direction")
	ErrRecordNotFound  = fmt.Errorf("no record at that position")
	ErrRecordMismatch  = fmt.Errorf("record at that position has changed")
	ErrUnknownTerm     = fmt.Errorf("term is not searchable")
	ErrEmptySearchTerm = fmt.Errorf("search value is empty")
)
