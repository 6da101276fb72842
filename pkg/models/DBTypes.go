package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type DbLookupSlice []Lookup

func (s *DbLookupSlice) Scan(src any) error {
	var (
		b []byte
	)

	switch v := src.(type) {
	case string:
		b = []byte(v)

	case []byte:
		b = v

	case nil:
		*s = DbLookupSlice{}
		return nil

	default:
		return fmt.Errorf("can't scan type %T into DbLookupSlice", v)
	}

	return json.Unmarshal(b, s)
}

func (s DbLookupSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	b, err := json.Marshal(s)

	if err != nil {
		return nil, fmt.Errorf("error marshaling lookups: %w", err)
	}

	return string(b), nil
}
