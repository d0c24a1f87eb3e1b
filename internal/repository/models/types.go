package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringSlice stores a []string as a JSON array column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	b, err := columnBytes("StringSlice", value)
	if err != nil {
		return err
	}
	if len(b) == 0 || string(b) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(b, (*[]string)(s))
}

// RawJSON stores an arbitrary JSON document verbatim.
type RawJSON json.RawMessage

// Value implements the driver.Valuer interface
func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	if !json.Valid(r) {
		return nil, errors.New("RawJSON Value: invalid JSON")
	}
	return string(r), nil
}

// Scan implements the sql.Scanner interface
func (r *RawJSON) Scan(value interface{}) error {
	b, err := columnBytes("RawJSON", value)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*r = RawJSON("[]")
		return nil
	}
	*r = append((*r)[:0], b...)
	return nil
}

// columnBytes copies a text column out of the driver's buffer.
func columnBytes(typeName string, value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return append([]byte(nil), v...), nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%s Scan: unsupported type %T", typeName, value)
	}
}
