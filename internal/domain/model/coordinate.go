package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coordinate is a nullable latitude or longitude. The backend stores coordinates
// as numbers in some deployments and as text in others, so both decode here.
type Coordinate struct {
	Float64 float64
	Valid   bool
}

// NewCoordinate returns a valid Coordinate
func NewCoordinate(v float64) Coordinate {
	return Coordinate{Float64: v, Valid: true}
}

// Or returns the value when set, fallback otherwise. Zero counts as unset.
func (c Coordinate) Or(fallback float64) float64 {
	if !c.Valid || c.Float64 == 0 || math.IsNaN(c.Float64) || math.IsInf(c.Float64, 0) {
		return fallback
	}
	return c.Float64
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = Coordinate{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.parse(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", data, err)
	}
	*c = NewCoordinate(f)
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Float64)
}

// Scan implements sql.Scanner
func (c *Coordinate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = Coordinate{}
	case float64:
		*c = NewCoordinate(v)
	case int64:
		*c = NewCoordinate(float64(v))
	case []byte:
		c.parse(string(v))
	case string:
		c.parse(v)
	default:
		return fmt.Errorf("unsupported coordinate type %T", src)
	}
	return nil
}

// Value implements driver.Valuer
func (c Coordinate) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return c.Float64, nil
}

// parse leaves the coordinate invalid on empty or unparsable text
func (c *Coordinate) parse(s string) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*c = Coordinate{}
		return
	}
	*c = NewCoordinate(f)
}
