package apitennis

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	sonic "github.com/bytedance/sonic"
)

// representation is one accepted wire encoding for an ambiguous scalar.
type representation uint8

const (
	repString representation = iota
	repInteger
	repFloat
)

var (
	stringOrInteger      = []representation{repString, repInteger}
	stringIntegerOrFloat = []representation{repString, repInteger, repFloat}
	nullLiteral          = []byte("null")
)

// decodeFlexible tries each representation in order and returns the canonical
// string form of the first one that parses. Floats are truncated to integers.
func decodeFlexible(raw []byte, accepted []representation) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, nullLiteral) {
		return "", false
	}

	for _, rep := range accepted {
		switch rep {
		case repString:
			var s string
			if err := sonic.Unmarshal(raw, &s); err == nil {
				return s, true
			}
		case repInteger:
			var n int64
			if err := sonic.Unmarshal(raw, &n); err == nil {
				return strconv.FormatInt(n, 10), true
			}
		case repFloat:
			var f float64
			if err := sonic.Unmarshal(raw, &f); err == nil && isTruncatable(f) {
				return strconv.FormatInt(int64(f), 10), true
			}
		}
	}

	return "", false
}

func isTruncatable(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > math.MinInt64 && f < math.MaxInt64
}

// flexString accepts a JSON string or integer. Anything else, including null,
// decodes as absent.
type flexString struct {
	Value string
	Valid bool
}

func (f *flexString) UnmarshalJSON(data []byte) error {
	f.Value, f.Valid = decodeFlexible(data, stringOrInteger)
	return nil
}

func (f flexString) ptr() *string {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// flexKey additionally accepts floating point numbers.
type flexKey struct {
	Value string
	Valid bool
}

func (f *flexKey) UnmarshalJSON(data []byte) error {
	f.Value, f.Valid = decodeFlexible(data, stringIntegerOrFloat)
	return nil
}

// flexList decodes a JSON array element by element. Elements that fail to
// decode are dropped and a non-array value decodes as an empty list.
type flexList[T any] []T

func (l *flexList[T]) UnmarshalJSON(data []byte) error {
	*l = nil

	var items []json.RawMessage
	if err := sonic.Unmarshal(data, &items); err != nil {
		return nil
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || bytes.Equal(trimmed, nullLiteral) {
			continue
		}
		var v T
		if err := sonic.Unmarshal(trimmed, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
