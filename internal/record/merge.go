package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Merge overlays the top-level fields present in data onto current. Fields
// absent from data (or set to null) keep their current value; a present
// field replaces the current value wholesale. Unknown fields are ignored.
// Either every field applies or, on error, current is returned unchanged.
func Merge(current Record, data []byte) (Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return current, fmt.Errorf("%w: expected a JSON object", ErrInvalidImport)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return current, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	merged := current.Clone()
	for key, raw := range fields {
		if isNull(raw) {
			continue
		}

		var err error
		switch key {
		case "salary":
			merged.Salary, err = decodeField(raw, merged.Salary)
		case "budgets":
			merged.Budgets, err = decodeField(raw, merged.Budgets)
		case "transactions":
			merged.Transactions, err = decodeField(raw, merged.Transactions)
		case "goals":
			merged.Goals, err = decodeField(raw, merged.Goals)
		case "inflationData":
			merged.InflationData, err = decodeField(raw, merged.InflationData)
		default:
			continue
		}
		if err != nil {
			return current, fmt.Errorf("%w: field %s: %v", ErrInvalidImport, key, err)
		}
	}

	return merged, nil
}

// Decode builds a record from stored data by merging it over the default
// record, so older or partial stored states still load.
func Decode(data []byte) (Record, error) {
	r, err := Merge(Default(), data)
	if err != nil {
		return Record{}, err
	}
	r.Refresh()
	return r, nil
}

// decodeField decodes raw into a fresh value of the field's type, so the
// incoming value replaces rather than patches the current one.
func decodeField[T any](raw json.RawMessage, _ T) (T, error) {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, err
	}
	return value, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
