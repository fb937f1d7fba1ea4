// internal/models/decode.go
package models

import (
	"bytes"
	"encoding/json"
)

// StringList decodes a JSON array of strings. Non-string elements are
// dropped and any other JSON value decodes as an empty list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	for _, item := range items {
		var s string
		if isNull(item) || json.Unmarshal(item, &s) != nil {
			continue
		}
		*l = append(*l, s)
	}
	return nil
}

// UnmarshalJSON leaves a bound nil when it is not a JSON number, and the
// whole range empty when the value is not an object.
func (s *SalaryRange) UnmarshalJSON(data []byte) error {
	*s = SalaryRange{}

	var raw struct {
		From json.RawMessage `json:"from"`
		To   json.RawMessage `json:"to"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	s.From = number(raw.From)
	s.To = number(raw.To)
	return nil
}

// UnmarshalJSON decodes the listing field by field when the strict decode
// fails, so one malformed optional field does not lose the whole job.
func (j *Job) UnmarshalJSON(data []byte) error {
	type plain Job

	var p plain
	err := json.Unmarshal(data, &p)
	if err == nil {
		*j = Job(p)
		return nil
	}

	var fields map[string]json.RawMessage
	if json.Unmarshal(data, &fields) != nil {
		return err
	}

	p = plain{}
	for key, value := range fields {
		single, mErr := json.Marshal(map[string]json.RawMessage{key: value})
		if mErr != nil {
			continue
		}
		var field plain
		if json.Unmarshal(single, &field) == nil {
			_ = json.Unmarshal(single, &p)
		}
	}
	*j = Job(p)
	return nil
}

func number(raw json.RawMessage) *float64 {
	if len(raw) == 0 || isNull(raw) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
