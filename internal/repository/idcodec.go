package repository

import (
	"encoding/json"
	"strings"

	"courier-dispatch/internal/domain"
)

// encodeIDs renders an id sequence for a text column.
func encodeIDs(ids domain.IDList) string {
	if len(ids) == 0 {
		return "[]"
	}
	b, err := json.Marshal([]int64(ids))
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeIDs parses a stored id sequence. Anything unreadable is an empty sequence.
func decodeIDs(s string) domain.IDList {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return domain.IDList{}
	}
	var ids []int64
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return domain.IDList{}
	}
	return domain.IDList(ids)
}
