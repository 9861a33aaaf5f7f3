package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleID accepts a script id sent as a JSON number or a numeric string.
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("script id %q is not numeric", s)
		}
		*id = FlexibleID(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("script id %s is not an integer", string(b))
	}
	*id = FlexibleID(n)
	return nil
}

func (id FlexibleID) Int64() int64 {
	return int64(id)
}
