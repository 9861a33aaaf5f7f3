package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexibleIDUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: `{"scriptId": 3}`, want: 3},
		{in: `{"scriptId": "3"}`, want: 3},
		{in: `{"scriptId": null}`, want: 0},
		{in: `{}`, want: 0},
		{in: `{"scriptId": "three"}`, wantErr: true},
		{in: `{"scriptId": 1.5}`, wantErr: true},
	}

	for _, tt := range tests {
		var req FavoriteRequest
		err := json.Unmarshal([]byte(tt.in), &req)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.in, err)
			continue
		}
		if req.ScriptID.Int64() != tt.want {
			t.Errorf("%s: got %d, want %d", tt.in, req.ScriptID, tt.want)
		}
	}
}
