package llm

import (
	"errors"
	"testing"
)

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantKey string
		wantVal string
		wantErr bool
	}{
		{
			name:    "bare object",
			raw:     `{"branch":"BKK"}`,
			wantKey: "branch",
			wantVal: "BKK",
		},
		{
			name:    "object wrapped in prose",
			raw:     "นี่คือข้อมูลที่แปลงแล้ว:\n{\"project_no\": \"P1\"}\nหวังว่าจะเป็นประโยชน์",
			wantKey: "project_no",
			wantVal: "P1",
		},
		{
			name:    "object in code fence",
			raw:     "```json\n{\"name\": \"มานะ\"}\n```",
			wantKey: "name",
			wantVal: "มานะ",
		},
		{
			name:    "multiline object",
			raw:     "{\n  \"branch\": \"BKK\",\n  \"date\": \"2024-01-01\"\n}",
			wantKey: "date",
			wantVal: "2024-01-01",
		},
		{
			name:    "no object at all",
			raw:     "ขออภัย ไม่สามารถแปลงข้อความนี้ได้",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			raw:     `{"branch":"BKK"`,
			wantErr: true,
		},
		{
			name:    "empty output",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := DecodeObject(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrNoObject) {
					t.Fatalf("err = %v, want ErrNoObject", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := data[tt.wantKey]; got != tt.wantVal {
				t.Errorf("data[%q] = %v, want %q", tt.wantKey, got, tt.wantVal)
			}
		})
	}
}
