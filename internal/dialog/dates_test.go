package dialog

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid", input: "25.12.2024", want: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", input: "  25.12.2024  ", want: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{name: "wrong separator", input: "25/12/2024", wantErr: true},
		{name: "iso format", input: "2024-12-25", wantErr: true},
		{name: "day out of range", input: "32.01.2024", wantErr: true},
		{name: "invalid calendar day", input: "31.02.2024", wantErr: true},
		{name: "month out of range", input: "01.13.2024", wantErr: true},
		{name: "garbage", input: "завтра", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrBadDate) {
					t.Fatalf("ParseDate(%q) error = %v, want ErrBadDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	moment := time.Date(2024, 12, 1, 15, 42, 7, 123, time.UTC)
	got := dateOf(moment)
	want := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("dateOf() = %v, want %v", got, want)
	}
}
