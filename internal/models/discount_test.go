package models

import (
	"testing"
	"time"
)

func validTestCode() DiscountCode {
	return DiscountCode{
		Code:          "SAVE10",
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
		AppliesTo:     ItemTypeArtwork,
		StartDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}
}

func TestDiscountCode_Validate(t *testing.T) {
	past := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		modify  func(d *DiscountCode)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid percentage code",
			modify:  func(d *DiscountCode) {},
			wantErr: false,
		},
		{
			name: "valid fixed code",
			modify: func(d *DiscountCode) {
				d.DiscountType = DiscountFixed
				d.DiscountValue = 2500
			},
			wantErr: false,
		},
		{
			name:    "empty code",
			modify:  func(d *DiscountCode) { d.Code = "  " },
			wantErr: true,
			errMsg:  "code is required",
		},
		{
			name:    "unknown discount type",
			modify:  func(d *DiscountCode) { d.DiscountType = "bogo" },
			wantErr: true,
			errMsg:  "invalid discount type",
		},
		{
			name:    "percentage over 100",
			modify:  func(d *DiscountCode) { d.DiscountValue = 150 },
			wantErr: true,
			errMsg:  "percentage value must be between 1 and 100",
		},
		{
			name:    "percentage of zero",
			modify:  func(d *DiscountCode) { d.DiscountValue = 0 },
			wantErr: true,
			errMsg:  "percentage value must be between 1 and 100",
		},
		{
			name: "fixed value of zero",
			modify: func(d *DiscountCode) {
				d.DiscountType = DiscountFixed
				d.DiscountValue = 0
			},
			wantErr: true,
			errMsg:  "fixed discount value must be positive",
		},
		{
			name:    "invalid applies_to",
			modify:  func(d *DiscountCode) { d.AppliesTo = "sculpture" },
			wantErr: true,
			errMsg:  "invalid applies_to type",
		},
		{
			name:    "negative minimum purchase",
			modify:  func(d *DiscountCode) { d.MinPurchase = -100 },
			wantErr: true,
			errMsg:  "minimum purchase cannot be negative",
		},
		{
			name:    "negative max uses",
			modify:  func(d *DiscountCode) { d.MaxUses = -1 },
			wantErr: true,
			errMsg:  "max uses cannot be negative",
		},
		{
			name:    "missing start date",
			modify:  func(d *DiscountCode) { d.StartDate = time.Time{} },
			wantErr: true,
			errMsg:  "start date is required",
		},
		{
			name:    "end date before start date",
			modify:  func(d *DiscountCode) { d.EndDate = &past },
			wantErr: true,
			errMsg:  "end date cannot be before start date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := validTestCode()
			tt.modify(&code)

			err := code.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("DiscountCode.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("DiscountCode.Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestDiscountCode_WithinWindow(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name    string
		endDate *time.Time
		now     time.Time
		want    bool
	}{
		{"before start", &end, start.Add(-time.Hour), false},
		{"at start", &end, start, true},
		{"inside window", &end, start.AddDate(0, 0, 14), true},
		{"at end", &end, end, true},
		{"after end", &end, end.Add(time.Hour), false},
		{"open-ended far future", nil, start.AddDate(10, 0, 0), true},
		{"open-ended before start", nil, start.Add(-time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := DiscountCode{StartDate: start, EndDate: tt.endDate}
			if got := code.WithinWindow(tt.now); got != tt.want {
				t.Errorf("WithinWindow(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestDiscountCode_UsesRemaining(t *testing.T) {
	tests := []struct {
		name        string
		maxUses     int
		currentUses int
		want        bool
	}{
		{"unlimited", 0, 1000, true},
		{"under cap", 5, 4, true},
		{"at cap", 5, 5, false},
		{"over cap", 5, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := DiscountCode{MaxUses: tt.maxUses, CurrentUses: tt.currentUses}
			if got := code.UsesRemaining(); got != tt.want {
				t.Errorf("UsesRemaining() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"save10", "SAVE10"},
		{"  Save10  ", "SAVE10"},
		{"SAVE10", "SAVE10"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCode(tt.input); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
