package services

import (
	"testing"
	"time"

	"github.com/yungbote/smartnotes-backend/internal/types"
)

func TestCanSmartify(t *testing.T) {
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	later := base.Add(time.Hour)

	cases := []struct {
		name string
		rec  *types.Recording
		want bool
	}{
		{name: "nil_recording", rec: nil, want: false},
		{name: "never_smartified", rec: &types.Recording{UpdatedAt: base}, want: true},
		{name: "updated_after_smartify", rec: &types.Recording{UpdatedAt: later, SmartifiedAt: &base}, want: true},
		{name: "smartified_after_update", rec: &types.Recording{UpdatedAt: base, SmartifiedAt: &later}, want: false},
		{name: "equal_timestamps_not_allowed", rec: &types.Recording{UpdatedAt: base, SmartifiedAt: &base}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, reason := canSmartify(tc.rec)
			if got != tc.want {
				t.Fatalf("canSmartify=%v, want %v", got, tc.want)
			}
			if !got && reason == "" {
				t.Fatal("disallowed result must carry a reason")
			}
		})
	}
}
