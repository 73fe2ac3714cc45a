package interval_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/interval"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339Nano, s)
	gt.NoError(t, err).Required()
	return v
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  interval.Duration
		text  string
	}{
		{
			name:  "same instant",
			start: "2022-09-10T00:00:06Z",
			end:   "2022-09-10T00:00:06Z",
			want:  interval.Duration{},
			text:  "0 seconds",
		},
		{
			name:  "sub-second is truncated",
			start: "2022-09-10T00:00:06Z",
			end:   "2022-09-10T00:00:06.900Z",
			want:  interval.Duration{},
			text:  "0 seconds",
		},
		{
			name:  "seconds",
			start: "2022-09-10T00:00:06Z",
			end:   "2022-09-10T00:00:15Z",
			want:  interval.Duration{Seconds: 9},
			text:  "9 seconds",
		},
		{
			name:  "singular units",
			start: "2022-09-10T00:00:00Z",
			end:   "2022-09-10T01:01:01Z",
			want:  interval.Duration{Hours: 1, Minutes: 1, Seconds: 1},
			text:  "1 hour 1 minute 1 second",
		},
		{
			name:  "zero units are omitted",
			start: "2022-09-10T00:00:00Z",
			end:   "2022-09-10T00:05:00Z",
			want:  interval.Duration{Minutes: 5},
			text:  "5 minutes",
		},
		{
			name:  "calendar months",
			start: "2022-01-15T00:00:00Z",
			end:   "2022-03-16T02:00:00Z",
			want:  interval.Duration{Months: 2, Days: 1, Hours: 2},
			text:  "2 months 1 day 2 hours",
		},
		{
			name:  "month end does not overflow",
			start: "2022-01-31T00:00:00Z",
			end:   "2022-03-01T00:00:00Z",
			want:  interval.Duration{Months: 1, Days: 1},
			text:  "1 month 1 day",
		},
		{
			name:  "years",
			start: "2020-03-01T00:00:00Z",
			end:   "2022-02-28T12:00:00Z",
			want:  interval.Duration{Years: 1, Months: 11, Days: 27, Hours: 12},
			text:  "1 year 11 months 27 days 12 hours",
		},
		{
			name:  "reversed arguments",
			start: "2022-09-10T00:00:15Z",
			end:   "2022-09-10T00:00:06Z",
			want:  interval.Duration{Seconds: 9},
			text:  "9 seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := interval.Between(mustParse(t, tt.start), mustParse(t, tt.end))
			gt.Value(t, d).Equal(tt.want)
			gt.Value(t, d.String()).Equal(tt.text)
		})
	}
}

func TestIsZero(t *testing.T) {
	gt.B(t, interval.Duration{}.IsZero()).True()
	gt.B(t, interval.Duration{Seconds: 1}.IsZero()).False()
}
