package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// TimeFromSlackTS converts a Slack message timestamp ID ("1662768000.123456",
// Unix seconds with fractional precision) into a time.
func TimeFromSlackTS(ts string) (time.Time, error) {
	secPart, fracPart, _ := strings.Cut(ts, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid Slack timestamp", goerr.V("ts", ts))
	}

	var nsec int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return time.Time{}, goerr.Wrap(err, "invalid Slack timestamp", goerr.V("ts", ts))
		}
		nsec = frac * pow10(9-len(fracPart))
	}

	return time.Unix(sec, nsec).UTC(), nil
}

func pow10(n int) int64 {
	v := int64(1)
	for range n {
		v *= 10
	}
	return v
}
