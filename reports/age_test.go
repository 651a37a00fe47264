// path: reports/age_test.go
package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeAgeBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{0, "0초 전"},
		{45 * time.Second, "45초 전"},
		{59 * time.Second, "59초 전"},
		{60 * time.Second, "1분 전"},
		{90 * time.Second, "1분 전"},
		{59 * time.Minute, "59분 전"},
		{time.Hour, "1시간 전"},
		{23 * time.Hour, "23시간 전"},
		{24 * time.Hour, "1일 전"},
		{48 * time.Hour, "2일 전"},
		{29 * 24 * time.Hour, "29일 전"},
		{30 * 24 * time.Hour, "1달 전"},
		{40 * 24 * time.Hour, "1달 전"},
		{65 * 24 * time.Hour, "2달 전"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RelativeAge(now, now.Add(-tc.age)), "age %s", tc.age)
	}
}

func TestRelativeAgeFutureTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "0초 전", RelativeAge(now, now.Add(time.Minute)))
}
