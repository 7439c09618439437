package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTwelveHour(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "10:00 AM", want: 600},
		{in: "12:00 AM", want: 0},
		{in: "12:00 PM", want: 720},
		{in: "12:30 PM", want: 750},
		{in: "1:05 pm", want: 785},
		{in: "09:15 AM", want: 555},
		{in: "11:59 PM", want: 1439},
		{in: "25:00 AM", wantErr: true},
		{in: "10:61 PM", wantErr: true},
		{in: "0:30 AM", wantErr: true},
		{in: "10:00", wantErr: true},
		{in: "10-12", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := convertTwelveHour(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "00:00", want: 0},
		{in: "23:59", want: 1439},
		{in: "9:30", want: 570},
		{in: "5:00 PM", want: 1020},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "morning", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseClockTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinWindowInclusiveBounds(t *testing.T) {
	// Window 09:00-17:00.
	assert.True(t, withinWindow("09:00", "17:00", 540))
	assert.True(t, withinWindow("09:00", "17:00", 1020))
	assert.True(t, withinWindow("09:00", "17:00", 600))
	assert.False(t, withinWindow("09:00", "17:00", 539))
	assert.False(t, withinWindow("09:00", "17:00", 1021))
}

func TestWithinWindowTwelveHourBoundaries(t *testing.T) {
	assert.True(t, withinWindow("9:00 AM", "5:00 PM", 600))
	assert.False(t, withinWindow("9:00 AM", "5:00 PM", 1080))
}

func TestWithinWindowMalformedBoundaryFailsOpen(t *testing.T) {
	assert.True(t, withinWindow("garbage", "17:00", 0))
	assert.True(t, withinWindow("09:00", "late", 1439))
}

func TestSlotPattern(t *testing.T) {
	assert.True(t, slotPattern.MatchString("10:00 AM - 12:00 PM"))
	assert.True(t, slotPattern.MatchString("9:00 am - 5:30 pm"))
	assert.True(t, slotPattern.MatchString("09:00AM - 05:30PM"))
	assert.False(t, slotPattern.MatchString("10-12"))
	assert.False(t, slotPattern.MatchString("10:00 - 12:00"))
	assert.False(t, slotPattern.MatchString("10:00 AM"))
}
