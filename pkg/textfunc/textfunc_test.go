package textfunc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no functions", "plain *text*", "plain *text*"},
		{"compact date", "{{DATE(2017-02-14T06:08:39Z)}}", "2/14/2017"},
		{"explicit compact", "{{DATE(2017-02-14T06:08:39Z, COMPACT)}}", "2/14/2017"},
		{"short date", "On {{DATE(2017-02-14T06:08:39Z, SHORT)}}.", "On Tue, Feb 14, 2017."},
		{"long date", "{{DATE(2017-02-14T06:08:39Z,LONG)}}", "Tuesday, February 14, 2017"},
		{"lower case style", "{{DATE(2017-02-14T06:08:39Z, short)}}", "Tue, Feb 14, 2017"},
		{"time", "at {{TIME(2017-02-14T18:08:39Z)}}", "at 6:08 PM"},
		{"offset", "{{TIME(2017-02-14T06:08:39+02:00)}}", "4:08 AM"},
		{"both", "**{{DATE(2017-02-14T06:08:39Z)}}** {{TIME(2017-02-14T06:08:39Z)}}", "**2/14/2017** 6:08 AM"},
		{"bad time", "{{DATE(yesterday)}}", "{{DATE(yesterday)}}"},
		{"bad style", "{{DATE(2017-02-14T06:08:39Z, MEDIUM)}}", "{{DATE(2017-02-14T06:08:39Z, MEDIUM)}}"},
		{"time with style", "{{TIME(2017-02-14T06:08:39Z, SHORT)}}", "{{TIME(2017-02-14T06:08:39Z, SHORT)}}"},
		{"unknown function", "{{NOW()}}", "{{NOW()}}"},
		{"unclosed", "{{DATE(2017-02-14T06:08:39Z)", "{{DATE(2017-02-14T06:08:39Z)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.in, nil))
		})
	}
}

func TestExpandLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	assert.Equal(t, "2/15/2017 3:08 AM", Expand("{{DATE(2017-02-14T18:08:39Z)}} {{TIME(2017-02-14T18:08:39Z)}}", loc))

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("no tz database")
	}
	require.NotNil(t, ny)
	assert.Equal(t, "1:08 PM", Expand("{{TIME(2017-02-14T18:08:39Z)}}", ny))
}
