package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Contains(t *testing.T) {
	i := NewInterval(at(10, 0), 30*time.Minute)

	assert.True(t, i.Contains(at(10, 0)))
	assert.True(t, i.Contains(at(10, 29)))
	assert.False(t, i.Contains(at(10, 30)))
	assert.False(t, i.Contains(at(9, 59)))
}

func TestInterval_ContainsEnd(t *testing.T) {
	i := NewInterval(at(10, 0), 30*time.Minute)

	assert.False(t, i.ContainsEnd(at(10, 0)))
	assert.True(t, i.ContainsEnd(at(10, 1)))
	assert.True(t, i.ContainsEnd(at(10, 30)))
	assert.False(t, i.ContainsEnd(at(10, 31)))
}

func TestInterval_Overlaps(t *testing.T) {
	base := NewInterval(at(10, 0), 30*time.Minute)

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{name: "same interval", other: base, want: true},
		{name: "touching before", other: NewInterval(at(9, 30), 30*time.Minute), want: false},
		{name: "touching after", other: NewInterval(at(10, 30), 30*time.Minute), want: false},
		{name: "partial", other: NewInterval(at(10, 15), 30*time.Minute), want: true},
		{name: "contained", other: NewInterval(at(10, 10), 10*time.Minute), want: true},
		{name: "containing", other: NewInterval(at(9, 0), 3*time.Hour), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}
