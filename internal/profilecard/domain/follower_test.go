package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mobileheap/profilecard/internal/profilecard/domain"
)

func TestNextFollowerID_Returns(t *testing.T) {
	tests := []struct {
		name          string
		maxExistingID int64
		expected      int64
	}{
		{
			name:          "one_when_set_is_empty",
			maxExistingID: 0,
			expected:      1,
		},
		{
			name:          "max_plus_one",
			maxExistingID: 41,
			expected:      42,
		},
		{
			name:          "one_when_max_is_negative",
			maxExistingID: -5,
			expected:      1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, domain.NextFollowerID(tc.maxExistingID))
		})
	}
}

func TestNewFollower_Returns(t *testing.T) {
	follower := domain.NewFollower(7)

	assert.Equal(t, int64(7), follower.ID)
	assert.Equal(t, "Follower 7", follower.Name)
	assert.False(t, follower.IsFollowing)
}
