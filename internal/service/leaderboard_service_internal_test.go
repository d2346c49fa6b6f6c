package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/fitrank/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
)

func TestExpireSeconds(t *testing.T) {
	testCases := []struct {
		Desc     string
		TTL      time.Duration
		Expected int
	}{
		{Desc: "sub-second ttl still expires", TTL: 300 * time.Millisecond, Expected: 1},
		{Desc: "whole seconds", TTL: time.Minute, Expected: 60},
		{Desc: "fraction truncated", TTL: 2500 * time.Millisecond, Expected: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, expireSeconds(tc.TTL))
		})
	}
}

func TestNewLeaderboardServiceDefaultTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	ls := NewLeaderboardService(mocks.NewMockWorkoutsRepositoryI(ctrl), mocks.NewMockUsersRepositoryI(ctrl), 0, nil)
	assert.Equal(t, DefaultLeaderboardTTL, ls.ttl)
}
