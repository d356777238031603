package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	recs := []Recording{
		{Language: "Hindi", UserID: "u1", Region: "Odisha"},
		{Language: "hindi ", UserID: "u2", Region: " odisha"},
		{Language: "", UserID: "u1"},
		{UserID: "", Region: "Bihar"},
	}

	got := ComputeStats(recs)
	assert.Equal(t, Stats{Languages: 1, Contributors: 2, Regions: 2, Total: 4}, got)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestSession_Active(t *testing.T) {
	var s *Session
	assert.False(t, s.Active())
	assert.False(t, (&Session{User: User{ID: "u"}}).Active())
	assert.True(t, (&Session{User: User{ID: "u", IsLoggedIn: true}}).Active())
}
