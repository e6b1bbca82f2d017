package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevelsShape(t *testing.T) {
	levels := DefaultLevels()
	require.Len(t, levels, LevelsPerTraining)

	seen := map[string]bool{}
	for i, level := range levels {
		assert.Equal(t, i+1, level.LevelNumber)
		require.Len(t, level.Sessions, SessionsPerLevel)
		for j, session := range level.Sessions {
			assert.Equal(t, j+1, session.SessionNumber)
			assert.NotEmpty(t, session.SessionID)
			assert.False(t, seen[session.SessionID], "session ids must be unique")
			seen[session.SessionID] = true
		}
	}
	assert.Len(t, seen, SessionsPerTraining)
}

func TestResolveSession(t *testing.T) {
	training := &Training{Levels: DefaultLevels()}

	session, err := training.ResolveSession(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, session.SessionNumber)
	assert.Equal(t, training.Levels[2].Sessions[3].SessionID, session.SessionID)

	_, err = training.ResolveSession(0, 1)
	assert.Error(t, err)
	_, err = training.ResolveSession(5, 1)
	assert.Error(t, err)
	_, err = training.ResolveSession(1, 0)
	assert.Error(t, err)
	_, err = training.ResolveSession(1, 7)
	assert.Error(t, err)
}

func TestFlatSessionsOrder(t *testing.T) {
	training := &Training{Levels: DefaultLevels()}
	flat := training.FlatSessions()
	require.Len(t, flat, SessionsPerTraining)

	for i, fs := range flat {
		assert.Equal(t, i/SessionsPerLevel+1, fs.LevelNumber)
		assert.Equal(t, i%SessionsPerLevel+1, fs.SessionNumber)
	}
}

func TestTotalSessions(t *testing.T) {
	training := &Training{Levels: DefaultLevels()}
	assert.Equal(t, SessionsPerTraining, training.TotalSessions())

	empty := &Training{}
	assert.Equal(t, 0, empty.TotalSessions())
}
