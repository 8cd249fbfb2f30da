package main

import (
	"strings"
	"testing"

	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *session {
	return &session{
		board:      boardstate.NewBoard(false),
		blackLevel: bot.JOKE,
		whiteLevel: bot.JOKE,
	}
}

func TestCmdPlay_AcceptsALegalMove(t *testing.T) {
	s := newTestSession()
	out, err := cmdPlay(s, []string{"black", "E5"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestCmdPlay_RejectsAnOccupiedPoint(t *testing.T) {
	s := newTestSession()
	_, err := cmdPlay(s, []string{"black", "E5"})
	require.NoError(t, err)

	_, err = cmdPlay(s, []string{"white", "E5"})
	assert.Error(t, err)
}

func TestCmdShowboard_ContainsEveryRow(t *testing.T) {
	s := newTestSession()
	out, err := cmdShowboard(s, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, strings.Count(out, "|\n"))
}

func TestCmdGenmove_ProducesAMoveOnAnEmptyBoard(t *testing.T) {
	s := newTestSession()
	out, err := cmdGenmove(s, []string{"black"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestCmdLevel_ReplacesAnExistingBot(t *testing.T) {
	s := newTestSession()
	_, err := cmdGenmove(s, []string{"black"})
	require.NoError(t, err)
	require.NotNil(t, s.blackBot)

	_, err = cmdLevel(s, []string{"black", "demon"})
	require.NoError(t, err)
	assert.Nil(t, s.blackBot)
	assert.Equal(t, bot.DEMON, s.blackLevel)
}

func TestCommands_HasEveryHandler(t *testing.T) {
	cmds := commands()
	for _, name := range []string{"showboard", "play", "genmove", "level", "help"} {
		_, ok := cmds[name]
		assert.True(t, ok, name)
	}
}
