// Command cmd/play is a small interactive line-oriented demo driving the
// bot package against a live boardstate.Board: showboard, play, genmove,
// level, quit.
//
// Grounded on gtp/command.go's map[string]handler dispatch idiom (scaled
// down to this engine's own small command set; full GTP is out of scope).
package main

import (
	"fmt"

	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/bot"
	"github.com/ninebygo/engine/geometry"
)

// session holds the state one interactive run threads through every
// handler call.
type session struct {
	board      *boardstate.Board
	blackBot   *bot.Bot
	whiteBot   *bot.Bot
	blackLevel bot.Level
	whiteLevel bot.Level
}

type handler func(s *session, args []string) (string, error)

func commands() map[string]handler {
	return map[string]handler{
		"showboard": cmdShowboard,
		"play":      cmdPlay,
		"genmove":   cmdGenmove,
		"level":     cmdLevel,
		"help":      cmdHelp,
	}
}

func cmdShowboard(s *session, args []string) (string, error) {
	return fmt.Sprintf("\n%v", s.board), nil
}

func cmdPlay(s *session, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: play <color> <coord>")
	}
	color, err := parseColor(args[0])
	if err != nil {
		return "", err
	}
	pos, err := parseCoord(args[1])
	if err != nil {
		return "", err
	}
	if _, err := s.board.PlaceStone(color, pos); err != nil {
		return "", err
	}
	return "ok", nil
}

func cmdGenmove(s *session, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: genmove <color>")
	}
	color, err := parseColor(args[0])
	if err != nil {
		return "", err
	}

	b := s.botFor(color)
	m, err := b.GetMove()
	if err != nil {
		return "", err
	}

	switch m.Kind {
	case bot.Pass:
		return "pass", nil
	case bot.ResignMove:
		return "resign", nil
	default:
		ok, err := b.Play(m)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("bot proposed an illegal move at %s", formatCoord(m.Position))
		}
		return formatCoord(m.Position), nil
	}
}

func cmdLevel(s *session, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: level <color> <level-name>")
	}
	color, err := parseColor(args[0])
	if err != nil {
		return "", err
	}
	lvl, err := parseLevel(args[1])
	if err != nil {
		return "", err
	}
	s.setLevel(color, bot.Level(lvl))
	return "ok", nil
}

func cmdHelp(s *session, args []string) (string, error) {
	return "commands: showboard, play <color> <coord>, genmove <color>, level <color> <level>, quit", nil
}

func (s *session) botFor(color geometry.Color) *bot.Bot {
	if color == geometry.Black {
		if s.blackBot == nil {
			s.blackBot = bot.NewBot(s.blackLevel, geometry.Black, s.board)
		}
		return s.blackBot
	}
	if s.whiteBot == nil {
		s.whiteBot = bot.NewBot(s.whiteLevel, geometry.White, s.board)
	}
	return s.whiteBot
}

func (s *session) setLevel(color geometry.Color, lvl bot.Level) {
	if color == geometry.Black {
		s.blackLevel = lvl
		if s.blackBot != nil {
			s.blackBot.Destroy()
			s.blackBot = nil
		}
		return
	}
	s.whiteLevel = lvl
	if s.whiteBot != nil {
		s.whiteBot.Destroy()
		s.whiteBot = nil
	}
}
