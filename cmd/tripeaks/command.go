package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/tripeaks/engine"
	"github.com/jason-s-yu/tripeaks/internal/game"
)

type cmdKind int

const (
	cmdNone cmdKind = iota // blank line
	cmdInput
	cmdState
	cmdQuit
)

type command struct {
	kind  cmdKind
	input game.Input
}

// parseCommand reads one driver line. "click" accepts an engine card id or
// a card UUID.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdNone}, nil
	}
	switch fields[0] {
	case "click", "c":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("usage: click <card>")
		}
		if u, err := uuid.Parse(fields[1]); err == nil {
			return command{kind: cmdInput, input: game.Input{Type: game.InputClickCard, CardID: u}}, nil
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("invalid card %q", fields[1])
		}
		return command{kind: cmdInput, input: game.Input{Type: game.InputClickCard, CardEngineID: engine.CardID(n)}}, nil
	case "draw", "d":
		return command{kind: cmdInput, input: game.Input{Type: game.InputClickStock}}, nil
	case "undo", "u":
		return command{kind: cmdInput, input: game.Input{Type: game.InputClickUndo}}, nil
	case "restart", "r":
		return command{kind: cmdInput, input: game.Input{Type: game.InputClickRestart}}, nil
	case "state", "s":
		return command{kind: cmdState}, nil
	case "quit", "q", "exit":
		return command{kind: cmdQuit}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}
