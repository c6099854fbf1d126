// Package uci implements a Universal Chess Interface front end: a
// blocking stdin reader that parses one command per line and drives a
// single Position/Searcher pair.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
)

// UCI holds the one mutable Position the core operates on, plus the
// Searcher and transposition table, which belong to the search rather
// than the front end.
type UCI struct {
	pos *board.Position

	searcher *engine.Searcher
	tt       *engine.TranspositionTable
	depth    int

	log *zap.Logger
}

// New creates a UCI handler with the given search depth and
// transposition table size in megabytes.
func New(depth, hashSizeMB int, log *zap.Logger) *UCI {
	tt := engine.NewTranspositionTable(hashSizeMB)
	return &UCI{
		pos:      board.NewPosition(),
		searcher: engine.NewSearcher(tt),
		tt:       tt,
		depth:    depth,
		log:      log,
	}
}

// Run reads commands from stdin until "quit" or EOF, one command per
// line, blocking between lines rather than polling.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo()
		case "setoption":
			u.handleSetOption(args)
		case "quit":
			return
		case "d":
			fmt.Println(u.pos.String())
		case "perft":
			u.handlePerft(args)
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Println("id name chesscore")
	fmt.Println("id author chesscore")
	fmt.Println()
	fmt.Println("option name Hash type spin default 64 min 1 max 4096")
	fmt.Println("uciok")
}

func (u *UCI) handleNewGame() {
	u.tt.Clear()
	u.searcher.Reset()
	u.pos = board.NewPosition()
}

// handlePosition implements:
//
//	position startpos [moves m1 m2 ...]
//	position fen <FEN> [moves m1 m2 ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int
	switch args[0] {
	case "startpos":
		u.pos = board.NewPosition()
		moveStart = 1
	case "fen":
		fenEnd := len(args)
		for i, a := range args[1:] {
			if a == "moves" {
				fenEnd = i + 1
				break
			}
		}
		pos, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			u.log.Warn("rejected fen", zap.Error(err))
			return
		}
		u.pos = pos
		moveStart = fenEnd + 1
	default:
		return
	}

	for i := moveStart; i < len(args); i++ {
		if args[i] == "moves" {
			continue
		}
		m, err := board.ParseMove(args[i], u.pos)
		if err != nil {
			u.log.Warn("rejected move text", zap.String("move", args[i]), zap.Error(err))
			return
		}
		if !legalMove(u.pos, m) {
			u.log.Warn("rejected illegal move", zap.String("move", args[i]))
			return
		}
		u.pos.MakeMove(m)
	}
}

func legalMove(pos *board.Position, m board.Move) bool {
	legal := pos.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i) == m {
			return true
		}
	}
	return false
}

// handleGo runs the search at the configured fixed depth (time
// management and pondering are out of scope here) and emits bestmove.
func (u *UCI) handleGo() {
	if u.pos.GameOver() {
		fmt.Println("bestmove 0000")
		return
	}

	start := time.Now()
	u.tt.NewSearch()

	move, score := u.searcher.Search(u.pos, u.depth)
	elapsed := time.Since(start)

	u.log.Info("search complete",
		zap.Int("depth", u.depth),
		zap.Int("score", score),
		zap.Uint64("nodes", u.searcher.Nodes()),
		zap.Duration("elapsed", elapsed),
	)

	if move == board.NoMove {
		fmt.Println("bestmove 0000")
		return
	}
	fmt.Printf("bestmove %s\n", move.String())
}

func (u *UCI) handleSetOption(args []string) {
	var name, value string
	readingName, readingValue := false, false

	for _, arg := range args {
		switch arg {
		case "name":
			readingName, readingValue = true, false
		case "value":
			readingName, readingValue = false, true
		default:
			if readingName {
				name = appendWord(name, arg)
			} else if readingValue {
				value = appendWord(value, arg)
			}
		}
	}

	switch strings.ToLower(name) {
	case "hash":
		mb, err := strconv.Atoi(value)
		if err != nil || mb <= 0 {
			u.log.Warn("rejected setoption Hash value", zap.String("value", value))
			return
		}
		u.tt = engine.NewTranspositionTable(mb)
		u.searcher = engine.NewSearcher(u.tt)
	}
}

func appendWord(s, word string) string {
	if s == "" {
		return word
	}
	return s + " " + word
}

// handlePerft runs the perft regression oracle from the current
// position, printing the leaf node count.
func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}

	start := time.Now()
	nodes := engine.Perft(u.pos, depth)
	elapsed := time.Since(start)

	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("NPS: %.0f\n", float64(nodes)/elapsed.Seconds())
	}
}
