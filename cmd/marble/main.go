// Command marble is the interactive 7x7 peg solitaire REPL: it reads a
// starting empty cell, then loops prompting for moves until no legal move
// remains, offering "hint" and "undo" along the way. A rotating diagnostic
// log is kept alongside the transcript the player sees on stdout.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/tinkersmith/marble-solitaire/internal/game"
	"github.com/tinkersmith/marble-solitaire/internal/visited"
)

const clearScreen = "\033[2J\033[H"

const welcome = `Welcome to Marble Solitaire!

The board is a plus-shaped grid of 33 holes. Every hole but one starts
with a marble in it. A move jumps one marble over an adjacent marble
into an empty hole two cells away, removing the marble it jumped. The
goal is to finish with exactly one marble left.

Enter a move as:   <row> <col> <direction>      e.g. "2 1 right"
Other commands:    hint   undo   brendan is the coolest
`

func newDiagnosticLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   "marble.log",
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		logger.WithError(err).Warn("unable to set up rotating diagnostic log, continuing without it")
		return logger
	}
	logger.AddHook(hook)
	logger.Infof("diagnostic logging started, visited-set backend=%s", visited.BackendName())
	return logger
}

func main() {
	logger := newDiagnosticLogger()
	in := bufio.NewScanner(os.Stdin)

	fmt.Print(welcome)
	fmt.Print("enter the coordinates of the marble you'd like to remove: ")
	row, col, ok := readCoords(in)
	if !ok {
		fmt.Println("\n\nThanks for playing!")
		return
	}

	g := game.NewWithEmpty(row, col)
	logger.WithFields(logrus.Fields{"row": row, "col": col}).Info("started new game")

	for g.HasMoves() {
		fmt.Print(clearScreen)
		g.Board().Print(os.Stdout)
		fmt.Printf("Please enter your move: \t\tMove %d, Marbles Left: %d\n", g.MoveCount()+1, g.MarblesLeft())

		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())

		switch {
		case line == "hint":
			handleHint(g, logger)
		case line == "undo":
			handleUndo(g, logger)
		case line == "brendan is the coolest":
			fmt.Println(g.SolutionString())
		default:
			handleMove(g, line, logger)
		}
	}

	if g.HasWon() {
		fmt.Println("Woohoo! You win!")
	} else {
		fmt.Println("Oh no! You have lost!")
	}
	fmt.Print("\n\nThanks for playing!\n")
}

func readCoords(in *bufio.Scanner) (row, col int, ok bool) {
	if !in.Scan() {
		return 0, 0, false
	}
	fields := strings.Fields(in.Text())
	if len(fields) != 2 {
		return 0, 0, false
	}
	row, err1 := strconv.Atoi(fields[0])
	col, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return row, col, true
}

func handleHint(g *game.Game, logger *logrus.Logger) {
	start := time.Now()
	best := g.BestMoveString()
	logger.WithField("elapsed", time.Since(start)).Debug("computed hint")
	if best == "" {
		fmt.Println("No solution for this board. Try undoing!")
		return
	}
	fmt.Println(best)
}

func handleUndo(g *game.Game, logger *logrus.Logger) {
	if err := g.UndoMove(); err != nil {
		fmt.Println("No moves to undo!")
		return
	}
	logger.Info("undid last move")
}

func handleMove(g *game.Game, line string, logger *logrus.Logger) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		fmt.Println("Invalid move. Please enter again:")
		return
	}
	row, err1 := strconv.Atoi(fields[0])
	col, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		fmt.Println("Invalid move. Please enter again:")
		return
	}
	if err := g.MakeMoveDir(row, col, fields[2]); err != nil {
		fmt.Println("Invalid move. Please enter again:")
		return
	}
	logger.WithFields(logrus.Fields{"row": row, "col": col, "dir": fields[2]}).Debug("move applied")
}
