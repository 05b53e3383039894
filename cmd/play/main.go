package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/render"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const noComputer = "none"

var (
	errInputClosed = errors.New("input closed before the game ended")
	errBadMove     = errors.New("enter a move as: row col")
)

// main - plays one game in the terminal.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		logger.Error("play failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer, opts ...termenv.OutputOption) error {
	settings, err := config.LoadGame()
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("play", flag.ContinueOnError)
	flags.SetOutput(out)
	computer := flags.String("computer", "O", "side played by the computer: X, O or none")
	size := flags.Int("size", settings.BoardSize, "board size")

	if err = flags.Parse(args); err != nil {
		return err
	}

	session, err := newSession(*computer, *size, settings.MaxComputerBoardSize)
	if err != nil {
		return err
	}

	renderer := render.New(out, opts...)
	scanner := bufio.NewScanner(in)

	for !session.IsOver() {
		if err = renderer.Board(session); err != nil {
			return err
		}

		fmt.Fprintf(out, "%s to move (row col, q to quit): ", session.CurrentPlayer())

		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}

			return errInputClosed
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "q") {
			return nil
		}

		row, col, err := parseMove(line)
		if err == nil {
			err = session.CheckMove(row, col)
		}

		if err != nil {
			fmt.Fprintf(out, "cannot play that: %v\n", err)
			continue
		}

		session.RequestMove(row, col)
	}

	if err = renderer.Board(session); err != nil {
		return err
	}

	return renderer.Outcome(session.Winner())
}

func newSession(computer string, size, maxComputerSize int) (tictactoe.Session, error) {
	if strings.EqualFold(computer, noComputer) {
		session, err := tictactoe.NewTwoPlayer(size)
		if err != nil {
			return nil, err
		}

		return session, nil
	}

	if size > maxComputerSize {
		return nil, fmt.Errorf("%w: %d > %d", apperror.ErrBoardTooLarge, size, maxComputerSize)
	}

	mark, err := entity.ParseMark(computer)
	if err != nil {
		return nil, err
	}

	session, err := tictactoe.NewComputerOpponent(size, mark)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// parseMove accepts "row col" or "row,col".
func parseMove(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, errBadMove
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errBadMove
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errBadMove
	}

	return row, col, nil
}
