package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	gm "chess-ai/chessgame"
	"chess-ai/engine"
)

func main() {
	level := flag.Int("level", 3, "engine difficulty (1-5)")
	color := flag.String("color", "white", "side played by the human (white/black)")
	fen := flag.String("fen", "", "optional starting position in FEN")
	flag.Parse()

	var game *gm.GameState
	if *fen != "" {
		parsed, err := gm.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("bad -fen: %v", err)
		}
		game = parsed
	} else {
		game = gm.NewGame()
	}

	humanColor := gm.White
	if strings.EqualFold(*color, "black") {
		humanColor = gm.Black
	}

	searcher := engine.NewSearcher()
	searcher.SetDifficulty(*level)

	fmt.Printf("playing level %d, you are %s\n", searcher.Config().Level, humanColor)
	fmt.Println("enter moves as from-to coordinates (e2e4, e7e8=N), or: hint, history, quit")

	reader := bufio.NewScanner(os.Stdin)
	for {
		printBoard(game)
		fmt.Printf("[%s] %s to move\n", game.Status(), game.CurrentPlayer)
		if game.Status().Terminal() {
			break
		}

		if game.CurrentPlayer == humanColor {
			if !humanTurn(game, searcher, reader, humanColor) {
				return
			}
			continue
		}
		engineTurn(game, searcher)
	}
	fmt.Println("game over:", game.Status())
}

func humanTurn(game *gm.GameState, searcher *engine.Searcher, reader *bufio.Scanner, humanColor gm.Color) bool {
	for {
		fmt.Print("> ")
		if !reader.Scan() {
			return false
		}
		input := strings.TrimSpace(reader.Text())
		switch input {
		case "quit", "exit":
			return false
		case "hint":
			if m := searcher.Hint(game, humanColor); !m.IsNone() {
				fmt.Println("hint:", m)
			}
			continue
		case "history":
			for i, rec := range game.MoveHistory {
				fmt.Printf("%3d. %s\n", i+1, rec.Notation)
			}
			continue
		}

		from, to, promo, ok := parseMove(input)
		if !ok {
			fmt.Println("could not parse that; use from-to coordinates like e2e4")
			continue
		}
		if !game.ApplyMovePromote(from, to, promo) {
			fmt.Println("illegal move")
			continue
		}
		return true
	}
}

func engineTurn(game *gm.GameState, searcher *engine.Searcher) {
	start := time.Now()
	move := searcher.ChooseMove(game)
	elapsed := time.Since(start)
	if move.IsNone() {
		return // terminal; status already says so
	}
	game.ApplyMovePromote(move.From, move.To, promotionOrQueen(move))
	fmt.Printf("engine plays %s (%d nodes in %v)\n", move, searcher.Nodes(), elapsed.Round(time.Millisecond))
}

func promotionOrQueen(m engine.Move) gm.PieceType {
	if m.Promotion != gm.NoPieceType {
		return m.Promotion
	}
	return gm.Queen
}

// parseMove reads "e2e4" or "e7e8=N" style input.
func parseMove(input string) (from, to gm.Square, promo gm.PieceType, ok bool) {
	promo = gm.Queen
	if idx := strings.IndexByte(input, '='); idx >= 0 {
		switch strings.ToUpper(input[idx+1:]) {
		case "N":
			promo = gm.Knight
		case "B":
			promo = gm.Bishop
		case "R":
			promo = gm.Rook
		case "Q":
			promo = gm.Queen
		default:
			return gm.NoSquare, gm.NoSquare, promo, false
		}
		input = input[:idx]
	}
	if len(input) != 4 {
		return gm.NoSquare, gm.NoSquare, promo, false
	}
	from = gm.SquareFromString(input[:2])
	to = gm.SquareFromString(input[2:])
	return from, to, promo, from.Valid() && to.Valid()
}

var pieceGlyphs = map[gm.Color][7]string{
	gm.White: {"", "P", "N", "B", "R", "Q", "K"},
	gm.Black: {"", "p", "n", "b", "r", "q", "k"},
}

func printBoard(game *gm.GameState) {
	for row := 0; row < 8; row++ {
		fmt.Printf("%d ", 8-row)
		for col := 0; col < 8; col++ {
			p := game.PieceAt(row, col)
			if p == nil {
				fmt.Print(" .")
				continue
			}
			fmt.Printf(" %s", pieceGlyphs[p.Color][p.Type])
		}
		fmt.Println()
	}
	fmt.Println("   a b c d e f g h")
}
