package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	gm "chess-ai/chessgame"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "position to count from")
	depth := flag.Int("depth", 4, "maximum perft depth")
	flag.Parse()

	game, err := gm.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("bad -fen: %v", err)
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := gm.Perft(game, d)
		elapsed := time.Since(start)
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("perft(%d) = %d  (%v, %.0f nps)\n", d, nodes, elapsed.Round(time.Millisecond), nps)
	}
}
