// Command boardcheck validates prefabs/board.yaml and prints the level
// table it produces. Run it after editing the spec to catch continuity
// mistakes before launching the board.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/zoomboard/prefabs"
)

func main() {
	flag.Parse()

	spec, err := prefabs.LoadBoardSpec()
	if err != nil {
		log.Fatal(err)
	}

	table := spec.Table()
	fmt.Printf("%d levels, slides run over %d ticks\n\n", table.Len(), spec.SlideSteps)
	for i := 0; i < table.Len(); i++ {
		def := table.Level(i)
		fmt.Printf("%2d  [%12g, %12g)  %-12s  %d right, %d left\n",
			i, def.Lower, def.Upper, def.Label, len(def.Right), len(def.Left))
	}
}
