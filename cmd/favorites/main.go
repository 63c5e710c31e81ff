// Command favorites manages the local favorites ledger from the terminal.
//
//	favorites -file ~/.salespark-favorites.json toggle <sale-id>
//	favorites -file ~/.salespark-favorites.json check <sale-id>
//	favorites -file ~/.salespark-favorites.json list
//
// With -api set, each toggle is mirrored to the server-side counters.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"salespark/internal/favorites"
	"salespark/internal/logger"
)

func main() {
	file := flag.String("file", "favorites.json", "path to the ledger file")
	api := flag.String("api", "", "API base URL for counter mirroring (optional)")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	lg := logger.New("info")
	defer lg.Sync()

	ledger := favorites.Open(*file, lg, nil)

	switch cmd := flag.Arg(0); cmd {
	case "toggle":
		id := flag.Arg(1)
		if id == "" {
			log.Fatal("toggle needs a sale id")
		}
		added := ledger.Toggle(id)
		if *api != "" {
			mirror := &favorites.CounterMirror{BaseURL: *api}
			mirror.Adjust(id, added, lg)
		}
		if added {
			fmt.Println("added", id)
		} else {
			fmt.Println("removed", id)
		}
	case "check":
		id := flag.Arg(1)
		if id == "" {
			log.Fatal("check needs a sale id")
		}
		if ledger.IsFavorite(id) {
			fmt.Println("favorite")
		} else {
			fmt.Println("not a favorite")
			os.Exit(1)
		}
	case "list":
		for _, id := range ledger.IDs() {
			fmt.Println(id)
		}
	default:
		log.Fatalf("unknown command %q (want toggle, check or list)", cmd)
	}
}
