// Command classify is a development helper: it classifies video URLs
// from the command line and pretty-prints the result, so embed URL
// rules can be checked without running the server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/vidvault/vidvault/backend/internal/platform"
)

func main() {
	parent := flag.String("parent", "localhost", "hostname passed to the Twitch player as parent")
	flag.Parse()

	urls := flag.Args()
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "usage: classify [-parent host] <url> [<url> ...]")
		os.Exit(2)
	}

	classifier := platform.NewClassifier(*parent)
	for _, raw := range urls {
		pp.Println(classifier.Classify(raw))
	}
}
