// logdump prints the rows of a capture spreadsheet. Dev utility.
package main

import (
	"fmt"
	"os"

	cli "github.com/spf13/pflag"

	"github.com/eliseohh/capturebot/internal/capture"
)

func main() {
	path := cli.StringP("file", "f", "data/data.xlsx", "Capture log path")
	cli.Parse()

	if _, err := os.Stat(*path); err != nil {
		fmt.Fprintf(os.Stderr, "no log at %s\n", *path)
		os.Exit(1)
	}

	l, err := capture.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open: %v\n", err)
		os.Exit(1)
	}

	recs, err := l.Records()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}

	for i, r := range recs {
		fmt.Printf("%4d  %-20s  text=%q voice=%q loc=%q photo=%q  %s\n",
			i+1, r.User, r.Text, r.VoiceText, r.Location, r.Photo, r.Date)
	}
	fmt.Printf("%d record(s)\n", len(recs))
}
