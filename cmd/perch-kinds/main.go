// Command perch-kinds prints every registered symbol set and its members,
// as a quick reference for the raw wire values the library understands.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
	"github.com/strigidae/perch/symbol"

	// Register the library's symbol sets.
	_ "github.com/strigidae/perch/kind"
)

var log = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.Stamp,
}).With().Timestamp().Logger()

func main() {
	setFlag := flag.String("set", "", "print only the named symbol set")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	slog.SetDefault(slog.New(
		zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: slog.LevelInfo}),
	))
	color.NoColor = color.NoColor || *noColor

	if *setFlag != "" {
		set, ok := symbol.SetByName(*setFlag)
		if !ok {
			log.Error().Str("set", *setFlag).Msg("no such symbol set")
			os.Exit(1)
		}
		printSet(os.Stdout, set)
		return
	}

	for _, set := range symbol.Sets() {
		printSet(os.Stdout, set)
		fmt.Fprintln(os.Stdout)
	}
}

func printSet(w io.Writer, set symbol.Collection) {
	title := color.New(color.FgCyan, color.Bold)
	alias := color.New(color.Faint)

	title.Fprintf(w, "%s", set.Name())
	fmt.Fprintf(w, " (%d members)\n", set.Len())

	for _, m := range set.Describe() {
		fmt.Fprintf(w, "  %-24s %v", m.Name, m.Value)
		if len(m.Aliases) > 0 {
			alias.Fprintf(w, "  aka %v", m.Aliases)
		}
		fmt.Fprintln(w)
	}
}
