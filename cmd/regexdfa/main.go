package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"regexdfa/internal/automaton"
	"regexdfa/internal/logutil"
	"regexdfa/internal/present"
	"regexdfa/internal/rules"
	"regexdfa/internal/syntax"
)

func main() {
	pattern := flag.String("re", "", "pattern to compile")
	rulesFile := flag.String("rules", "", "rule file with one named pattern per rule")
	graph := flag.String("graph", "dfa", "graph to export: dfa or positions")
	format := flag.String("format", "dot", "output format: dot or yaml")
	outFile := flag.String("o", "-", "output file, - for stdout")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng into -o")
	escapes := flag.Bool("escapes", false, `allow \x to match operator characters literally`)
	verbose := flag.Bool("v", false, "log construction steps to stderr")
	flag.Parse()

	log.SetFlags(0)
	if *verbose {
		logutil.SetOutput(os.Stderr)
	}
	if (*pattern == "") == (*rulesFile == "") {
		fmt.Fprintln(os.Stderr, "usage: regexdfa (-re <pattern> | -rules <file>) [-graph dfa|positions] [-format dot|yaml] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	opts := syntax.Options{Escapes: *escapes}

	var graphs []*present.Graph
	if *pattern != "" {
		res, err := automaton.Compile(*pattern, opts)
		if err != nil {
			fatal(*pattern, err)
		}
		graphs = append(graphs, pick(*graph, res))
	} else {
		src, err := os.ReadFile(*rulesFile)
		if err != nil {
			log.Fatal(err)
		}
		f, err := rules.Parse(*rulesFile, src)
		if err != nil {
			log.Fatal(err)
		}
		compiled, err := f.Compile(opts)
		if err != nil {
			log.Fatal(err)
		}
		for _, c := range compiled {
			g := pick(*graph, c.Result)
			g.Name = c.Rule.Name
			graphs = append(graphs, g)
		}
	}

	if *pngFlag {
		if *outFile == "-" {
			log.Fatal("-png needs an output file")
		}
		for i, g := range graphs {
			out := *outFile
			if len(graphs) > 1 {
				out = fmt.Sprintf("%s.%d", *outFile, i)
			}
			if err := present.Render(context.Background(), g, "png", out); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("PNG written to %s\n", out)
		}
		return
	}

	var buf bytes.Buffer
	for i, g := range graphs {
		var err error
		switch *format {
		case "dot":
			err = present.WriteDOT(&buf, g)
		case "yaml":
			if i > 0 {
				buf.WriteString("---\n")
			}
			err = present.WriteYAML(&buf, g)
		default:
			log.Fatalf("unknown format %q", *format)
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("cannot create %s: %v", *outFile, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.Copy(w, &buf); err != nil {
		log.Fatal(err)
	}
}

func pick(name string, res *automaton.Result) *present.Graph {
	switch name {
	case "dfa":
		return present.Automaton(res.DFA)
	case "positions":
		return present.Positions(res.Attrs)
	default:
		log.Fatalf("unknown graph %q", name)
		return nil
	}
}

func fatal(pattern string, err error) {
	var se *syntax.SyntaxError
	if errors.As(err, &se) {
		color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		fmt.Fprintln(os.Stderr, se.Show(pattern, color))
		os.Exit(1)
	}
	log.Fatal(err)
}
