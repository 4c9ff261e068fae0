package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/render-bridge/expr"
	"github.com/wippyai/render-bridge/serializer"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to a plain message (JSON or YAML)")
		kindName    = flag.String("kind", "", "Record kind of the message (see -list)")
		mode        = flag.String("mode", "", "Parse mode for ASTWithSource messages")
		format      = flag.String("format", "", "Input format: json or yaml (default: from extension)")
		outFile     = flag.String("out", "", "Write the re-encoded message here instead of stdout")
		list        = flag.Bool("list", false, "List record kinds and parse modes and exit")
		verbose     = flag.Bool("v", false, "Log dispatch decisions")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		printKinds(os.Stdout)
		return
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: bridge -in <message.json> -kind <Kind> [-mode binding] [-out file]")
		fmt.Fprintln(os.Stderr, "       bridge -list")
		fmt.Fprintln(os.Stderr, "       bridge -in <message.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = log.Sync() }()
		serializer.SetLogger(log)
	}

	if err := execute(*inFile, *format, *kindName, *mode, *outFile, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = serializer.Logger().Sync()
		os.Exit(1)
	}
}

func execute(inFile, format, kindName, mode, outFile string, interactive bool) error {
	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(inFile, format)
	}

	out := io.Writer(os.Stdout)
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return run(out, os.Stderr, inFile, format, kindName, serializer.Mode(mode))
}

func run(out, status io.Writer, inFile, format, kindName string, mode serializer.Mode) error {
	if kindName == "" {
		return fmt.Errorf("-kind is required")
	}
	kind, err := parseKind(kindName)
	if err != nil {
		return err
	}

	msg, err := loadMessage(inFile, format)
	if err != nil {
		return err
	}

	s := serializer.New(expr.NewSourceParser())
	r, err := check(s, msg, kind, mode)
	if err != nil {
		return fmt.Errorf("round trip %s: %w", kind, err)
	}

	fmt.Fprintf(status, "Message: %s\n", inFile)
	fmt.Fprintf(status, "Kind: %s\n", kind)
	if r.Identical() {
		fmt.Fprintln(status, "Round trip: identical")
	} else {
		fmt.Fprintf(status, "Round trip: %d difference(s)\n", len(r.Diff))
		for _, d := range r.Diff {
			fmt.Fprintf(status, "  %s\n", d)
		}
	}

	text, err := encodeJSON(r.Plain)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func printKinds(w io.Writer) {
	fmt.Fprintln(w, "Record kinds:")
	for _, k := range serializer.Kinds() {
		fmt.Fprintf(w, "  %s\n", k)
	}
	fmt.Fprintln(w, "\nParse modes (ASTWithSource only):")
	for _, m := range parseModes {
		fmt.Fprintf(w, "  %s\n", m)
	}
}

var parseModes = []serializer.Mode{
	serializer.ModeInterpolation,
	serializer.ModeBinding,
	serializer.ModeSimpleBinding,
}
