package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/vic/hashlam/pkg/explain"
	"github.com/vic/hashlam/pkg/interp"
)

const (
	greeting = "Welcome to the Lambda Calculus Interpreter! ('#' is lambda, e.g. (#x.x) 5)"
	prompt   = "Enter expression (or 'exit' to exit the application): "
	farewell = "Mission aborted. Goodbye!"
)

var (
	maxSteps        = flag.Int("max-steps", 0, "stop after this many reduction passes (0 = no limit)")
	maxContractions = flag.Int("max-contractions", 100000, "stop after this many redex contractions (0 = no limit)")
	timeout         = flag.Duration("timeout", 10*time.Second, "time limit per expression (0 = none)")
	explainCmd      = flag.String("explain-cmd", os.Getenv("HASHLAM_EXPLAIN_CMD"), "command that reads a prompt on stdin and prints an explanation")
	traceCap        = flag.Int("trace", 0, "print up to this many intermediate reduction steps")
	quiet           = flag.Bool("quiet", false, "do not print the token stream")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: hashlam [flags] [file]\n\n")
	fmt.Fprint(os.Stderr, "hashlam reduces untyped lambda calculus expressions to normal form, one per line.\n")
	fmt.Fprint(os.Stderr, "Without a file it starts an interactive session.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		usage()
	}

	in := &interp.Interpreter{
		MaxSteps:        *maxSteps,
		MaxContractions: *maxContractions,
		Timeout:         *timeout,
		TraceCapacity:   *traceCap,
	}
	if c := explain.ParseCommand(*explainCmd); c != nil {
		in.Explainer = c
	}
	if os.Getenv("LAMBDA_DEBUG") != "" {
		in.Logger = log.New(os.Stderr, "hashlam: ", log.Ltime)
	}

	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		runFile(in, f)
		return
	}

	fmt.Println(greeting)
	repl(in, os.Stdin)
}

func repl(in *interp.Interpreter, r io.Reader) {
	sc := bufio.NewScanner(r)
	for {
		fmt.Print(prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			}
			fmt.Println("\nExiting...")
			return
		}
		line := strings.TrimSpace(sc.Text())
		if strings.EqualFold(line, "exit") {
			fmt.Println(farewell)
			return
		}
		if line == "" {
			continue
		}
		interp.Write(os.Stdout, in.Interpret(context.Background(), line), !*quiet)
	}
}

func runFile(in *interp.Interpreter, r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fmt.Printf("> %s\n", line)
		interp.Write(os.Stdout, in.Interpret(context.Background(), line), !*quiet)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
}
