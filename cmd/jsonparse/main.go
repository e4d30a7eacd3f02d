// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jsonparse parses JSON objects from files or standard input and
// prints them as compact JSON text.
//
// Usage:
//
//	jsonparse [flags] [file ...]
//
// With no files, jsonparse reads standard input. For each input it prints one
// line of output, or an error description on stderr. The exit status is 1 if
// any input could not be parsed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jsonparse"
	"github.com/creachadair/jsonparse/cursor"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type config struct {
	Files     []string `arg:"" optional:"" type:"path" help:"Input files. If none are given, reads from stdin."`
	HuJSON    bool     `name:"hujson" help:"Accept comments and trailing commas (HuJSON)."`
	BOM       bool     `name:"bom" help:"Honor a leading byte-order mark, transcoding UTF-16 input."`
	Escape    bool     `short:"e" help:"Escape quotes, backslashes, and newlines in output strings."`
	Path      []string `short:"p" help:"Print only the value at this path of object keys and 1-based positions (comma-separated)."`
	MaxBuffer int      `name:"max-buffer" default:"0" help:"Maximum elements in any one string, number, array, or object (0 for no limit)."`
	Verbose   bool     `short:"v" help:"Enable debug logging."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the program with the given arguments and I/O streams, and
// returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	exit := -1
	k, err := kong.New(&cfg,
		kong.Name("jsonparse"),
		kong.Description("Parse JSON objects and print them as compact JSON text."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exit = code }),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "jsonparse: %v\n", err)
		return 2
	}
	_, err = k.Parse(args)
	if exit >= 0 {
		return exit // e.g., --help
	} else if err != nil {
		fmt.Fprintf(stderr, "jsonparse: %v\n", err)
		return 2
	}
	logger := newLogger(stderr, cfg.Verbose)

	p := jsonparse.NewParser()
	p.LimitBuffer(cfg.MaxBuffer)
	p.AllowHuJSON(cfg.HuJSON)
	p.DecodeBOM(cfg.BOM)
	out := &output{
		log:    logger,
		path:   pathElems(cfg.Path),
		escape: cfg.Escape,
		stdout: stdout,
		stderr: stderr,
	}

	if len(cfg.Files) == 0 {
		level.Debug(logger).Log("msg", "parsing", "input", "<stdin>")
		obj, err := p.Parse(stdin)
		return exitStatus(out.emit("<stdin>", obj, err))
	}

	var nfail int
	for _, name := range cfg.Files {
		level.Debug(logger).Log("msg", "parsing", "input", name)
		obj, err := p.ParseFile(name)
		if !out.emit(name, obj, err) {
			nfail++
		}
	}
	if nfail != 0 {
		level.Debug(logger).Log("msg", "some inputs failed", "failed", nfail, "total", len(cfg.Files))
	}
	return exitStatus(nfail == 0)
}

// An output carries the settings for printing parse results.
type output struct {
	log    log.Logger
	path   []any
	escape bool
	stdout io.Writer
	stderr io.Writer
}

// emit writes the result of parsing the named input, and releases the tree.
// It reports whether the input was processed successfully.
func (o *output) emit(name string, obj *jsonparse.Object, err error) bool {
	if err != nil {
		kv := []any{"msg", "parse failed", "input", name, "code", int(jsonparse.CodeOf(err)), "err", err}
		if c := cause(err); c != nil {
			kv = append(kv, "cause", c)
		}
		level.Debug(o.log).Log(kv...)
		printError(o.stderr, name, err)
		return false
	}
	defer func() {
		n := jsonparse.Free(obj)
		level.Debug(o.log).Log("msg", "released value tree", "input", name, "values", n)
	}()
	level.Debug(o.log).Log("msg", "parsed", "input", name, "pairs", obj.Len())

	var v jsonparse.Value = obj
	if len(o.path) != 0 {
		sel, err := cursor.Path[jsonparse.Value](obj, o.path...)
		if err != nil {
			level.Error(o.log).Log("msg", "path not found", "input", name, "err", err)
			return false
		}
		v = sel
	}

	serialize := jsonparse.Serialize
	if o.escape {
		serialize = jsonparse.SerializeEscaped
	}
	if err := serialize(o.stdout, v); err != nil {
		level.Error(o.log).Log("msg", "write failed", "input", name, "err", err)
		return false
	}
	if _, err := io.WriteString(o.stdout, "\n"); err != nil {
		level.Error(o.log).Log("msg", "write failed", "input", name, "err", err)
		return false
	}
	return true
}

// cause returns the error underlying a parse error, such as a failure to open
// or read the input, or nil if there is none.
func cause(err error) error {
	u, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	for _, e := range u.Unwrap() {
		if _, isCode := e.(jsonparse.Code); !isCode {
			return e
		}
	}
	return nil
}

// printError writes the description of a parse error for the named input.
func printError(w io.Writer, name string, err error) {
	var serr *jsonparse.SyntaxError
	desc, ok := jsonparse.CodeOf(err).Description()
	if !ok {
		desc = err.Error()
	}
	if errors.As(err, &serr) && serr.Location.Line > 0 {
		fmt.Fprintf(w, "Error (jsonparse): %s: at %s: %s\n", name, serr.Location, desc)
		return
	}
	fmt.Fprintf(w, "Error (jsonparse): %s: %s\n", name, desc)
}

func newLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	opt := level.AllowInfo()
	if verbose {
		opt = level.AllowDebug()
	}
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

// pathElems converts path arguments to cursor path elements. Arguments that
// parse as integers are array or object positions; all others are keys.
func pathElems(args []string) []any {
	var out []any
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			out = append(out, n)
		} else {
			out = append(out, arg)
		}
	}
	return out
}

func exitStatus(ok bool) int {
	if ok {
		return 0
	}
	return 1
}
