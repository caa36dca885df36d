package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/zephyrtronium/floatexpr"
)

const usage = `usage: floatexpr [-hst] [-f fmt] [-i file] [-x name=value]... [expr...]

options:
  -f fmt         result formatting string (default %g)
  -i file        read one expression per line from file ("-" for stdin)
  -s             strict parsing: reject unknown words and trailing input
  -t             print parse trees
  -x name=value  bind a variable to the value of an expression
  -h             print this message
`

// config is the result of the command line.
type config struct {
	inname string
	verb   string
	with   []floatexpr.Binding
	opts   []floatexpr.ParseOption
	echo   bool
	exprs  []string
}

func main() {
	log.SetFlags(0)
	cfg, err := parseArgs(os.Args)
	if err != nil {
		log.Fatal(err)
	}
	if cfg == nil {
		io.WriteString(os.Stdout, usage)
		return
	}
	if cfg.inname != "" || len(cfg.exprs) == 0 {
		in, err := infile(cfg.inname)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
		lines, err := readLines(in)
		if err != nil {
			log.Fatal(err)
		}
		cfg.exprs = append(lines, cfg.exprs...)
	}
	if run(cfg, os.Stdout, os.Stderr) != 0 {
		os.Exit(1)
	}
}

// parseArgs parses the command line. It returns nil with no error if the
// user asked for help.
func parseArgs(args []string) (*config, error) {
	opts, optind, err := getopt.Getopts(args, "f:hi:stx:")
	if err != nil {
		return nil, err
	}
	cfg := config{verb: "%g"}
	var strict bool
	for _, opt := range opts {
		switch opt.Option {
		case 'f':
			cfg.verb = opt.Value
		case 'h':
			return nil, nil
		case 'i':
			cfg.inname = opt.Value
		case 's':
			strict = true
		case 't':
			cfg.echo = true
		case 'x':
			b, err := parseBinding(opt.Value)
			if err != nil {
				return nil, err
			}
			cfg.with = append(cfg.with, b)
		}
	}
	if strict {
		cfg.opts = []floatexpr.ParseOption{floatexpr.DisallowVariables(), floatexpr.RequireEnd()}
	}
	cfg.exprs = args[optind:]
	return &cfg, nil
}

// parseBinding parses a name=value definition. The value is an expression
// without variables.
func parseBinding(s string) (floatexpr.Binding, error) {
	name, val, ok := strings.Cut(s, "=")
	if !ok {
		return floatexpr.Binding{}, fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return floatexpr.Binding{}, fmt.Errorf("no variable name in %q", s)
	}
	r, err := floatexpr.EvalWith(val, []floatexpr.ParseOption{floatexpr.DisallowVariables(), floatexpr.RequireEnd()})
	if err != nil {
		return floatexpr.Binding{}, fmt.Errorf("setting %s: %w", name, err)
	}
	return floatexpr.Bind(name, r), nil
}

func infile(inname string) (io.ReadCloser, error) {
	if inname == "" || inname == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(inname)
}

// readLines reads the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			lines = append(lines, sc.Text())
		}
	}
	return lines, sc.Err()
}

// run evaluates each expression in cfg, printing results to stdout and errors
// to stderr. It returns the number of expressions that failed.
func run(cfg *config, stdout, stderr io.Writer) int {
	fail := color.New(color.FgRed)
	verb := cfg.verb + "\n"
	var bad int
	for _, src := range cfg.exprs {
		a, err := floatexpr.Parse(src, cfg.opts...)
		if err != nil {
			fail.Fprintf(stderr, "%q: %v\n", src, err)
			bad++
			continue
		}
		if cfg.echo {
			fmt.Fprintf(stdout, "%v : ", a)
		}
		fmt.Fprintf(stdout, verb, a.Eval(cfg.with...))
	}
	return bad
}
