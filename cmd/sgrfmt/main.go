// Sgrfmt compiles styled-string templates into text containing literal SGR escape sequences.
// With no arguments it drops into an interactive loop; with -e or file arguments it compiles
// and exits.
package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"awesome-dragon.science/go/sgrfmt/internal/cli"
	"awesome-dragon.science/go/sgrfmt/internal/config"
	"awesome-dragon.science/go/sgrfmt/pkg/log"
	"awesome-dragon.science/go/sgrfmt/pkg/sgr"
	"awesome-dragon.science/go/sgrfmt/pkg/sgr/compiler"
)

var (
	configPath = pflag.StringP("config", "c", "sgrfmt.toml", "sets the configuration file to use")
	expr       = pflag.StringP("expr", "e", "", "compile the given template and exit")
	asLiteral  = pflag.BoolP("literal", "l", false, "treat input as a quoted string literal and emit one back")
	stripOut   = pflag.BoolP("strip", "s", false, "strip escape sequences from the output")
	outPath    = pflag.StringP("output", "o", "", "write output to the given file instead of stdout")
	verbose    = pflag.BoolP("verbose", "v", false, "log at debug level")
)

func main() {
	pflag.Parse()

	minLevel := log.INFO
	if *verbose {
		minLevel = log.DEBUG
	}

	logger := log.New(log.FTimestamp, os.Stderr, "MAIN", minLevel)

	conf, err := config.Get(*configPath)
	if errors.Is(err, config.ErrConfNotExist) {
		logger.Debugf("no config at %q, using defaults", *configPath)
	} else if err != nil {
		logger.Critf("could not load config: %s", err)
	}

	comp := &compiler.Compiler{Aliases: conf.Aliases}

	switch {
	case *expr != "":
		out, err := compileOne(comp, *expr)
		if err != nil {
			logger.Critf("could not compile template: %s", err)
		}

		writeOut(logger, out+"\n")

	case pflag.NArg() > 0:
		batch(comp, logger, pflag.Args())

	default:
		interactive(conf, minLevel)
	}
}

func compileOne(comp *compiler.Compiler, in string) (string, error) {
	var (
		out string
		err error
	)

	if *asLiteral {
		out, err = comp.CompileLiteral(in)
	} else {
		out, err = comp.Compile(in, false)
	}

	if err != nil {
		return "", err
	}

	if *stripOut {
		out = sgr.Strip(out)
	}

	return out, nil
}

func writeOut(logger *log.Logger, out string) {
	if *outPath == "" {
		fmt.Print(out)
		return
	}

	if err := ioutil.WriteFile(*outPath, []byte(out), 0644); err != nil {
		logger.Critf("could not write %s: %s", *outPath, err)
	}
}

// batch compiles whole files, each treated as one template
func batch(comp *compiler.Compiler, logger *log.Logger, paths []string) {
	if *outPath != "" && len(paths) > 1 {
		logger.Critf("cannot use --output with more than one input file")
	}

	for _, path := range paths {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			logger.Critf("could not read %s: %s", path, err)
		}

		out, err := compileOne(comp, string(data))
		if err != nil {
			logger.Critf("could not compile %s: %s", path, err)
		}

		target := *outPath
		if target == "" {
			target = path + ".sgr"
		}

		if err := ioutil.WriteFile(target, []byte(out), 0644); err != nil {
			logger.Critf("could not write %s: %s", target, err)
		}

		logger.Infof(
			"compiled %s -> %s (%s -> %s)",
			path, target, humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(len(out))),
		)
	}
}

func interactive(conf *config.Config, minLevel int) {
	rl, err := readline.New(conf.Prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not set up readline: %s\n", err)
		os.Exit(1)
	}

	defer rl.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, unix.SIGINT, unix.SIGTERM)

	go func() { <-sigChan; rl.Close() }()

	// log through readline so the prompt survives async output
	logger := log.New(log.FTimestamp, rl, "CLI", minLevel)

	confCopy := *conf
	if *stripOut {
		confCopy.Strip = true
	}

	cli.New(rl, logger, &confCopy).Run()
}
