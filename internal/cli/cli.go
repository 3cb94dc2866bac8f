// Package cli implements the interactive sgrfmt loop: every line entered is compiled as a
// styled-string template and the result shown, with a small set of :commands to poke at the
// compiler's state
package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/chzyer/readline"

	"awesome-dragon.science/go/sgrfmt/internal/config"
	"awesome-dragon.science/go/sgrfmt/pkg/format"
	"awesome-dragon.science/go/sgrfmt/pkg/log"
	"awesome-dragon.science/go/sgrfmt/pkg/sgr"
	"awesome-dragon.science/go/sgrfmt/pkg/sgr/compiler"
)

// resetAll clears any styling the compiled template left active on the terminal
const resetAll = sgr.CSI + "0m"

// CLI is an interactive compile loop over a readline instance
type CLI struct {
	rl    *readline.Instance
	out   io.Writer
	log   *log.Logger
	comp  *compiler.Compiler
	data  map[string]interface{}
	strip bool
	raw   bool
}

// New creates a CLI from the given readline instance and config
func New(rl *readline.Instance, logger *log.Logger, conf *config.Config) *CLI {
	return &CLI{
		rl:    rl,
		out:   rl,
		log:   logger,
		comp:  &compiler.Compiler{Aliases: conf.Aliases},
		data:  make(map[string]interface{}),
		strip: conf.Strip,
	}
}

// Run reads lines until the instance is closed or hits EOF
func (c *CLI) Run() {
	for {
		line, err := c.rl.Readline()
		if err != nil {
			return
		}

		c.handleLine(line)
	}
}

func (c *CLI) handleLine(line string) {
	if line == "" {
		return
	}

	if strings.HasPrefix(line, ":") {
		c.handleCommand(strings.TrimPrefix(line, ":"))
		return
	}

	compiled, err := c.comp.Compile(line, c.raw)
	if err != nil {
		c.log.Warnf("could not compile template: %s", err)
		return
	}

	c.log.Debugf("compiled to %q", compiled)

	display := format.Substitute(compiled, c.data)
	if c.strip {
		display = sgr.Strip(display)
		fmt.Fprintln(c.out, display)

		return
	}

	fmt.Fprintln(c.out, display+resetAll)
}

func (c *CLI) handleCommand(cmd string) {
	args, err := shlex.Split(cmd, true)
	if err != nil {
		c.log.Warnf("could not parse command: %s", err)
		return
	}

	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "help":
		c.printHelp()

	case "quit", "exit":
		c.rl.Close()

	case "strip":
		c.strip = c.toggle(c.strip, args[1:])
		c.log.Infof("strip is now %t", c.strip)

	case "raw":
		c.raw = c.toggle(c.raw, args[1:])
		c.log.Infof("raw mode is now %t", c.raw)

	case "set":
		if len(args) < 3 {
			c.log.Warnf("usage: :set <name> <value>")
			return
		}

		c.data[args[1]] = strings.Join(args[2:], " ")

	case "unset":
		if len(args) < 2 {
			c.log.Warnf("usage: :unset <name>")
			return
		}

		delete(c.data, args[1])

	case "vars":
		names := make([]string, 0, len(c.data))
		for name := range c.data {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(c.out, "%s = %v\n", name, c.data[name])
		}

	case "keywords":
		styles, colours := sgr.Styles(), sgr.Colours()
		sort.Strings(styles)
		sort.Strings(colours)
		fmt.Fprintf(c.out, "styles:  %s\ncolours: %s\n",
			strings.Join(styles, " "), strings.Join(colours, " "))

	default:
		c.log.Warnf("unknown command %q. Try :help", args[0])
	}
}

func (c *CLI) printHelp() {
	fmt.Fprint(c.out, `Lines are compiled as styled-string templates, eg. {+Bold#RedFg}hello
Commands:
  :help              show this text
  :quit              leave
  :strip [on|off]    strip escape sequences from output
  :raw [on|off]      skip backslash escape resolution
  :set <name> <val>  substitute {name} placeholders with val
  :unset <name>      forget a placeholder value
  :vars              list placeholder values
  :keywords          list style and colour keywords
`)
}

// toggle flips current when called with no argument, otherwise requires an explicit on or
// off. Anything else keeps the current state rather than guessing what was meant.
func (c *CLI) toggle(current bool, args []string) bool {
	if len(args) == 0 {
		return !current
	}

	switch args[0] {
	case "on":
		return true
	case "off":
		return false
	}

	c.log.Warnf("expected on or off, got %q", args[0])

	return current
}
