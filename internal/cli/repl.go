// Package cli provides the command-line presentation layer: the REPL
// (Read-Eval-Print Loop) for interactive RPN evaluation, result and report
// rendering, and the progress display of the accuracy study.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/qdcalc/internal/calc"
	"github.com/agbru/qdcalc/internal/config"
	"github.com/agbru/qdcalc/internal/ui"
	"github.com/agbru/qdcalc/qd"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Output controls how values are printed.
	Output OutputConfig
}

// REPL represents an interactive calculator session. Plain input lines are
// executed on a stack that persists across lines; the eval command
// evaluates an expression on its own.
type REPL struct {
	config REPLConfig
	stack  calc.Stack
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"qd> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(input) != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sQuad-Double Calculator - Interactive RPN Mode%s        %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<rpn tokens>%s     - Push and operate on the session stack (e.g. 2 sqrt)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %seval <expr>%s      - Evaluate an expression on a fresh stack\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstack%s            - Show the session stack\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sclear%s            - Empty the session stack\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sdigits <n>%s       - Set printed digits (0 = %d)\n", ui.ColorYellow(), ui.ColorReset(), qd.NDigits)
	fmt.Fprintf(r.out, "  %sformat <e|f|g>%s   - Set the output format\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scomponents%s       - Toggle display of the four words\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s           - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s             - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s      - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "Operators: %s\n", strings.Join(calc.Names(), " "))
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "eval":
		r.cmdEval(strings.Join(args, " "))
	case "stack", "st":
		r.cmdStack()
	case "clear":
		r.stack.Clear()
		fmt.Fprintln(r.out, "Stack cleared.")
	case "digits":
		r.cmdDigits(args)
	case "format":
		r.cmdFormat(args)
	case "components":
		r.cmdComponents()
	case "status":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.execute(input)
	}

	return true
}

// execute runs input on the session stack and prints the top value.
func (r *REPL) execute(input string) {
	if err := r.stack.Exec(input); err != nil {
		r.printError(input, err)
		return
	}
	if top, ok := r.stack.Top(); ok {
		r.printValue(top)
	}
}

// cmdEval handles the "eval" command.
func (r *REPL) cmdEval(expr string) {
	if strings.TrimSpace(expr) == "" {
		fmt.Fprintf(r.out, "%sUsage: eval <expr>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	start := time.Now()
	x, err := calc.Eval(expr)
	duration := time.Since(start)
	if err != nil {
		r.printError(expr, err)
		return
	}
	DisplayResult(r.out, expr, x, duration, r.config.Output)
}

func (r *REPL) printValue(x qd.Real) {
	fmt.Fprintf(r.out, "  %s%s%s\n", ui.ColorGreen(), FormatValue(x, r.config.Output), ui.ColorReset())
	if r.config.Output.ShowComponents {
		fmt.Fprintf(r.out, "  %s\n", x.Dump())
	}
}

func (r *REPL) printError(expr string, err error) {
	fmt.Fprintf(r.out, "%sError:%s\n", ui.ColorRed(), ui.ColorReset())
	for _, line := range strings.Split(FormatEvalError(expr, err), "\n") {
		fmt.Fprintf(r.out, "  %s\n", line)
	}
}

// cmdStack displays the session stack, top last.
func (r *REPL) cmdStack() {
	values := r.stack.Values()
	if len(values) == 0 {
		fmt.Fprintln(r.out, "Stack is empty.")
		return
	}
	for i, v := range values {
		fmt.Fprintf(r.out, "  %s%d:%s %s\n", ui.ColorYellow(), len(values)-1-i, ui.ColorReset(), FormatValue(v, r.config.Output))
	}
}

// cmdDigits handles the "digits" command.
func (r *REPL) cmdDigits(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: digits <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n > config.MaxDigits {
		fmt.Fprintf(r.out, "%sInvalid value: %s (want 0 to %d)%s\n", ui.ColorRed(), args[0], config.MaxDigits, ui.ColorReset())
		return
	}
	r.config.Output.Digits = n
	fmt.Fprintf(r.out, "Digits set to: %s%d%s\n", ui.ColorGreen(), n, ui.ColorReset())
}

// cmdFormat handles the "format" command.
func (r *REPL) cmdFormat(args []string) {
	if len(args) == 0 || !slices.Contains(config.Formats, strings.ToLower(args[0])) {
		fmt.Fprintf(r.out, "%sUsage: format <e|f|g>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	r.config.Output.Format = strings.ToLower(args[0])
	fmt.Fprintf(r.out, "Format set to: %s%s%s\n", ui.ColorGreen(), r.config.Output.Format, ui.ColorReset())
}

// cmdComponents toggles the component display.
func (r *REPL) cmdComponents() {
	r.config.Output.ShowComponents = !r.config.Output.ShowComponents
	status := "disabled"
	if r.config.Output.ShowComponents {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Component display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	digits := r.config.Output.Digits
	if digits == 0 {
		digits = qd.NDigits
	}
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Digits:      %s%d%s\n", ui.ColorCyan(), digits, ui.ColorReset())
	fmt.Fprintf(r.out, "  Format:      %s%s%s\n", ui.ColorCyan(), r.config.Output.Format, ui.ColorReset())
	fmt.Fprintf(r.out, "  Components:  %s%t%s\n", ui.ColorCyan(), r.config.Output.ShowComponents, ui.ColorReset())
	fmt.Fprintf(r.out, "  Stack depth: %s%d%s\n", ui.ColorCyan(), r.stack.Len(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Arithmetic:  %s%s%s\n", ui.ColorCyan(), qd.Strategy(), ui.ColorReset())
	fmt.Fprintln(r.out)
}
