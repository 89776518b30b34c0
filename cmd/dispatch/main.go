package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/ufunc-dispatch/scenario"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	callStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func main() {
	var (
		scenarioFile = flag.String("scenario", "", "Path to scenario yaml file")
		callName     = flag.String("call", "", "Call to replay (optional, default all)")
		list         = flag.Bool("list", false, "List calls and exit")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *scenarioFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: dispatch -scenario <file.yaml> [-call name]")
		fmt.Fprintln(os.Stderr, "       dispatch -scenario <file.yaml> -list")
		fmt.Fprintln(os.Stderr, "       dispatch -scenario <file.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*scenarioFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*scenarioFile, *callName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioFile, callName string, listOnly bool) error {
	s, err := scenario.Load(scenarioFile)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Dispatch Replay"), s.Name)

	if listOnly {
		fmt.Println("\nCalls:")
		for _, name := range s.Calls() {
			fmt.Printf("  %s\n", callStyle.Render(name))
		}
		return nil
	}

	var traces []*scenario.Trace
	if callName != "" {
		trace, err := s.Run(callName)
		if err != nil {
			return err
		}
		traces = append(traces, trace)
	} else {
		traces, err = s.RunAll()
		if err != nil {
			return err
		}
	}

	for _, trace := range traces {
		fmt.Println()
		fmt.Println(renderTrace(trace, terminalWidth()))
	}
	return nil
}

func renderTrace(t *scenario.Trace, width int) string {
	var b strings.Builder

	b.WriteString(callStyle.Render(t.Call))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s.%s", t.Op, t.Method)))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(strings.Repeat("─", min(width, 60))))
	b.WriteByte('\n')

	if len(t.Attempts) == 0 {
		b.WriteString(dimStyle.Render("  no handler attempts"))
		b.WriteByte('\n')
	}
	for i, a := range t.Attempts {
		b.WriteString(fmt.Sprintf("  %d. %s (%s) ", i+1, a.Operand, typeStyle.Render(a.Type)))
		switch a.Outcome {
		case "returned":
			b.WriteString(okStyle.Render(a.Outcome))
		case "failed":
			b.WriteString(errStyle.Render(a.Outcome))
		default:
			b.WriteString(dimStyle.Render(a.Outcome))
		}
		b.WriteByte('\n')
	}

	if t.Err != nil {
		b.WriteString(errStyle.Render("  " + t.Summary()))
	} else {
		b.WriteString(okStyle.Render("  " + t.Summary()))
	}
	return b.String()
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
