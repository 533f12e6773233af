package main

import (
	"encoding/json"
	"fmt"
	"os"

	"refindorder/internal/conf"
	"refindorder/internal/model"
	"refindorder/internal/reorder"
	"refindorder/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

const defaultConfPath = "refind.conf"

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "abulka",
		Repository: "refindorder",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/abulka/refindorder/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: refindorder [options] [conf_path]\n\n")
		fmt.Fprintf(os.Stderr, "refindorder customizes the rEFInd boot menu icon order.\n")
		fmt.Fprintf(os.Stderr, "It reorders the comma-separated values of the 'scanfor' and 'showtools'\n")
		fmt.Fprintf(os.Stderr, "directives in refind.conf and rewrites the file in place.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  refindorder                          # Prompt mode on ./refind.conf\n")
		fmt.Fprintf(os.Stderr, "  refindorder /boot/EFI/refind/refind.conf\n")
		fmt.Fprintf(os.Stderr, "  refindorder --tui                    # Full-screen editor\n")
		fmt.Fprintf(os.Stderr, "  refindorder --json                   # Dump detected directives\n")
		fmt.Fprintf(os.Stderr, "  refindorder -n refind.conf           # Preview without writing\n")
	}

	tuiFlag := pflag.BoolP("tui", "t", false, "Start the full-screen TUI editor")
	jsonFlag := pflag.BoolP("json", "j", false, "Print detected directives as JSON (read-only)")
	dryRunFlag := pflag.BoolP("dry-run", "n", false, "Prompt as usual but print the result instead of writing")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("refindorder version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if pflag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: expected at most one conf_path argument, got %d\n\n", pflag.NArg())
		pflag.Usage()
		os.Exit(2)
	}
	path := defaultConfPath
	if pflag.NArg() == 1 {
		path = pflag.Arg(0)
	}

	if *jsonFlag {
		runJsonMode(path)
		return
	}

	if *tuiFlag {
		runTuiMode(path)
		return
	}

	// Default: interactive prompt mode
	runPromptMode(path, *dryRunFlag)
}

func runPromptMode(path string, dryRun bool) {
	console := reorder.NewConsole()

	if dryRun {
		f, err := conf.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		f.Reorder(console)
		fmt.Print(f.Render())
		return
	}

	if err := conf.Process(path, console); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJsonMode(path string) {
	f, err := conf.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(f.Directives)
}

func runTuiMode(path string) {
	f, err := conf.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := tui.InitialModel(f)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
