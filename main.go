package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/flowdeck/internal/store"
	"github.com/sadopc/flowdeck/internal/tui"
)

func main() {
	dbFlag := flag.String("db", "", "path to the flowdeck database (default: user config dir)")
	flag.Parse()

	dbPath := *dbFlag
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "flowdeck: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flowdeck: opening database %s: %v\n", dbPath, err)
		os.Exit(1)
	}
	defer s.Close()

	app := tui.NewApp(s)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "flowdeck: %v\n", err)
		os.Exit(1)
	}
}
