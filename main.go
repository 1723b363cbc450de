package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/OZORDI/spring-animations/internal/ui"
)

func main() {
	var spec string

	if len(os.Args) < 2 {
		picker := ui.NewPicker()
		p := tea.NewProgram(picker, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		pm, ok := finalModel.(ui.PickerModel)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unexpected model type from picker\n")
			os.Exit(1)
		}
		result := pm.Result()
		if result.Cancelled {
			os.Exit(0)
		}
		spec = result.Spec
	} else {
		// Shells split "duration:0.5, bounce:0.3" into several args; stitch
		// them back together so quoting is optional.
		spec = strings.Join(os.Args[1:], " ")
	}

	model, err := ui.New(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
