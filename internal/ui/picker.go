package ui

import (
	"github.com/charmbracelet/huh"
)

// PickFile prompts for one of the conflicted files.
func PickFile(files []string) (string, error) {
	var selected string
	var options []huh.Option[string]

	for _, file := range files {
		options = append(options, huh.NewOption(file, file))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a conflicted file to view:").
				Options(options...).
				Value(&selected),
		),
	)

	err := form.Run()
	if err != nil {
		return "", err
	}

	return selected, nil
}
