package wizard

import (
	"github.com/thoreinstein/dtopr/internal/cli/prompt"
	"github.com/thoreinstein/dtopr/internal/desktop"
)

// Prompts shown for each field.
const (
	PromptName       = "Enter the name of the app as you'd like it to appear in the menus:\n"
	PromptComment    = "Enter a brief description of the app:\n"
	PromptExec       = "Enter the app's commandline command, including arguments:\n"
	PromptPath       = "Enter the working directory of the app (blank for current directory):\n"
	PromptIcon       = "Enter the filename of the app's icon:\n"
	PromptTerminal   = "Will this be a terminal app (y/n)?\n"
	PromptCategories = "Select one or more categories.  Select 0 when done."
)

// SetupFields registers the desktop entry fields in collection order.
// Categories are chosen with sel; a nil sel uses the numbered picker.
func SetupFields(p *prompt.Prompter, sel prompt.MultiSelector) *desktop.Registry {
	if sel == nil {
		sel = p
	}

	reg := desktop.NewRegistry()
	specs := []struct {
		name   string
		prompt string
		c      desktop.Collector
	}{
		{desktop.KeyName, PromptName, prompt.TextCollector{P: p}},
		{desktop.KeyComment, PromptComment, prompt.TextCollector{P: p}},
		{desktop.KeyExec, PromptExec, prompt.PathCollector{P: p}},
		{desktop.KeyPath, PromptPath, prompt.PathCollector{P: p}},
		{desktop.KeyIcon, PromptIcon, prompt.PathCollector{P: p}},
		{desktop.KeyTerminal, PromptTerminal, prompt.YesNoCollector{P: p}},
		{desktop.KeyCategories, PromptCategories, prompt.MultiCollector{Selector: sel, Labels: desktop.Categories()}},
	}
	for _, s := range specs {
		// Names are distinct constants and collectors are non-nil.
		_ = reg.Add(s.name, s.prompt, s.c)
	}
	return reg
}
