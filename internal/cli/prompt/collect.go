package prompt

// TextCollector collects free text.
type TextCollector struct {
	P *Prompter
}

// Collect implements desktop.Collector.
func (c TextCollector) Collect(prompt string) (string, error) {
	return c.P.Text(prompt)
}

// PathCollector collects a path that must exist.
type PathCollector struct {
	P *Prompter
}

// Collect implements desktop.Collector.
func (c PathCollector) Collect(prompt string) (string, error) {
	return c.P.Path(prompt)
}

// YesNoCollector collects "true" or "false".
type YesNoCollector struct {
	P *Prompter
}

// Collect implements desktop.Collector.
func (c YesNoCollector) Collect(prompt string) (string, error) {
	return c.P.YesNo(prompt)
}

// MultiCollector collects a ';'-terminated list chosen from Labels.
type MultiCollector struct {
	Selector MultiSelector
	Labels   []string
}

// Collect implements desktop.Collector.
func (c MultiCollector) Collect(prompt string) (string, error) {
	return c.Selector.MultiSelect(prompt, c.Labels)
}
