package replkit

import (
	"fmt"
	"strings"
)

// HelpFor renders one command's usage line and description.
func (r *Registry) HelpFor(name string) (string, error) {
	cmd, ok := r.Lookup(name)
	if !ok {
		return "", &UnknownCommandError{Name: name}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s\n", cmd.Usage())
	if cmd.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", cmd.Description)
	}
	return b.String(), nil
}

// Help renders the whole-registry help message: the shell description,
// every registered command with its signature and a one-line summary, and
// the reserved commands the loop provides itself. Descriptions are wrapped
// to width columns; width <= 0 disables wrapping.
func (r *Registry) Help(description string, width int) string {
	var user [][2]string
	for cmd := range r.Commands() {
		user = append(user, [2]string{cmd.Usage(), cmd.Description})
	}
	var other [][2]string
	for _, rc := range reservedCommands {
		other = append(other, [2]string{rc.Name, rc.Description})
	}

	var b strings.Builder
	if description != "" {
		b.WriteString(description)
		b.WriteString("\n\n")
	}
	b.WriteString("Available commands:\n")
	b.WriteString(formatHelpEntries(user, width))
	b.WriteString("\nOther commands:\n")
	b.WriteString(formatHelpEntries(other, width))
	return b.String()
}

// formatHelpEntries aligns signature/description pairs into two columns,
// wrapping long descriptions onto continuation lines indented to the
// description column.
func formatHelpEntries(entries [][2]string, width int) string {
	if len(entries) == 0 {
		return ""
	}
	sigWidth := 0
	for _, e := range entries {
		if len(e[0]) > sigWidth {
			sigWidth = len(e[0])
		}
	}

	var b strings.Builder
	for _, e := range entries {
		prefix := fmt.Sprintf("  %-*s  ", sigWidth, e[0])
		b.WriteString(wrapText(prefix, e[1], width))
		b.WriteString("\n")
	}
	return b.String()
}

// wrapText greedily wraps text at word boundaries after the given prefix;
// continuation lines are indented to the description column.
func wrapText(prefix, text string, width int) string {
	if text == "" {
		return strings.TrimRight(prefix, " ")
	}
	words := strings.Fields(text)
	indent := strings.Repeat(" ", len(prefix))
	var b strings.Builder
	cur := prefix + words[0]
	for _, w := range words[1:] {
		if width > 0 && len(cur)+1+len(w) > width {
			b.WriteString(cur)
			b.WriteString("\n")
			cur = indent + w
			continue
		}
		cur += " " + w
	}
	b.WriteString(cur)
	return b.String()
}
