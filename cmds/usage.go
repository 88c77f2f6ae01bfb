package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage() {
	printCommands(p.Output, p.commands, "")
}

func printCommands(w io.Writer, commands map[string]*Command, indent string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}

		line := strings.Join(append([]string{name}, command.Aliases...), ", ")
		for _, arg := range command.ArgNames {
			line += " " + arg
		}
		fmt.Fprintf(tw, "%s%s\t%s\n", indent, line, command.Description)

		if len(command.Subs) > 0 {
			tw.Flush()
			printCommands(w, command.Subs, indent+"  ")
		}
	}
	tw.Flush()
}
