package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/recapx/recap/pkg/recap"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		asJSON     bool
		groupNames []string
	)

	cmd := &cobra.Command{
		Use:   "analyze <pattern>",
		Short: "Print the Required/Optional classification of a pattern's capturing groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := recap.CompileWithNames(args[0], groupNames)
			if err != nil {
				return err
			}
			if asJSON {
				out, err := json.MarshalIndent(p.Schema(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatSchema(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the schema as JSON")
	cmd.Flags().StringArrayVarP(&groupNames, "name", "n", nil, "Declare a group name by ordinal (repeatable)")
	return cmd
}

func formatSchema(p *recap.Pattern) string {
	required := color.New(color.FgGreen).SprintFunc()
	optional := color.New(color.FgYellow).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "pattern: %s\n", p.Source())
	fmt.Fprintf(&b, "groups:  %d\n", p.NumGroups())
	for _, slot := range p.Schema().Slots {
		kind := required(slot.Kind.String())
		if slot.Kind == recap.OptionalSlot {
			kind = optional(slot.Kind.String())
		}
		name := slot.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(&b, "  %2d  %-8s  %s\n", slot.Index, kind, name)
	}
	return b.String()
}
