package cmd

import (
	"fmt"
	"sort"

	"github.com/go-drift/motion/pkg/transition"
)

func init() {
	RegisterCommand(&Command{
		Name:  "list",
		Short: "List presets in a file",
		Long: `List prints each preset in a file with its duration and effect chain,
in the order effects apply.`,
		Usage: "motion list <file>",
		Run:   runList,
	})
}

func runList(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("list requires exactly one preset file")
	}

	presets, err := transition.LoadConfigFile(args[0])
	if err != nil {
		return err
	}

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rt := presets[name]
		fmt.Printf("%s (%v)\n", name, rt.Duration)
		for _, e := range rt.Effects {
			fmt.Printf("  - %s\n", e.Name())
		}
	}
	return nil
}
