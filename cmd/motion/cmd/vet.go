package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/motion/pkg/transition"
)

func init() {
	RegisterCommand(&Command{
		Name:  "vet",
		Short: "Validate preset files",
		Long: `Vet parses each given preset file and reports the first problem found:
malformed YAML, an unsatisfied version requirement, or an unknown effect,
direction, curve, or reveal shape.`,
		Usage: "motion vet <file>...",
		Run:   runVet,
	})
}

func runVet(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("vet requires at least one preset file")
	}

	failed := false
	for _, path := range args {
		presets, err := transition.LoadConfigFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s: ok (%d presets)\n", path, len(presets))
	}
	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}
