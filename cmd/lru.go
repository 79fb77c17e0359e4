package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eagle-os/eagle-sim/sim"
)

var (
	// CLI flags for lru
	lruFrames     int   // Number of frames in the pool
	lruReferences []int // Explicit page reference string
	lruRandom     int   // Number of random references when none are given
	lruPages      int   // Distinct pages for random references
	lruSeed       int64 // Seed for random references
)

// lruCmd runs a single LRU page-replacement simulation
var lruCmd = &cobra.Command{
	Use:   "lru",
	Short: "Simulate LRU page replacement over a reference string",
	Run: func(cmd *cobra.Command, args []string) {
		c := &sim.LRUCommand{
			Frames:           lruFrames,
			References:       lruReferences,
			RandomReferences: lruRandom,
			Pages:            lruPages,
		}
		if err := runLRU(c, lruSeed, logFile, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func runLRU(c *sim.LRUCommand, seed int64, logPath string, out io.Writer) error {
	if len(c.References) == 0 && (c.RandomReferences <= 0 || c.Pages <= 0) {
		return fmt.Errorf("provide --refs, or --random with --pages")
	}
	actions, closeLog, err := openActionLog(logPath, "")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := sim.DefaultKernelConfig()
	cfg.Seed = seed
	k := sim.NewKernel(cfg, actions)
	return c.Execute(k, out)
}

func init() {
	lruCmd.Flags().IntVar(&lruFrames, "frames", 3, "Number of frames")
	lruCmd.Flags().IntSliceVar(&lruReferences, "refs", nil, "Comma-separated page references")
	lruCmd.Flags().IntVar(&lruRandom, "random", 0, "Number of random references to draw when --refs is empty")
	lruCmd.Flags().IntVar(&lruPages, "pages", 8, "Distinct pages for random references")
	lruCmd.Flags().Int64Var(&lruSeed, "seed", sim.DefaultSeed, "Seed for random references")
}
