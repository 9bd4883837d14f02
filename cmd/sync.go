package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-tox/toxsettings/lib/util/signals"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Open the store, drain pending work and write it back out",
	Long: `Opens the store, queues a save of both tiers and blocks until the
worker has applied everything. Useful after hand-editing files to
normalize them, and as a smoke test of a deployment's directory layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		// A SIGINT mid-drain still gets one final flush.
		flushID := signals.RegisterFlushHandler(func() { s.Sync() })
		defer signals.DeregisterFlushHandler(flushID)

		s.SaveGlobal()
		s.SavePersonal()
		s.Sync()
		return s.Close()
	},
}
