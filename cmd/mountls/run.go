package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"mountls/internal/controller"
	"mountls/internal/dirent"
	"mountls/internal/log"
	"mountls/internal/storage"

	"github.com/spf13/cobra"
)

// newController assembles the machine from the loaded configuration and
// the real collaborator services.
func newController(sink controller.Sink) (*controller.Controller, *storage.System, error) {
	st, err := storage.NewSystem(cfg.Device.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("storage service: %w", err)
	}

	svc, err := dirent.NewLocal(cfg.Listing.Ignore)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("dirent service: %w", err)
	}

	ctrl := controller.New(controller.Config{
		DevicePath:    cfg.Device.Path,
		MountPath:     cfg.Mount.Path,
		Filesystem:    cfg.Device.Filesystem,
		Version:       version,
		ListDirectory: cfg.Listing.Enabled,
	}, st, svc, sink)
	return ctrl, st, nil
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the listing sequence headless",
		Long: `Run ticks the controller until it reaches a terminal state. The only
way to stop it earlier is a signal, which simply stops the tick loop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, st, err := newController(log.Default())
			if err != nil {
				return err
			}
			defer st.Close()

			ctrl.Initialize()

			ctx, stop := signal.NotifyContext(context.Background(),
				syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			interval := time.Duration(cfg.Settings.TickIntervalMs) * time.Millisecond
			for !ctrl.Done() {
				select {
				case <-ctx.Done():
					log.Debugf("interrupted in %s", ctrl.State())
					return nil
				default:
				}
				ctrl.Tick()
				if interval > 0 {
					time.Sleep(interval)
				}
			}

			if ctrl.State() == controller.Error {
				return fmt.Errorf("listing sequence failed; see trace")
			}
			return nil
		},
	}
}
