package main

import (
	"mountls/internal/tui"

	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the listing sequence with a live status view",
		RunE: func(cmd *cobra.Command, args []string) error {
			capture := &tui.Capture{}
			ctrl, st, err := newController(capture)
			if err != nil {
				return err
			}
			defer st.Close()

			ctrl.Initialize()
			return tui.Run(ctrl, capture)
		},
	}
}
