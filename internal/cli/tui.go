// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/trendit/progressbutton/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Drive the button interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := frameSize(cmd)
			if err != nil {
				return err
			}
			b, err := a.button(cmd)
			if err != nil {
				return err
			}
			defer b.Renderer().Close()
			txt, _ := cmd.Flags().GetString("text")
			a.log.Debug("starting tui")
			return tui.Run(cmd.Context(), b, tui.Options{
				Label:     txt,
				TextColor: a.cfg.TextColor,
				Size:      size,
			})
		},
	}
	bindFrameFlags(cmd.Flags())
	return cmd
}
