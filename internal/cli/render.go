// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trendit/progressbutton/internal/termimg"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the button to a PNG file",
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
			dst := image.NewRGBA(image.Rectangle{Max: size})
			b.Render(dst, txt, a.cfg.TextColor)

			out, _ := cmd.Flags().GetString("out")
			if err := writePNG(out, dst); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"out":   out,
				"state": b.State().String(),
				"size":  size.String(),
			}).Info("button rendered")
			return nil
		},
	}
	bindFrameFlags(cmd.Flags())
	cmd.Flags().StringP("out", "o", "button.png", "Output PNG file")
	return cmd
}

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the button to the terminal",
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
			cols, _ := cmd.Flags().GetInt("cols")
			img := b.Renderer().Background(b.Frame(txt, a.cfg.TextColor), size)
			label := lipgloss.NewStyle().Bold(true).Foreground(termimg.Hex(a.cfg.TextColor)).Render(txt)
			fmt.Fprintln(cmd.OutOrStdout(), termimg.Render(img, cols))
			fmt.Fprintln(cmd.OutOrStdout(), lipgloss.PlaceHorizontal(cols, lipgloss.Center, label))
			a.log.WithField("state", b.State().String()).Debug("button previewed")
			return nil
		},
	}
	bindFrameFlags(cmd.Flags())
	cmd.Flags().Int("cols", 40, "Width in terminal columns")
	return cmd
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
