// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/app-builder/pkg/layout"
)

var (
	breakpoint string
	parentID   string
	gridWidth  float64
	posX       float64
	posY       float64
	width      float64
	height     float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and edit widget layouts",
}

var listLayoutsCmd = &cobra.Command{
	Use:   "list [app-version-id]",
	Short: "List the widget layouts of an app version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := new(layout.LayoutsResponse)
		path := fmt.Sprintf("/api/apps/%s/layouts?breakpoint=%s", url.PathEscape(args[0]), url.QueryEscape(breakpoint))

		if _, err := getClient().do(context.Background(), http.MethodGet, path, nil, resp); err != nil {
			return fmt.Errorf("failed to list layouts: %w", err)
		}

		printLayouts(resp)
		return nil
	},
}

var moveWidgetCmd = &cobra.Command{
	Use:   "move [app-version-id] [widget-id]",
	Short: "Move a widget to a pixel position, optionally into a new parent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		record := layout.DragRecord{ID: args[1], X: posX, Y: posY, GW: gridWidth}
		if cmd.Flags().Changed("parent") {
			record.Parent = &parentID
		}

		resp := new(layout.LayoutsResponse)
		req := &layout.DragRequest{Breakpoint: layout.Breakpoint(breakpoint), Records: []layout.DragRecord{record}}

		if _, err := getClient().do(context.Background(), http.MethodPatch, fmt.Sprintf("/api/apps/%s/layouts/drag", url.PathEscape(args[0])), req, resp); err != nil {
			return fmt.Errorf("failed to move widget: %w", err)
		}

		printLayouts(resp)
		return nil
	},
}

var resizeWidgetCmd = &cobra.Command{
	Use:   "resize [app-version-id] [widget-id]",
	Short: "Resize a widget to pixel dimensions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		record := layout.ResizeRecord{ID: args[1], Width: width, Height: height, X: posX, Y: posY, GW: gridWidth}

		resp := new(layout.LayoutsResponse)
		req := &layout.ResizeRequest{Breakpoint: layout.Breakpoint(breakpoint), Records: []layout.ResizeRecord{record}}

		if _, err := getClient().do(context.Background(), http.MethodPatch, fmt.Sprintf("/api/apps/%s/layouts/resize", url.PathEscape(args[0])), req, resp); err != nil {
			return fmt.Errorf("failed to resize widget: %w", err)
		}

		printLayouts(resp)
		return nil
	},
}

func printLayouts(resp *layout.LayoutsResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WIDGET\tTYPE\tPARENT\tLEFT\tTOP\tWIDTH\tHEIGHT")
	for _, l := range resp.Layouts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n", l.WidgetID, l.ComponentType, l.Parent, l.Left, l.Top, l.Width, l.Height)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(listLayoutsCmd)
	layoutCmd.AddCommand(moveWidgetCmd)
	layoutCmd.AddCommand(resizeWidgetCmd)

	layoutCmd.PersistentFlags().StringVar(&breakpoint, "breakpoint", string(layout.Desktop), "Layout breakpoint, desktop or mobile")

	for _, c := range []*cobra.Command{moveWidgetCmd, resizeWidgetCmd} {
		c.Flags().Float64Var(&gridWidth, "grid-width", 0, "Pixel width of one grid column in the parent container")
		c.Flags().Float64Var(&posX, "x", 0, "Left offset in pixels")
		c.Flags().Float64Var(&posY, "y", 0, "Top offset in pixels")
		c.MarkFlagRequired("grid-width")
	}

	moveWidgetCmd.Flags().StringVar(&parentID, "parent", "", "New parent widget, empty for the canvas")
	resizeWidgetCmd.Flags().Float64Var(&width, "width", 0, "Width in pixels")
	resizeWidgetCmd.Flags().Float64Var(&height, "height", 0, "Height in pixels")
	resizeWidgetCmd.MarkFlagRequired("width")
	resizeWidgetCmd.MarkFlagRequired("height")
}
