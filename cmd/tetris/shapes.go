package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the shapes and their rotations",
	Long: `Prints each of the seven shapes followed by its four clockwise
rotations, left to right.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		writeShapes(os.Stdout)
	},
}

// rotationGap separates rotations printed side by side.
const rotationGap = "   "

// writeShapes prints every canonical shape with its four rotations.
func writeShapes(w io.Writer) {
	for i, s := range engine.Shapes() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", s.ID())

		rotations := make([][]string, 4)
		height := 0
		cur := s
		for r := range rotations {
			rotations[r] = strings.Split(cur.String(), "\n")
			height = max(height, len(rotations[r]))
			cur = cur.Rotate()
		}

		for line := 0; line < height; line++ {
			parts := make([]string, len(rotations))
			for r, rows := range rotations {
				width := len(rows[0])
				text := ""
				if line < len(rows) {
					text = rows[line]
				}
				parts[r] = fmt.Sprintf("%-*s", width, text)
			}
			fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, rotationGap), " "))
		}
	}
}
