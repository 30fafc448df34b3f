package svd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/svd/number"
	"golang.org/x/term"
)

// SidePalette maps oriented sides to display colors.
type SidePalette map[OrientedSide]*color.Color

func makeDefaultPalette() SidePalette {
	return SidePalette{
		OnPositiveSide: color.New(color.FgGreen),
		OnNegativeSide: color.New(color.FgRed),
		OnBoundary:     color.New(color.FgYellow, color.Bold),
	}
}

// Sides2Console outputs the oriented side of each point with respect to l
// (for debugging purposes). If w is a terminal, sides are colored.
func Sides2Console[R number.Ring[R]](w io.Writer, l Line[R], points ...Point[R]) error {
	return sidesOutput(w, l, isTerminal(w), nil, points)
}

// Sides2ConsoleWithPalette is like Sides2Console, but always colors the
// output using palette, even where color output is disabled globally. The
// palette's colors themselves are left unchanged. Sides missing in palette are
// printed plain.
func Sides2ConsoleWithPalette[R number.Ring[R]](w io.Writer, l Line[R], palette SidePalette,
	points ...Point[R]) error {
	//
	return sidesOutput(w, l, true, palette, points)
}

func sidesOutput[R number.Ring[R]](w io.Writer, l Line[R], colored bool, palette SidePalette,
	points []Point[R]) error {
	//
	if palette == nil {
		palette = makeDefaultPalette()
	}
	if _, err := fmt.Fprintf(w, "line %s\n", l); err != nil {
		return err
	}
	for _, p := range points {
		side := OrientedSideOfLine(l, p)
		if _, err := fmt.Fprintf(w, "\t%s: ", p); err != nil {
			return err
		}
		c, ok := palette[side]
		var err error
		if ok && c != nil && colored {
			forced := *c
			forced.EnableColor()
			_, err = fmt.Fprintln(w, forced.Sprint(side))
		} else {
			_, err = fmt.Fprintln(w, side)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
