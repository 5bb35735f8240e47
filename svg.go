package dashoutline

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if n == 0 {
			// Normalize negative zero.
			n = 0
		}
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

// WriteSVGDocument writes a standalone SVG document showing the outline filled
// in black. The outline is flipped from the y-up space of font outlines into
// SVG's y-down space.
func WriteSVGDocument(w io.Writer, o Outline, opts SVGOptions) error {
	flipped := o.Transform(FlipY)
	box := flipped.ControlBox().Inflate(10)
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n<path fill-rule=\"nonzero\" d=\"",
		box.X0, box.Y0, box.Width(), box.Height()); err != nil {
		return err
	}
	if err := WriteSVG(w, flipped.Elements(), opts); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"/>\n</svg>\n")
	return err
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// ParseSVG parses SVG path data into an outline. Quadratic Béziers are raised
// to cubics; elliptical arcs aren't supported.
func ParseSVG(s string) (Outline, error) {
	els, err := parseSVGElements([]byte(s))
	if err != nil {
		return nil, err
	}
	return OutlineFromElements(slices.Values(els))
}

func parseSVGElements(path []byte) ([]PathElement, error) {
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return nil, nil
	}
	if path[i] < 'A' {
		return nil, fmt.Errorf("%w: path should start with a command", ErrSyntax)
	}

	cmdLens := map[byte]int{
		'M': 2,
		'Z': 0,
		'L': 2,
		'H': 1,
		'V': 1,
		'C': 6,
		'S': 4,
		'Q': 4,
		'T': 2,
	}
	var f [6]float64

	var els []PathElement
	var start, p0, p1 Point
	// Reflected control points for S and T.
	var c, q Point
	prevCmd := byte('z')
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !(path[i] >= '0' && path[i] <= '9' || path[i] == '.' || path[i] == '-' || path[i] == '+') {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		n, ok := cmdLens[CMD]
		if !ok {
			if CMD == 'A' {
				return nil, fmt.Errorf("%w: elliptical arc at position %d", ErrUnsupported, i)
			}
			return nil, fmt.Errorf("%w: unknown command '%c' at position %d", ErrSyntax, cmd, i)
		}
		for j := range n {
			num, k := pstrconv.ParseFloat(path[i:])
			if k == 0 {
				if repeat && j == 0 && i < len(path) {
					return nil, fmt.Errorf("%w: unknown command '%c' at position %d", ErrSyntax, path[i], i+1)
				}
				return nil, fmt.Errorf("%w: sets of %d numbers should follow command '%c' at position %d", ErrSyntax, n, cmd, i+1)
			}
			f[j] = num
			i += k
			i += skipCommaWhitespace(path[i:])
		}

		rel := cmd != CMD
		at := func(x, y float64) Point {
			if rel {
				return Pt(p0.X+x, p0.Y+y)
			}
			return Pt(x, y)
		}
		switch CMD {
		case 'M':
			p1 = at(f[0], f[1])
			start = p1
			els = append(els, MoveTo(p1))
			// Further coordinate pairs are implicit LineTos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			p1 = start
			els = append(els, ClosePath())
		case 'L':
			p1 = at(f[0], f[1])
			els = append(els, LineTo(p1))
		case 'H':
			p1 = Pt(f[0], p0.Y)
			if rel {
				p1.X += p0.X
			}
			els = append(els, LineTo(p1))
		case 'V':
			p1 = Pt(p0.X, f[0])
			if rel {
				p1.Y += p0.Y
			}
			els = append(els, LineTo(p1))
		case 'C':
			cp1 := at(f[0], f[1])
			cp2 := at(f[2], f[3])
			p1 = at(f[4], f[5])
			els = append(els, CubicTo(cp1, cp2, p1))
			c = cp2
		case 'S':
			cp1 := p0
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = p0.Translate(p0.Sub(c))
			}
			cp2 := at(f[0], f[1])
			p1 = at(f[2], f[3])
			els = append(els, CubicTo(cp1, cp2, p1))
			c = cp2
		case 'Q':
			cp := at(f[0], f[1])
			p1 = at(f[2], f[3])
			els = append(els, quadToCubic(p0, cp, p1))
			q = cp
		case 'T':
			cp := p0
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp = p0.Translate(p0.Sub(q))
			}
			p1 = at(f[0], f[1])
			els = append(els, quadToCubic(p0, cp, p1))
			q = cp
		}
		prevCmd = cmd
		p0 = p1
	}
	return els, nil
}

// quadToCubic raises a quadratic Bézier to an equivalent cubic.
func quadToCubic(p0, p1, p2 Point) PathElement {
	return CubicTo(
		p0.Lerp(p1, 2.0/3.0),
		p2.Lerp(p1, 2.0/3.0),
		p2,
	)
}
