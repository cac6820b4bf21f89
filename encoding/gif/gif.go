// Package gif renders a sequence of search frames as an animated GIF.
package gif

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/abtrace/search"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `pruned Max2-4: α=-∞ ≥ β=∞ (beta cutoff)`

	frameDelay = 100
	lastDelay  = 300
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
	color.RGBA{R: 200, A: 255},
	color.Gray{150},
}

var (
	ink     = image.NewUniform(globPalette[0])
	current = image.NewUniform(globPalette[2])
	pruned  = image.NewUniform(globPalette[3])
)

// Encoder accumulates frames and writes them out as one animation on Flush.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	io.Writer
	face font.Face

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// NewEncoder creates an Encoder whose images are at most h by w pixels.
// Set the Writer before calling Flush.
func NewEncoder(h, w int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: ink,
		},
		out: &gif.GIF{LoopCount: 0},
	}
}

// Encode renders one frame. The image size is fixed by the first frame.
func (enc *Encoder) Encode(f search.Frame) error {
	text := f.Lines()
	dy := int(math.Ceil(fontsize * lineheight * dpi / 72))

	if !enc.initialized {
		enc.face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		enc.Drawer.Face = enc.face

		maxW := font.MeasureString(enc.Face, dummyLongString).Ceil()
		for _, s := range text {
			maxW = max(maxW, font.MeasureString(enc.Face, s).Ceil())
		}
		w := maxW + 2*enc.padW
		h := (len(text)+1)*dy + 2*enc.padH

		w = min(w, enc.maxW)
		h = min(h, enc.maxH)

		if w == enc.maxW {
			enc.padW = 0
		}
		if h == enc.maxH {
			enc.padH = 0
		}

		enc.H = h
		enc.W = w
		enc.initialized = true
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	enc.Dst = im

	y := enc.padH + dy
	for i, s := range text {
		enc.Src = ink
		if i > 0 {
			switch n := f.Nodes[i-1]; {
			case n.Current:
				enc.Src = current
			case n.Pruned:
				enc.Src = pruned
			}
		}
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(s)
		y += dy
	}

	if k := len(enc.out.Delay); k > 0 {
		enc.out.Delay[k-1] = frameDelay
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, lastDelay)
	return nil
}

// Len is the number of frames encoded so far.
func (enc *Encoder) Len() int { return len(enc.out.Image) }

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if enc.Writer == nil {
		return errors.New("gif encoder has no writer")
	}
	if len(enc.out.Image) == 0 {
		return errors.New("no frames to encode")
	}
	return errors.Wrap(gif.EncodeAll(enc.Writer, enc.out), "unable to encode gif")
}

// EncodeAll renders frames into w as one animation, at most h by w pixels.
func EncodeAll(out io.Writer, frames []search.Frame, h, w int) error {
	enc := NewEncoder(h, w)
	enc.Writer = out
	for _, f := range frames {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	return enc.Flush()
}
