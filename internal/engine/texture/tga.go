// Package texture decodes biome image formats the standard decoders miss.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// MaxTGASide is the largest width or height DecodeTGA accepts.
const MaxTGASide = 4096

// rlePacketPixels is the most pixels one RLE packet can encode.
const rlePacketPixels = 128

var errTGATruncated = errors.New("TGA data truncated")

// tgaReader walks TGA pixel data and writes decoded pixels in file order.
type tgaReader struct {
	img         *image.RGBA
	data        []byte
	pos         int
	bpp         int
	width       int
	height      int
	written     int
	topToBottom bool
}

func (r *tgaReader) done() bool {
	return r.written >= r.width*r.height
}

// pixel reads one BGR(A) pixel from the stream.
func (r *tgaReader) pixel() (color.RGBA, error) {
	if r.pos+r.bpp > len(r.data) {
		return color.RGBA{}, errTGATruncated
	}
	p := r.data[r.pos : r.pos+r.bpp]
	r.pos += r.bpp

	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c, nil
}

// put stores c at the next position, honoring the descriptor origin bit.
func (r *tgaReader) put(c color.RGBA) {
	x := r.written % r.width
	y := r.written / r.width
	if !r.topToBottom {
		y = r.height - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.written++
}

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color TGA files
// with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty TGA image %dx%d", width, height)
	}
	if width > MaxTGASide || height > MaxTGASide {
		return nil, fmt.Errorf("TGA image %dx%d exceeds %d pixels per side", width, height, MaxTGASide)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	// Check the payload can cover the image before allocating it.
	pixels := width * height
	need := pixels * (bpp / 8)
	if imageType == TGATypeRLE {
		need = (pixels + rlePacketPixels - 1) / rlePacketPixels * (1 + bpp/8)
	}
	if len(data)-offset < need {
		return nil, errTGATruncated
	}

	r := &tgaReader{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		data:        data[offset:],
		bpp:         bpp / 8,
		width:       width,
		height:      height,
		topToBottom: descriptor&0x20 != 0,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = decodeRaw(r)
	} else {
		err = decodeRLE(r)
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

func decodeRaw(r *tgaReader) error {
	for !r.done() {
		c, err := r.pixel()
		if err != nil {
			return err
		}
		r.put(c)
	}
	return nil
}

func decodeRLE(r *tgaReader) error {
	for !r.done() {
		if r.pos >= len(r.data) {
			return errTGATruncated
		}
		packet := r.data[r.pos]
		r.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run-length packet: one pixel repeated.
			c, err := r.pixel()
			if err != nil {
				return err
			}
			for i := 0; i < count && !r.done(); i++ {
				r.put(c)
			}
			continue
		}

		for i := 0; i < count && !r.done(); i++ {
			c, err := r.pixel()
			if err != nil {
				return err
			}
			r.put(c)
		}
	}
	return nil
}

// ToRGBA converts any image to *image.RGBA anchored at the origin.
// RGBA images already anchored at the origin are returned unchanged.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
