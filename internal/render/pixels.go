package render

import "image/color"

// rgba8 is a color reduced to 8-bit channels.
type rgba8 [4]byte

func toRGBA8(c color.Color) rgba8 {
	r, g, b, a := c.RGBA()
	return rgba8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBlockRGBA expands binary cell data (0/1) of a w*h grid into buf, where
// each cell becomes a px*px block of on or off pixels. buf is row-major with
// a stride of w*px*4 bytes and must hold w*h*px*px*4 bytes.
func fillBlockRGBA(buf []byte, cells []uint8, w, h, px int, on, off rgba8) {
	stride := w * px * 4
	for y := 0; y < h; y++ {
		rowStart := y * px * stride
		row := buf[rowStart : rowStart+stride]
		cellRow := cells[y*w : (y+1)*w]
		for x, c := range cellRow {
			col := off
			if c != 0 {
				col = on
			}
			base := x * px * 4
			for i := 0; i < px; i++ {
				copy(row[base+i*4:base+i*4+4], col[:])
			}
		}
		// The remaining px-1 scanlines of the block row repeat the first.
		for i := 1; i < px; i++ {
			copy(buf[rowStart+i*stride:rowStart+(i+1)*stride], row)
		}
	}
}
