package render

// FillRGBA converts packed 0xRRGGBB pixels into opaque RGBA bytes in dst.
// dst must hold at least 4*len(pix) bytes.
func FillRGBA(dst []byte, pix []uint32) {
	for i, c := range pix {
		base := i * 4
		dst[base+0] = uint8(c >> 16)
		dst[base+1] = uint8(c >> 8)
		dst[base+2] = uint8(c)
		dst[base+3] = 0xff
	}
}
