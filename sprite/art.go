package sprite

import "image/color"

var (
	fur       = color.RGBA{0xff, 0x6b, 0x00, 0xff}
	furDark   = color.RGBA{0xcc, 0x55, 0x00, 0xff}
	furLight  = color.RGBA{0xff, 0x96, 0x40, 0xff}
	belly     = color.RGBA{0xff, 0xb3, 0x66, 0xff}
	jeans     = color.RGBA{0x22, 0x55, 0xbb, 0xff}
	jeansDark = color.RGBA{0x1a, 0x44, 0x90, 0xff}
	shoes     = color.RGBA{0xdd, 0x22, 0x22, 0xff}
	shoeSole  = color.RGBA{0x88, 0x11, 0x11, 0xff}
	eyeWhite  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	eyeBlack  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	eyebrow   = color.RGBA{0x44, 0x22, 0x00, 0xff}
	nose      = color.RGBA{0xdd, 0x44, 0x00, 0xff}
	mouth     = color.RGBA{0xcc, 0x33, 0x00, 0xff}
)

// legs draws jeans and shoes, spread apart by one unit on frame 1.
func legs(spread int) []rect {
	return []rect{
		{9 - spread, 19, 5, 5, jeans},
		{15 + spread, 19, 5, 5, jeans},
		{9, 19, 11, 1, jeansDark},
		{8 - spread, 24, 6, 3, shoes},
		{15 + spread, 24, 6, 3, shoes},
		{8 - spread, 27, 6, 1, shoeSole},
		{15 + spread, 27, 6, 1, shoeSole},
	}
}

func arms() []rect {
	return []rect{
		{5, 14, 3, 5, fur},
		{20, 14, 3, 5, fur},
		{4, 18, 4, 2, furLight},
		{20, 18, 4, 2, furLight},
	}
}

func front(frame int) []rect {
	parts := []rect{
		// ears and head
		{3, 3, 2, 3, fur},
		{23, 3, 2, 3, fur},
		{6, 0, 16, 2, fur},
		{5, 2, 18, 2, fur},
		{4, 4, 20, 4, fur},
		{5, 8, 18, 3, furLight},
		{6, 11, 16, 2, furLight},
		// spikes
		{9, 0, 3, 1, furDark},
		{14, 0, 3, 1, furDark},
		{11, 0, 2, 1, fur},
		// eyes
		{8, 5, 4, 4, eyeWhite},
		{16, 5, 4, 4, eyeWhite},
		{10, 6, 2, 2, eyeBlack},
		{17, 6, 2, 2, eyeBlack},
		{7, 4, 5, 1, eyebrow},
		{16, 4, 5, 1, eyebrow},
		// nose and grin
		{12, 8, 4, 2, nose},
		{9, 10, 10, 2, eyeWhite},
		{9, 10, 1, 2, mouth},
		{18, 10, 1, 2, mouth},
		{9, 11, 10, 1, mouth},
		// torso
		{8, 13, 12, 6, fur},
		{10, 14, 8, 4, belly},
	}
	parts = append(parts, arms()...)
	return append(parts, legs(frame)...)
}

func back(frame int) []rect {
	parts := []rect{
		{3, 3, 2, 3, fur},
		{23, 3, 2, 3, fur},
		{6, 0, 16, 2, furDark},
		{5, 2, 18, 2, fur},
		{4, 4, 20, 4, fur},
		{5, 8, 18, 3, fur},
		{6, 11, 16, 2, furDark},
		{10, 0, 3, 1, furLight},
		{14, 0, 3, 1, furLight},
		{8, 13, 12, 6, fur},
	}
	parts = append(parts, arms()...)
	return append(parts, legs(frame)...)
}

// side draws the left profile; right mirrors it horizontally.
func side(frame int, mirror bool) []rect {
	lo := frame
	parts := []rect{
		{6, 0, 14, 2, fur},
		{5, 2, 16, 2, fur},
		{4, 4, 18, 4, fur},
		{5, 8, 16, 3, furLight},
		{6, 11, 14, 2, furLight},
		{3, 3, 2, 3, fur},
		{9, 0, 4, 1, furDark},
		{7, 5, 4, 4, eyeWhite},
		{8, 6, 2, 2, eyeBlack},
		{6, 4, 5, 1, eyebrow},
		{18, 7, 4, 3, furLight},
		{19, 8, 3, 2, nose},
		{14, 10, 6, 2, eyeWhite},
		{14, 11, 6, 1, mouth},
		{9, 13, 10, 6, fur},
		{11, 14, 6, 4, belly},
		{7, 14, 3, 5, fur},
		{6, 18, 4, 2, furLight},
		{10, 19, 4, 5 - lo, jeans},
		{14, 19, 4, 5, jeans},
		{10, 19, 8, 1, jeansDark},
		{9 - lo, 24, 6, 3, shoes},
		{13 + lo, 24 - lo, 6, 3 + lo, shoes},
		{9 - lo, 27, 6, 1, shoeSole},
		{13 + lo, 27, 6, 1, shoeSole},
	}
	if mirror {
		for i := range parts {
			parts[i].x = Size - parts[i].x - parts[i].w
		}
	}
	return parts
}
