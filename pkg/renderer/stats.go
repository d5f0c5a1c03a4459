package renderer

import "fmt"

// RenderStats contains statistics about a render pass
type RenderStats struct {
	TotalPixels    int // Total number of pixels rendered
	HitPixels      int // Pixels whose primary ray hit an object
	ShadowedPixels int // Hit pixels that failed the shadow test
	DegenerateRays int // Pixels whose primary ray could not be built
}

// Merge adds the counts of another pass or tile
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.HitPixels += other.HitPixels
	rs.ShadowedPixels += other.ShadowedPixels
	rs.DegenerateRays += other.DegenerateRays
}

// Coverage returns the fraction of pixels that hit an object
func (rs RenderStats) Coverage() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.HitPixels) / float64(rs.TotalPixels)
}

func (rs RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %.1f%% hit, %d shadowed, %d degenerate",
		rs.TotalPixels, rs.Coverage()*100, rs.ShadowedPixels, rs.DegenerateRays)
}

// CalculateAverageLuminance calculates the average luminance of a frame in [0,1]
func CalculateAverageLuminance(fb *FrameBuffer) float64 {
	pixels := fb.Width * fb.Height
	if pixels == 0 {
		return 0
	}

	var totalLuminance float64
	for i := 0; i < pixels; i++ {
		r := float64(fb.Pix[i*3]) / 255.0
		g := float64(fb.Pix[i*3+1]) / 255.0
		b := float64(fb.Pix[i*3+2]) / 255.0

		// Rec. 709 luminance
		totalLuminance += 0.2126*r + 0.7152*g + 0.0722*b
	}

	return totalLuminance / float64(pixels)
}
