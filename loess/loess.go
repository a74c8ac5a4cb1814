package loess

import "math"

// Smoother performs local weighted polynomial regression over a sliding
// window of an equally-spaced series. Positions are the sample indices,
// so neighbor distances are index distances.
type Smoother struct {
	Width   int       // window size: number of nearest neighbors used per fit
	Degree  int       // 0 for a locally constant fit, 1 for a locally linear fit
	Jump    int       // stride between exactly fitted positions; gaps are interpolated
	Weights []float64 // optional multiplicative weights, one per observation
}

// Smooth fits every position of y and writes the smoothed values into dst.
// dst must hold at least len(y) values. scratch is a working buffer of at
// least len(y) values; pass nil to allocate one internally.
//
// Windows near the boundaries shift inward rather than shrink, so every fit
// uses exactly Width points whenever the series is long enough. With Jump > 1
// only every Jump-th position is fitted exactly and the positions between two
// fitted points are filled by linear interpolation.
func (s Smoother) Smooth(y, dst, scratch []float64) {
	n := len(y)
	if n == 0 {
		return
	}
	if n < 2 {
		dst[0] = y[0]
		return
	}
	if scratch == nil {
		scratch = make([]float64, n)
	}

	jump := s.Jump
	if jump > n-1 {
		jump = n - 1
	}
	if jump < 1 {
		jump = 1
	}

	var left, right int
	switch {
	case s.Width >= n:
		left, right = 0, n-1
		for i := 0; i < n; i += jump {
			dst[i] = s.fit(y, float64(i), left, right, scratch)
		}
	case jump == 1:
		half := (s.Width + 1) / 2
		left, right = 0, s.Width-1
		for i := 0; i < n; i++ {
			if i+1 > half && right != n-1 {
				left++
				right++
			}
			dst[i] = s.fit(y, float64(i), left, right, scratch)
		}
	default:
		half := (s.Width + 1) / 2
		for i := 0; i < n; i += jump {
			switch {
			case i+1 < half:
				left, right = 0, s.Width-1
			case i >= n-half:
				left, right = n-s.Width, n-1
			default:
				left = i + 1 - half
				right = left + s.Width - 1
			}
			dst[i] = s.fit(y, float64(i), left, right, scratch)
		}
	}

	if jump == 1 {
		return
	}

	// Interpolate between the exactly fitted positions.
	for i := 0; i+jump < n; i += jump {
		delta := (dst[i+jump] - dst[i]) / float64(jump)
		for j := i + 1; j < i+jump; j++ {
			dst[j] = dst[i] + delta*float64(j-i)
		}
	}

	// The last position may fall between strides; restore the exact value
	// there and interpolate up to it.
	last := ((n - 1) / jump) * jump
	if last != n-1 {
		dst[n-1] = s.fit(y, float64(n-1), left, right, scratch)
		if last != n-2 {
			delta := (dst[n-1] - dst[last]) / float64(n-1-last)
			for j := last + 1; j < n-1; j++ {
				dst[j] = dst[last] + delta*float64(j-last)
			}
		}
	}
}

// fit estimates the value at xs and falls back to the raw observation when
// the window carries no weight.
func (s Smoother) fit(y []float64, xs float64, left, right int, scratch []float64) float64 {
	v, ok := s.Estimate(y, xs, left, right, scratch)
	if !ok {
		return y[int(xs)]
	}
	return v
}

// Estimate computes the local regression estimate at position xs using the
// observations y[left..right] inclusive. xs may lie outside [0, len(y)-1],
// which extrapolates the local fit beyond the series boundary. scratch must
// hold at least right+1 values. The second return value is false when every
// point in the window has zero weight, in which case no estimate exists.
func (s Smoother) Estimate(y []float64, xs float64, left, right int, scratch []float64) (float64, bool) {
	n := len(y)
	spread := float64(n - 1)
	h := math.Max(xs-float64(left), float64(right)-xs)
	if s.Width > n {
		h += float64((s.Width - n) / 2)
	}
	h9 := 0.999 * h
	h1 := 0.001 * h

	// Tricube weights, cut off outside 0.999*h and saturated inside 0.001*h.
	total := 0.0
	for j := left; j <= right; j++ {
		scratch[j] = 0
		r := math.Abs(float64(j) - xs)
		if r <= h9 {
			if r <= h1 {
				scratch[j] = 1
			} else {
				scratch[j] = cube(1 - cube(r/h))
			}
			if s.Weights != nil {
				scratch[j] *= s.Weights[j]
			}
			total += scratch[j]
		}
	}
	if total <= 0 {
		return 0, false
	}
	for j := left; j <= right; j++ {
		scratch[j] /= total
	}

	if h > 0 && s.Degree > 0 {
		// Weighted linear fit evaluated at xs. When the x values are too
		// tightly clustered to support a slope, keep the weighted mean.
		center := 0.0
		for j := left; j <= right; j++ {
			center += scratch[j] * float64(j)
		}
		slope := xs - center
		sxx := 0.0
		for j := left; j <= right; j++ {
			d := float64(j) - center
			sxx += scratch[j] * d * d
		}
		if math.Sqrt(sxx) > 0.001*spread {
			slope /= sxx
			for j := left; j <= right; j++ {
				scratch[j] *= slope*(float64(j)-center) + 1
			}
		}
	}

	est := 0.0
	for j := left; j <= right; j++ {
		est += scratch[j] * y[j]
	}
	return est, true
}

func cube(x float64) float64 {
	return x * x * x
}

// MovingAverage computes the simple moving average of x with the given window
// and writes the len(x)-width+1 averages into dst, returning the filled
// prefix. The first average covers x[0:width].
func MovingAverage(x []float64, width int, dst []float64) []float64 {
	if width <= 0 || width > len(x) {
		return dst[:0]
	}
	count := len(x) - width + 1
	sum := 0.0
	for i := 0; i < width; i++ {
		sum += x[i]
	}
	dst[0] = sum / float64(width)
	for i := 1; i < count; i++ {
		sum += x[i+width-1] - x[i-1]
		dst[i] = sum / float64(width)
	}
	return dst[:count]
}
