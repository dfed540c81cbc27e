package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalized 1D Gaussian kernel for the given
// standard deviation. The size is 2*ceil(3*sigma)+1, covering 99.7% of the
// distribution. For sigma <= 0 it returns the identity kernel [1].
func GaussianKernel(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1
	kernel := make([]float64, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range size {
		x := float64(i - halfSize)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// kernelCache memoizes kernels by sigma quantized to 0.01.
type kernelCache struct {
	mu    sync.RWMutex
	cache map[int][]float64
}

var defaultKernelCache = &kernelCache{cache: make(map[int][]float64)}

func (c *kernelCache) get(sigma float64) []float64 {
	key := int(sigma * 100)

	c.mu.RLock()
	k, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(sigma)
	c.mu.Lock()
	c.cache[key] = k
	c.mu.Unlock()
	return k
}

// CachedGaussianKernel returns a shared kernel for sigma. Callers must not
// modify it.
func CachedGaussianKernel(sigma float64) []float64 {
	return defaultKernelCache.get(sigma)
}
