package colour

import (
	"cmp"
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"slices"
)

// Cluster is one k-means centroid and the share of sampled pixels it holds.
type Cluster struct {
	Colour Colour
	Weight float64
}

// KMeansExtractor finds the dominant colours of an image with k-means
// clustering in Lab space.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	rng           *rand.Rand
}

// NewKMeansExtractor creates a KMeansExtractor. A nil rng gets a random seed.
func NewKMeansExtractor(rng *rand.Rand) *KMeansExtractor {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) // #nosec G404 -- clustering, not cryptography
	}
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   0.5,
		maxSamples:    2000,
		rng:           rng,
	}
}

// Extract returns up to k clusters ordered by descending weight.
func (e *KMeansExtractor) Extract(img image.Image, k int) ([]Cluster, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if k < 1 || k > 256 {
		return nil, fmt.Errorf("%w: cluster count must be 1-256, got %d", ErrInvalidArgument, k)
	}

	points := e.samplePixels(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}
	k = min(k, len(points))

	centroids, weights := e.kmeans(points, k)

	clusters := make([]Cluster, 0, k)
	for i, c := range centroids {
		if weights[i] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{Colour: FromLCH(LabToLCH(c)), Weight: weights[i]})
	}
	slices.SortStableFunc(clusters, func(a, b Cluster) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	return clusters, nil
}

// Dominant returns the heaviest cluster's colour.
func (e *KMeansExtractor) Dominant(img image.Image, k int) (Colour, error) {
	clusters, err := e.Extract(img, k)
	if err != nil {
		return Colour{}, err
	}
	return clusters[0].Colour, nil
}

func labDistance(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// samplePixels grid-samples at most maxSamples opaque pixels.
func (e *KMeansExtractor) samplePixels(img image.Image) []Lab {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	step := max(int(math.Sqrt(float64(total)/float64(e.maxSamples))), 1)

	points := make([]Lab, 0, min(total, e.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			// Un-premultiply before dropping to 8 bits.
			rgb := RGB{
				R: int(r * 0xffff / a >> 8),
				G: int(g * 0xffff / a >> 8),
				B: int(b * 0xffff / a >> 8),
			}
			points = append(points, RGBToLab(rgb))
			if len(points) >= e.maxSamples {
				return points
			}
		}
	}
	return points
}

func (e *KMeansExtractor) kmeans(points []Lab, k int) ([]Lab, []float64) {
	centroids := e.initialiseCentroids(points, k)
	assignments := make([]int, len(points))

	for range e.maxIterations {
		for i, p := range points {
			assignments[i] = nearestCentroid(p, centroids)
		}

		next := e.recalculateCentroids(points, assignments, k)
		movement := 0.0
		for i := range centroids {
			movement += labDistance(centroids[i], next[i])
		}
		centroids = next
		if movement/float64(k) < e.convergence {
			break
		}
	}

	for i, p := range points {
		assignments[i] = nearestCentroid(p, centroids)
	}
	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(points))
	}
	return centroids, weights
}

// initialiseCentroids uses k-means++ seeding.
func (e *KMeansExtractor) initialiseCentroids(points []Lab, k int) []Lab {
	centroids := make([]Lab, 0, k)
	centroids = append(centroids, points[e.rng.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := labDistance(p, centroids[nearestCentroid(p, centroids)])
			distances[i] = d * d
			total += distances[i]
		}

		// Every point coincides with a centroid.
		if total == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, Lab{L: last.L + 0.1, A: last.A, B: last.B})
			continue
		}

		target := e.rng.Float64() * total
		cumulative := 0.0
		chosen := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}

func nearestCentroid(p Lab, centroids []Lab) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, c := range centroids {
		if d := labDistance(p, c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (e *KMeansExtractor) recalculateCentroids(points []Lab, assignments []int, k int) []Lab {
	sums := make([]Lab, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].L += p.L
		sums[c].A += p.A
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]Lab, k)
	for i := range k {
		if counts[i] == 0 {
			centroids[i] = points[e.rng.IntN(len(points))]
			continue
		}
		n := float64(counts[i])
		centroids[i] = Lab{L: sums[i].L / n, A: sums[i].A / n, B: sums[i].B / n}
	}
	return centroids
}
