package recommend

import "math"

// Vector is an embedding in the same space as the stored occupation and skill
// vectors. Vectors are produced at ingestion time; this package only combines
// and compares them.
type Vector []float32

// Mean returns the component-wise mean of the given vectors. The mean, rather
// than the sum, keeps profile magnitude comparable across differently sized
// skill sets. Returns nil when the input is empty or dimensions disagree.
func Mean(vecs []Vector) Vector {
	if len(vecs) == 0 {
		return nil
	}
	dim := len(vecs[0])
	if dim == 0 {
		return nil
	}
	acc := make([]float64, dim)
	for _, v := range vecs {
		if len(v) != dim {
			return nil
		}
		for i, x := range v {
			acc[i] += float64(x)
		}
	}
	out := make(Vector, dim)
	n := float64(len(vecs))
	for i, x := range acc {
		out[i] = float32(x / n)
	}
	return out
}

// Norm returns the Euclidean length of v.
func Norm(v Vector) float64 {
	var s float64
	for _, x := range v {
		s += float64(x) * float64(x)
	}
	return math.Sqrt(s)
}

// Normalize returns v scaled to unit length. A zero vector is returned as is.
func Normalize(v Vector) Vector {
	n := Norm(v)
	if n == 0 {
		return v
	}
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / n)
	}
	return out
}

// Dot returns the inner product of a and b. Dimensions must match.
func Dot(a, b Vector) float64 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}

// Cosine returns the cosine similarity of a and b, or 0 when either vector
// has zero length or the dimensions differ.
func Cosine(a, b Vector) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}
