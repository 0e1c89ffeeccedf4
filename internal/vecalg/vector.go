package vecalg

import "math"

// Vector is a fixed-dimension element of the algebra the integrators
// operate over, generalized to complex components so the same type
// serves real and complex integration.
type Vector []complex128

// Zero returns the additive identity of dimension n.
func Zero(n int) Vector {
	return make(Vector, n)
}

// Real wraps a single real scalar as a 1-dimensional vector.
func Real(x float64) Vector {
	return Vector{complex(x, 0)}
}

// Cplx wraps a single complex scalar as a 1-dimensional vector.
func Cplx(c complex128) Vector {
	return Vector{c}
}

// FromReals builds a vector from real components.
func FromReals(xs ...float64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = complex(x, 0)
	}
	return v
}

// FromComplex builds a vector from complex components.
func FromComplex(cs ...complex128) Vector {
	v := make(Vector, len(cs))
	copy(v, cs)
	return v
}

// Const broadcasts a real scalar s across n components.
func Const(n int, s float64) Vector {
	v := make(Vector, n)
	c := complex(s, 0)
	for i := range v {
		v[i] = c
	}
	return v
}

// CoerceFromReal is an alias of Real.
func CoerceFromReal(x float64) Vector {
	return Real(x)
}

// Dim reports the number of components.
func (v Vector) Dim() int { return len(v) }

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// Add is element-wise addition. Shorter operands are treated as
// zero-padded.
func (v Vector) Add(b Vector) Vector {
	return v.ZipWith(func(x, y complex128) complex128 { return x + y }, b)
}

// Sub is element-wise subtraction.
func (v Vector) Sub(b Vector) Vector {
	return v.ZipWith(func(x, y complex128) complex128 { return x - y }, b)
}

// Scale multiplies every component by a real scalar.
func (v Vector) Scale(s float64) Vector {
	return v.Map(func(x complex128) complex128 { return x * complex(s, 0) })
}

// ScaleC multiplies every component by a complex scalar.
func (v Vector) ScaleC(s complex128) Vector {
	return v.Map(func(x complex128) complex128 { return x * s })
}

// Perturb computes v + h*dv in one fused pass.
func (v Vector) Perturb(dv Vector, h float64) Vector {
	hc := complex(h, 0)
	n := len(v)
	if len(dv) > n {
		n = len(dv)
	}
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		var a, da complex128
		if i < len(v) {
			a = v[i]
		}
		if i < len(dv) {
			da = dv[i]
		}
		out[i] = a + hc*da
	}
	return out
}

// Hadamard is component-wise multiplication.
func (v Vector) Hadamard(b Vector) Vector {
	return v.ZipWith(func(x, y complex128) complex128 { return x * y }, b)
}

// ZipWith combines two vectors component-wise with op.
func (v Vector) ZipWith(op func(a, b complex128) complex128, b Vector) Vector {
	n := len(v)
	if len(b) > n {
		n = len(b)
	}
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		var x, y complex128
		if i < len(v) {
			x = v[i]
		}
		if i < len(b) {
			y = b[i]
		}
		out[i] = op(x, y)
	}
	return out
}

// Map applies op to every component.
func (v Vector) Map(op func(complex128) complex128) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = op(x)
	}
	return out
}

// LinearCombination computes sum(weights[i] * vs[i]).
func LinearCombination(weights []float64, vs []Vector) Vector {
	if len(vs) == 0 {
		return Vector{}
	}
	dim := 0
	for _, v := range vs {
		if v.Dim() > dim {
			dim = v.Dim()
		}
	}
	out := make(Vector, dim)
	for i, w := range weights {
		if i >= len(vs) {
			break
		}
		wc := complex(w, 0)
		for j, x := range vs[i] {
			out[j] += wc * x
		}
	}
	return out
}

// AbsScalar is the real-scalar magnitude.
func AbsScalar(s float64) float64 { return math.Abs(s) }

// AbsComponent is the modulus of a single complex component.
func AbsComponent(c complex128) float64 {
	re, im := real(c), imag(c)
	return math.Hypot(re, im)
}

// Norm1 is the sum of component magnitudes.
func (v Vector) Norm1() float64 {
	sum := 0.0
	for _, x := range v {
		sum += AbsComponent(x)
	}
	return sum
}

// Mean2 is the root-mean-square of component magnitudes.
func (v Vector) Mean2() float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		m := AbsComponent(x)
		sum += m * m
	}
	return math.Sqrt(sum / float64(len(v)))
}

// IsFinite reports whether every component is free of NaN/Inf.
func (v Vector) IsFinite() bool {
	for _, x := range v {
		re, im := real(x), imag(x)
		if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
			return false
		}
	}
	return true
}

// AnyNaN reports whether any component carries a NaN part. Distinct
// from IsFinite's Inf check because NaN-propagation is triggered by
// NaN specifically, not by Inf.
func (v Vector) AnyNaN() bool {
	for _, x := range v {
		if math.IsNaN(real(x)) || math.IsNaN(imag(x)) {
			return true
		}
	}
	return false
}

// NaNVector returns a dimension-n vector whose every component is NaN,
// used as the sentinel produced once NaN-propagation triggers.
func NaNVector(n int) Vector {
	v := make(Vector, n)
	nan := complex(math.NaN(), math.NaN())
	for i := range v {
		v[i] = nan
	}
	return v
}

// Re returns the real parts as a plain []float64, for host code that
// only ever deals in real state.
func (v Vector) Re() []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = real(x)
	}
	return out
}

// At0 returns the real part of the first component, a convenience for
// scalar-valued streams.
func (v Vector) At0() float64 {
	if len(v) == 0 {
		return 0
	}
	return real(v[0])
}
