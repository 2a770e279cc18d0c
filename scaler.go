package charts

type ScalerConstraint interface {
	~float64 | ~int
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Values(int) []T
}

type numberDomain struct {
	fst float64
	lst float64
}

// NumberDomain maps values from f to t. Giving the maximum first flips the
// axis so that larger values end up closer to the top of the plot.
func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	if c <= 0 {
		return []float64{n.fst, n.lst}
	}
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain[float64]
}

func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.Min() + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

type bandScaler struct {
	Range
	count int
}

// BandScaler splits a range in count equal bands, one per category.
func BandScaler(count int, rg Range) Scaler[int] {
	return bandScaler{
		Range: rg,
		count: count,
	}
}

func (s bandScaler) Scale(i int) float64 {
	return s.Min() + float64(i)*s.Space()
}

func (s bandScaler) Space() float64 {
	if s.count <= 0 {
		return 0
	}
	return s.Len() / float64(s.count)
}

type pointScaler struct {
	Range
	count int
}

// PointScaler places count points evenly from the start to the end of a
// range. A single point sits in the middle of the range.
func PointScaler(count int, rg Range) Scaler[int] {
	return pointScaler{
		Range: rg,
		count: count,
	}
}

func (s pointScaler) Scale(i int) float64 {
	if s.count == 1 {
		return s.Min() + s.Len()/2
	}
	return s.Min() + float64(i)*s.Space()
}

func (s pointScaler) Space() float64 {
	if s.count <= 1 {
		return 0
	}
	return s.Len() / float64(s.count-1)
}
