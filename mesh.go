package nurbs

// Tri is a triangle given by three indices into a mesh's vertex arrays.
type Tri [3]int

// UV is a surface parameter pair.
type UV[T Scalar] [2]T

// Mesh is a triangulated approximation of a surface. Points, Normals and
// UVs are parallel arrays indexed by the vertex indices in Faces.
type Mesh[T Scalar] struct {
	Faces   []Tri
	Points  []Point3[T]
	Normals []Point3[T]
	UVs     []UV[T]
}

// Area returns the summed area of the mesh's triangles.
func (m *Mesh[T]) Area() T {
	var sum T
	for _, f := range m.Faces {
		a, b, c := m.Points[f[0]], m.Points[f[1]], m.Points[f[2]]
		sum += b.Sub(a).Cross(c.Sub(a)).Length() / 2
	}
	return sum
}

// Tessellate evaluates the surface on a regular grid of divsU by divsV
// cells over its domain and splits every cell into two triangles. Normals
// have unit length, or are zero where the surface is degenerate.
func (s *Surface[T]) Tessellate(divsU, divsV int) *Mesh[T] {
	if divsU < 1 {
		divsU = 1
	}
	if divsV < 1 {
		divsV = 1
	}

	umin, umax := s.DomainU()
	vmin, vmax := s.DomainV()
	spanU := (umax - umin) / T(divsU)
	spanV := (vmax - vmin) / T(divsV)

	numPoints := (divsU + 1) * (divsV + 1)
	m := &Mesh[T]{
		Faces:   make([]Tri, 0, 2*divsU*divsV),
		Points:  make([]Point3[T], 0, numPoints),
		Normals: make([]Point3[T], 0, numPoints),
		UVs:     make([]UV[T], 0, numPoints),
	}

	for i := 0; i <= divsU; i++ {
		u := umin + T(i)*spanU
		if i == divsU {
			u = umax
		}
		for j := 0; j <= divsV; j++ {
			v := vmin + T(j)*spanV
			if j == divsV {
				v = vmax
			}

			pt, su, sv := s.partials(u, v)
			var n Point3[T]
			if nn, err := normal(su, sv, u, v); err == nil {
				n = nn.Scale(1 / nn.Length())
			}

			m.Points = append(m.Points, pt)
			m.Normals = append(m.Normals, n)
			m.UVs = append(m.UVs, UV[T]{u, v})
		}
	}

	for i := 0; i < divsU; i++ {
		for j := 0; j < divsV; j++ {
			ai := i*(divsV+1) + j
			bi := (i+1)*(divsV+1) + j
			ci := bi + 1
			di := ai + 1

			m.Faces = append(m.Faces, Tri{ai, bi, ci}, Tri{ai, ci, di})
		}
	}

	return m
}

// ApproximateArea returns the area of Tessellate(uSub, vSub). It converges
// to the surface area as both subdivision counts grow.
func (s *Surface[T]) ApproximateArea(uSub, vSub int) T {
	return s.Tessellate(uSub, vSub).Area()
}
