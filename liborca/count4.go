package liborca

// freq4 holds the raw frequencies of one node for graphlets on 4 nodes.
// f_a_b mixes the counts of orbits a and b (and whatever orbits lie between in the solve order).
type freq4 struct {
	f_14    int64
	f_13_14 int64
	f_12_14 int64
	f_11_13 int64
	f_10_13 int64
	f_9_12  int64
	f_8_12  int64
	f_7_11  int64
	f_6_9   int64
	f_5_8   int64
	f_4_8   int64
}

// countCliques4 returns, for every node, the number of 4-cliques containing it.
//
// Each clique {x,y,z,zz} is found exactly once, from its largest node x with y < x and z < zz < y.
func countCliques4(X *Graph) []int64 {
	C4 := make([]int64, X.NumNodes())
	neigh := make([]int, 0, X.MaxDegree())

	for x := 0; x < X.NumNodes(); x++ {
		for _, y := range X.Adj(x) {
			if y >= x {
				break
			}
			neigh = neigh[:0]
			for _, z := range X.Adj(y) {
				if z >= y {
					break
				}
				if X.Adjacent(x, z) {
					neigh = append(neigh, z)
				}
			}
			for i, z := range neigh {
				for _, zz := range neigh[i+1:] {
					if X.Adjacent(z, zz) {
						C4[x]++
						C4[y]++
						C4[z]++
						C4[zz]++
					}
				}
			}
		}
	}
	return C4
}

// counter4 is the per-worker state for the 4-node enumeration.  Shared fields are read-only.
type counter4 struct {
	X      *Graph
	tri    []int64
	C4     []int64
	common touchCounter // common[z]: paths x-y-z with z not adjacent to x
}

func newCounter4(X *Graph, tri, C4 []int64) *counter4 {
	return &counter4{
		X:      X,
		tri:    tri,
		C4:     C4,
		common: newTouchCounter(X.NumNodes()),
	}
}

// countNode fills orbit[0..14] for node x.
func (c *counter4) countNode(x int, orbit []int64) error {
	X, tri := c.X, c.tri
	deg := X.deg

	c.common.reset()
	f := freq4{
		f_14: c.C4[x],
	}

	orbit[0] = int64(deg[x])

	// x is the middle node
	inc := X.Inc(x)
	for nx1, xy := range inc {
		y, ey := xy.Node, xy.Edge
		for _, yz := range X.Inc(y) {
			z, ez := yz.Node, yz.Edge
			if X.Adjacent(x, z) { // triangle
				if z < y {
					f.f_12_14 += tri[ez] - 1
					f.f_10_13 += (int64(deg[y]) - 1 - tri[ez]) + (int64(deg[z]) - 1 - tri[ez])
				}
			} else {
				c.common.inc(z)
			}
		}
		for _, xz := range inc[nx1+1:] {
			z, ez := xz.Node, xz.Edge
			if X.Adjacent(y, z) { // triangle
				orbit[3]++
				f.f_13_14 += (tri[ey] - 1) + (tri[ez] - 1)
				f.f_11_13 += (int64(deg[x]) - 1 - tri[ey]) + (int64(deg[x]) - 1 - tri[ez])
			} else { // path
				orbit[2]++
				f.f_7_11 += (int64(deg[x]) - 1 - tri[ey] - 1) + (int64(deg[x]) - 1 - tri[ez] - 1)
				f.f_5_8 += (int64(deg[y]) - 1 - tri[ey]) + (int64(deg[z]) - 1 - tri[ez])
			}
		}
	}

	// x is a side node
	for _, xy := range inc {
		y, ey := xy.Node, xy.Edge
		for _, yz := range X.Inc(y) {
			z, ez := yz.Node, yz.Edge
			if x == z || X.Adjacent(x, z) {
				continue
			}
			orbit[1]++ // path
			f.f_6_9 += int64(deg[y]) - 1 - tri[ey] - 1
			f.f_9_12 += tri[ez]
			f.f_4_8 += int64(deg[z]) - 1 - tri[ez]
			f.f_8_12 += c.common.get(z) - 1
		}
	}

	s := solver{node: x}
	s.solve4(&f, orbit)
	return s.err
}
