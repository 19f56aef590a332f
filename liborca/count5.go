package liborca

// countCliques5 returns, for every node, the number of 5-cliques containing it.
//
// The 4-clique search of countCliques4 gains a third level: for each triangle-closing z, the later
// candidates zz adjacent to z are collected and every adjacent pair among them completes a 5-clique.
func countCliques5(X *Graph) []int64 {
	C5 := make([]int64, X.NumNodes())
	neigh := make([]int, 0, X.MaxDegree())
	neigh2 := make([]int, 0, X.MaxDegree())

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
				neigh2 = neigh2[:0]
				for _, zz := range neigh[i+1:] {
					if X.Adjacent(z, zz) {
						neigh2 = append(neigh2, zz)
					}
				}
				for i2, zz := range neigh2 {
					for _, zzz := range neigh2[i2+1:] {
						if X.Adjacent(zz, zzz) {
							C5[x]++
							C5[y]++
							C5[z]++
							C5[zz]++
							C5[zzz]++
						}
					}
				}
			}
		}
	}
	return C5
}

// counter5 is the per-worker state for the 5-node enumeration.  Shared fields are read-only.
type counter5 struct {
	X       *Graph
	tri     []int64
	C5      []int64
	common  *CommonNeighbors
	commonX touchCounter // commonX[b]: paths x-a-b with b not adjacent to x
	commonA touchCounter // commonA[c]: paths a-b-c with c not adjacent to a (reset per neighbor a of x)
}

func newCounter5(X *Graph, tri, C5 []int64, common *CommonNeighbors) *counter5 {
	return &counter5{
		X:       X,
		tri:     tri,
		C5:      C5,
		common:  common,
		commonX: newTouchCounter(X.NumNodes()),
		commonA: newTouchCounter(X.NumNodes()),
	}
}

// countNode fills orbit[0..72] for node x.
//
// Orbits 0..14 are counted directly.  For each neighbor a of x, nine local shapes around the edge x-a
// are enumerated; each increments its own orbit and feeds the raw frequencies f[15..71] from which
// the remaining orbits are solved.
func (c *counter5) countNode(x int, orbit []int64) error {
	X, tri, cn := c.X, c.tri, c.common
	deg := X.deg
	adjacent := X.Adjacent
	d := func(v int) int64 { return int64(deg[v]) }

	c.commonX.reset()

	// smaller graphlets
	orbit[0] = d(x)
	adjX := X.Adj(x)
	for nx1, a := range adjX {
		for _, b := range adjX[nx1+1:] {
			if adjacent(a, b) {
				orbit[3]++
			} else {
				orbit[2]++
			}
		}
		for _, b := range X.Adj(a) {
			if b != x && !adjacent(x, b) {
				orbit[1]++
				c.commonX.inc(b)
			}
		}
	}

	var f [73]int64
	f[72] = c.C5[x]

	incX := X.Inc(x)
	for nx1, ia := range incX {
		a, xa := ia.Node, ia.Edge

		c.commonA.reset()
		for _, b := range X.Adj(a) {
			for _, cc := range X.Adj(b) {
				if cc == a || adjacent(a, cc) {
					continue
				}
				c.commonA.inc(cc)
			}
		}

		// x = orbit-14 (tetrahedron)
		for nx2 := nx1 + 1; nx2 < len(incX); nx2++ {
			b, xb := incX[nx2].Node, incX[nx2].Edge
			if !adjacent(a, b) {
				continue
			}
			for nx3 := nx2 + 1; nx3 < len(incX); nx3++ {
				cc, xc := incX[nx3].Node, incX[nx3].Edge
				if !adjacent(a, cc) || !adjacent(b, cc) {
					continue
				}
				orbit[14]++
				f[70] += cn.Common3(a, b, cc) - 1
				if tri[xa] > 2 && tri[xb] > 2 {
					f[71] += cn.Common3(x, a, b) - 1
				}
				if tri[xa] > 2 && tri[xc] > 2 {
					f[71] += cn.Common3(x, a, cc) - 1
				}
				if tri[xb] > 2 && tri[xc] > 2 {
					f[71] += cn.Common3(x, b, cc) - 1
				}
				f[67] += tri[xa] - 2 + tri[xb] - 2 + tri[xc] - 2
				f[66] += cn.Common2(a, b) - 2
				f[66] += cn.Common2(a, cc) - 2
				f[66] += cn.Common2(b, cc) - 2
				f[58] += d(x) - 3
				f[57] += d(a) - 3 + d(b) - 3 + d(cc) - 3
			}
		}

		// x = orbit-13 (diamond)
		for nx2 := 0; nx2 < len(incX); nx2++ {
			b, xb := incX[nx2].Node, incX[nx2].Edge
			if !adjacent(a, b) {
				continue
			}
			for nx3 := nx2 + 1; nx3 < len(incX); nx3++ {
				cc, xc := incX[nx3].Node, incX[nx3].Edge
				if !adjacent(a, cc) || adjacent(b, cc) {
					continue
				}
				orbit[13]++
				if tri[xb] > 1 && tri[xc] > 1 {
					f[69] += cn.Common3(x, b, cc) - 1
				}
				f[68] += cn.Common3(a, b, cc) - 1
				f[64] += cn.Common2(b, cc) - 2
				f[61] += tri[xb] - 1 + tri[xc] - 1
				f[60] += cn.Common2(a, b) - 1
				f[60] += cn.Common2(a, cc) - 1
				f[55] += tri[xa] - 2
				f[48] += d(b) - 2 + d(cc) - 2
				f[42] += d(x) - 3
				f[41] += d(a) - 3
			}
		}

		// x = orbit-12 (diamond)
		for nx2 := nx1 + 1; nx2 < len(incX); nx2++ {
			b := incX[nx2].Node
			if !adjacent(a, b) {
				continue
			}
			for _, ic := range X.Inc(a) {
				cc, ac := ic.Node, ic.Edge
				if cc == x || adjacent(x, cc) || !adjacent(b, cc) {
					continue
				}
				orbit[12]++
				if tri[ac] > 1 {
					f[65] += cn.Common3(a, b, cc)
				}
				f[63] += c.commonX.get(cc) - 2
				f[59] += tri[ac] - 1 + cn.Common2(b, cc) - 1
				f[54] += cn.Common2(a, b) - 2
				f[47] += d(x) - 2
				f[46] += d(cc) - 2
				f[40] += d(a) - 3 + d(b) - 3
			}
		}

		// x = orbit-8 (cycle)
		for nx2 := nx1 + 1; nx2 < len(incX); nx2++ {
			b, xb := incX[nx2].Node, incX[nx2].Edge
			if adjacent(a, b) {
				continue
			}
			for _, ic := range X.Inc(a) {
				cc, ac := ic.Node, ic.Edge
				if cc == x || adjacent(x, cc) || !adjacent(b, cc) {
					continue
				}
				orbit[8]++
				if tri[ac] > 0 {
					f[62] += cn.Common3(a, b, cc)
				}
				f[53] += tri[xa] + tri[xb]
				f[51] += tri[ac] + cn.Common2(cc, b)
				f[50] += c.commonX.get(cc) - 2
				f[49] += c.commonA.get(b) - 2
				f[38] += d(x) - 2
				f[37] += d(a) - 2 + d(b) - 2
				f[36] += d(cc) - 2
			}
		}

		// x = orbit-11 (paw)
		for nx2 := nx1 + 1; nx2 < len(incX); nx2++ {
			b := incX[nx2].Node
			if !adjacent(a, b) {
				continue
			}
			for nx3 := 0; nx3 < len(incX); nx3++ {
				cc, xc := incX[nx3].Node, incX[nx3].Edge
				if cc == a || cc == b || adjacent(a, cc) || adjacent(b, cc) {
					continue
				}
				orbit[11]++
				f[44] += tri[xc]
				f[33] += d(x) - 3
				f[30] += d(cc) - 1
				f[26] += d(a) - 2 + d(b) - 2
			}
		}

		// x = orbit-10 (paw)
		for nx2 := 0; nx2 < len(incX); nx2++ {
			b := incX[nx2].Node
			if !adjacent(a, b) {
				continue
			}
			for _, ic := range X.Inc(b) {
				cc, bc := ic.Node, ic.Edge
				if cc == x || cc == a || adjacent(a, cc) || adjacent(x, cc) {
					continue
				}
				orbit[10]++
				f[52] += c.commonA.get(cc) - 1
				f[43] += tri[bc]
				f[32] += d(b) - 3
				f[29] += d(cc) - 1
				f[25] += d(a) - 2
			}
		}

		// x = orbit-9 (paw)
		incA := X.Inc(a)
		for na1, ib := range incA {
			b, ab := ib.Node, ib.Edge
			if b == x || adjacent(x, b) {
				continue
			}
			for _, ic := range incA[na1+1:] {
				cc, ac := ic.Node, ic.Edge
				if cc == x || !adjacent(b, cc) || adjacent(x, cc) {
					continue
				}
				orbit[9]++
				if tri[ab] > 1 && tri[ac] > 1 {
					f[56] += cn.Common3(a, b, cc)
				}
				f[45] += cn.Common2(b, cc) - 1
				f[39] += tri[ab] - 1 + tri[ac] - 1
				f[31] += d(a) - 3
				f[28] += d(x) - 1
				f[24] += d(b) - 2 + d(cc) - 2
			}
		}

		// x = orbit-4 (path)
		for _, ib := range incA {
			b := ib.Node
			if b == x || adjacent(x, b) {
				continue
			}
			for _, ic := range X.Inc(b) {
				cc, bc := ic.Node, ic.Edge
				if cc == a || adjacent(a, cc) || adjacent(x, cc) {
					continue
				}
				orbit[4]++
				f[35] += c.commonA.get(cc) - 1
				f[34] += c.commonX.get(cc)
				f[27] += tri[bc]
				f[18] += d(b) - 2
				f[16] += d(x) - 1
				f[15] += d(cc) - 1
			}
		}

		// x = orbit-5 (path)
		for nx2 := 0; nx2 < len(incX); nx2++ {
			b := incX[nx2].Node
			if b == a || adjacent(a, b) {
				continue
			}
			for _, cc := range X.Adj(b) {
				if cc == x || adjacent(a, cc) || adjacent(x, cc) {
					continue
				}
				orbit[5]++
				f[17] += d(a) - 1
			}
		}

		// x = orbit-6 (claw)
		for na1, ib := range incA {
			b := ib.Node
			if b == x || adjacent(x, b) {
				continue
			}
			for _, ic := range incA[na1+1:] {
				cc := ic.Node
				if cc == x || adjacent(x, cc) || adjacent(b, cc) {
					continue
				}
				orbit[6]++
				f[22] += d(a) - 3
				f[20] += d(x) - 1
				f[19] += d(b) - 1 + d(cc) - 1
			}
		}

		// x = orbit-7 (claw)
		for nx2 := nx1 + 1; nx2 < len(incX); nx2++ {
			b := incX[nx2].Node
			if adjacent(a, b) {
				continue
			}
			for nx3 := nx2 + 1; nx3 < len(incX); nx3++ {
				cc := incX[nx3].Node
				if adjacent(a, cc) || adjacent(b, cc) {
					continue
				}
				orbit[7]++
				f[23] += d(x) - 3
				f[21] += d(a) - 1 + d(b) - 1 + d(cc) - 1
			}
		}
	}

	s := solver{node: x}
	s.solve5(&f, orbit)
	return s.err
}
