package liborca

import (
	"github.com/2x3systems/orca/orca"
)

// solver performs the exact integer divisions of the orbit equations for one node.
// The first inexact division is kept in err and every later division is a no-op.
type solver struct {
	node int
	err  error
}

func (s *solver) div(orbit int, num, divisor int64) int64 {
	if s.err != nil {
		return 0
	}
	if num%divisor != 0 {
		s.err = &orca.InternalInvariantError{
			Node:    s.node,
			Orbit:   orbit,
			Num:     num,
			Divisor: divisor,
		}
		return 0
	}
	return num / divisor
}

// solve4 derives orbits 4..14 from the raw frequencies gathered by counter4.
// Higher orbits are solved first; the coefficients follow from graphlet automorphism counts.
func (s *solver) solve4(f *freq4, orbit []int64) {
	orbit[14] = f.f_14
	orbit[13] = s.div(13, f.f_13_14-6*f.f_14, 2)
	orbit[12] = f.f_12_14 - 3*f.f_14
	orbit[11] = s.div(11, f.f_11_13-f.f_13_14+6*f.f_14, 2)
	orbit[10] = f.f_10_13 - f.f_13_14 + 6*f.f_14
	orbit[9] = s.div(9, f.f_9_12-2*f.f_12_14+6*f.f_14, 2)
	orbit[8] = s.div(8, f.f_8_12-2*f.f_12_14+6*f.f_14, 2)
	orbit[7] = s.div(7, f.f_13_14+f.f_7_11-f.f_11_13-6*f.f_14, 6)
	orbit[6] = s.div(6, 2*f.f_12_14+f.f_6_9-f.f_9_12-6*f.f_14, 2)
	orbit[5] = 2*f.f_12_14 + f.f_5_8 - f.f_8_12 - 6*f.f_14
	orbit[4] = 2*f.f_12_14 + f.f_4_8 - f.f_8_12 - 6*f.f_14
}

// term is coef * orbit[orbit]
type term struct {
	coef  int64
	orbit int
}

// equation5 expresses orbit[orbit] = (f[orbit] - sum(terms)) / divisor, where every term names a higher orbit.
type equation5 struct {
	orbit   int
	divisor int64
	terms   []term
}

// equations5 is ordered from orbit 71 down to orbit 15 so that every term is already solved when it is read.
// Orbit 72 (the 5-clique) is counted directly.
var equations5 = []equation5{
	{71, 2, []term{{12, 72}}},
	{70, 1, []term{{4, 72}}},
	{69, 4, []term{{2, 71}}},
	{68, 1, []term{{2, 71}}},
	{67, 1, []term{{12, 72}, {4, 71}}},
	{66, 1, []term{{12, 72}, {2, 71}, {3, 70}}},
	{65, 2, []term{{3, 70}}},
	{64, 1, []term{{2, 71}, {4, 69}, {1, 68}}},
	{63, 1, []term{{3, 70}, {2, 68}}},
	{62, 2, []term{{1, 68}}},
	{61, 2, []term{{4, 71}, {8, 69}, {2, 67}}},
	{60, 1, []term{{4, 71}, {2, 68}, {2, 67}}},
	{59, 1, []term{{6, 70}, {2, 68}, {4, 65}}},
	{58, 1, []term{{4, 72}, {2, 71}, {1, 67}}},
	{57, 1, []term{{12, 72}, {4, 71}, {3, 70}, {1, 67}, {2, 66}}},
	{56, 3, []term{{2, 65}}},
	{55, 3, []term{{2, 71}, {2, 67}}},
	{54, 2, []term{{3, 70}, {1, 66}, {2, 65}}},
	{53, 1, []term{{2, 68}, {2, 64}, {2, 63}}},
	{52, 2, []term{{2, 66}, {2, 64}, {1, 59}}},
	{51, 1, []term{{2, 68}, {2, 63}, {4, 62}}},
	{50, 3, []term{{1, 68}, {2, 63}}},
	{49, 2, []term{{1, 68}, {1, 64}, {2, 62}}},
	{48, 1, []term{{4, 71}, {8, 69}, {2, 68}, {2, 67}, {2, 64}, {2, 61}, {1, 60}}},
	{47, 1, []term{{3, 70}, {2, 68}, {1, 66}, {1, 63}, {1, 60}}},
	{46, 1, []term{{3, 70}, {2, 68}, {2, 65}, {1, 63}, {1, 59}}},
	{45, 1, []term{{2, 65}, {2, 62}, {3, 56}}},
	{44, 4, []term{{1, 67}, {2, 61}}},
	{43, 2, []term{{2, 66}, {1, 60}, {1, 59}}},
	{42, 1, []term{{2, 71}, {4, 69}, {2, 67}, {2, 61}, {3, 55}}},
	{41, 1, []term{{2, 71}, {1, 68}, {2, 67}, {1, 60}, {3, 55}}},
	{40, 1, []term{{6, 70}, {2, 68}, {2, 66}, {4, 65}, {1, 60}, {1, 59}, {4, 54}}},
	{39, 2, []term{{4, 65}, {1, 59}, {6, 56}}},
	{38, 1, []term{{1, 68}, {1, 64}, {2, 63}, {1, 53}, {3, 50}}},
	{37, 1, []term{{2, 68}, {2, 64}, {2, 63}, {4, 62}, {1, 53}, {1, 51}, {4, 49}}},
	{36, 1, []term{{1, 68}, {2, 63}, {2, 62}, {1, 51}, {3, 50}}},
	{35, 2, []term{{1, 59}, {2, 52}, {2, 45}}},
	{34, 2, []term{{1, 59}, {2, 52}, {1, 51}}},
	{33, 2, []term{{1, 67}, {2, 61}, {3, 58}, {4, 44}, {2, 42}}},
	{32, 2, []term{{2, 66}, {1, 60}, {1, 59}, {2, 57}, {2, 43}, {2, 41}, {1, 40}}},
	{31, 1, []term{{2, 65}, {1, 59}, {3, 56}, {1, 43}, {2, 39}}},
	{30, 1, []term{{1, 67}, {1, 63}, {2, 61}, {1, 53}, {4, 44}}},
	{29, 1, []term{{2, 66}, {2, 64}, {1, 60}, {1, 59}, {1, 53}, {2, 52}, {2, 43}}},
	{28, 1, []term{{2, 65}, {2, 62}, {1, 59}, {1, 51}, {1, 43}}},
	{27, 2, []term{{1, 59}, {1, 51}, {2, 45}}},
	{26, 1, []term{{2, 67}, {2, 63}, {2, 61}, {6, 58}, {1, 53}, {2, 47}, {2, 42}}},
	{25, 2, []term{{2, 66}, {2, 64}, {1, 59}, {2, 57}, {2, 52}, {1, 48}, {1, 40}}},
	{24, 1, []term{{4, 65}, {4, 62}, {1, 59}, {6, 56}, {1, 51}, {2, 45}, {2, 39}}},
	{23, 4, []term{{1, 55}, {1, 42}, {2, 33}}},
	{22, 3, []term{{2, 54}, {1, 40}, {1, 39}, {1, 32}, {2, 31}}},
	{21, 1, []term{{3, 55}, {3, 50}, {2, 42}, {2, 38}, {2, 33}}},
	{20, 1, []term{{2, 54}, {2, 49}, {1, 40}, {1, 37}, {1, 32}}},
	{19, 1, []term{{4, 54}, {4, 49}, {1, 40}, {2, 39}, {1, 37}, {2, 35}, {2, 31}}},
	{18, 2, []term{{1, 59}, {1, 51}, {2, 46}, {2, 45}, {2, 36}, {2, 27}, {1, 24}}},
	{17, 2, []term{{1, 60}, {1, 53}, {1, 51}, {1, 48}, {1, 37}, {2, 34}, {2, 30}}},
	{16, 1, []term{{1, 59}, {2, 52}, {1, 51}, {2, 46}, {2, 36}, {2, 34}, {1, 29}}},
	{15, 1, []term{{1, 59}, {2, 52}, {1, 51}, {2, 45}, {2, 35}, {2, 34}, {2, 27}}},
}

// solve5 derives orbits 15..72 from the raw frequencies f gathered by counter5, where f[72] holds the 5-clique count.
func (s *solver) solve5(f *[73]int64, orbit []int64) {
	orbit[72] = f[72]
	for _, eq := range equations5 {
		num := f[eq.orbit]
		for _, t := range eq.terms {
			num -= t.coef * orbit[t.orbit]
		}
		orbit[eq.orbit] = s.div(eq.orbit, num, eq.divisor)
	}
}
