package material

import (
	"fmt"
	"math"
	"sort"

	"meshline/mesh"
)

// Material describes a subdomain: an identifier used as the cell tag and the
// border interval [Borders[0], Borders[1]] it occupies.
type Material struct {
	ID      uint       `yaml:"id"`
	Borders [2]float64 `yaml:"borders,flow"`
}

// Low returns the lower border of the material.
func (m Material) Low() float64 { return m.Borders[0] }

// High returns the upper border of the material.
func (m Material) High() float64 { return m.Borders[1] }

// Contains reports whether x lies inside the material's border interval,
// inclusive on both ends within mesh.Tolerance.
func (m Material) Contains(x float64) bool {
	return x >= m.Borders[0]-mesh.Tolerance && x <= m.Borders[1]+mesh.Tolerance
}

// PartitionError reports that a set of material borders fails to partition
// the domain. The message names the failed check and the offending values.
type PartitionError struct {
	msg string
}

func (e *PartitionError) Error() string { return e.msg }

func partitionErrorf(format string, args ...any) *PartitionError {
	return &PartitionError{msg: fmt.Sprintf(format, args...)}
}

// CheckBorders verifies that the materials' border intervals exactly
// partition [0, size]: sorted by lower bound they must begin at zero, chain
// contiguously, and end at size. Comparisons use mesh.Tolerance.
//
// With one material or none there is nothing to check and CheckBorders
// returns nil; callers normally skip it entirely in that case.
func CheckBorders(size float64, materials []Material) error {
	if len(materials) < 2 {
		return nil
	}

	borders := make([][2]float64, len(materials))
	for i, m := range materials {
		borders[i] = m.Borders
	}
	sort.Slice(borders, func(i, j int) bool { return borders[i][0] < borders[j][0] })

	if math.Abs(borders[0][0]) > mesh.Tolerance {
		return partitionErrorf("borders don't begin at zero (first border starts at %g)", borders[0][0])
	}

	for i := 0; i < len(borders)-1; i++ {
		if math.Abs(borders[i][1]-borders[i+1][0]) > mesh.Tolerance {
			return partitionErrorf("borders don't match (border ending at %g is followed by border starting at %g)", borders[i][1], borders[i+1][0])
		}
	}

	if last := borders[len(borders)-1][1]; math.Abs(last-size) > mesh.Tolerance {
		return partitionErrorf("borders don't match with size (last border ends at %g, domain size is %g)", last, size)
	}

	return nil
}
