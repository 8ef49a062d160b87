package compat

// Reduce iteratively removes vertices that can never be matched and returns
// the cleaned matrix together with the number of vertices removed.
//
// Stage 1 (Prepare): copy the bit table and count live in/out degrees.
// Stage 2 (Execute): sweep vertices; one without a live out-edge or without
// a live in-edge is marked unmatchable and all its edges are cleared, which
// may starve its neighbours. Sweep again until a full pass changes nothing.
// Stage 3 (Finalize): rebuild neighbour lists.
//
// The count is the number of unmatchable vertices of the result, so
// vertices that were already isolated count as removed. Re-applying Reduce
// returns the same matrix and reports the same count again; counts from
// successive passes must not be summed. The result is the unique largest
// vertex set in which every vertex has an in- and out-edge inside the set,
// so Reduce(Reduce(m)) == Reduce(m).
//
// Complexity: O(n²) time, O(n²) memory for the copy.
func Reduce(m Matrix) (Matrix, int) {
	n := m.n
	bits := append([]bool(nil), m.bits...)
	outDeg := make([]int, n)
	inDeg := make([]int, n)
	var v int
	for v = 0; v < n; v++ {
		outDeg[v] = len(m.out[v])
		inDeg[v] = len(m.in[v])
	}

	removed := make([]bool, n)
	count := 0
	changed := true
	for changed {
		changed = false
		for v = 0; v < n; v++ {
			if removed[v] || (outDeg[v] > 0 && inDeg[v] > 0) {
				continue
			}
			removed[v] = true
			count++
			changed = true
			clearVertex(bits, n, v, outDeg, inDeg)
		}
	}

	return fromBits(n, bits), count
}

// clearVertex drops every live edge touching v and keeps degree counters in step.
func clearVertex(bits []bool, n, v int, outDeg, inDeg []int) {
	var j int
	for j = 0; j < n; j++ {
		if bits[v*n+j] { // v→j
			bits[v*n+j] = false
			outDeg[v]--
			inDeg[j]--
		}
		if bits[j*n+v] { // j→v
			bits[j*n+v] = false
			outDeg[j]--
			inDeg[v]--
		}
	}
}
