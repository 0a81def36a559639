package life

// rowRange computes the contiguous interior rows [start, end] owned by
// worker t out of threads workers over a gridsize x gridsize interior.
// Every worker gets exactly gridsize/threads rows (integer division) in
// worker-index order starting at row 1. When threads does not divide
// gridsize the leftover rows at the high end belong to nobody and keep
// their initial seeding for the whole run; callers wanting every row
// updated must pick a thread count that divides the grid size.
func rowRange(t, threads, gridsize int) (start, end int) {
	start = t*gridsize/threads + 1
	end = start + gridsize/threads - 1
	return start, end
}
