package selection

// Next moves the cursor down one row, wrapping to the top. It returns 0 for
// an empty view.
func Next(n, cur int) int {
	if n <= 0 {
		return 0
	}
	if cur >= n-1 || cur < 0 {
		return 0
	}
	return cur + 1
}

// Previous moves the cursor up one row, wrapping to the bottom. It returns 0
// for an empty view.
func Previous(n, cur int) int {
	if n <= 0 {
		return 0
	}
	if cur <= 0 || cur >= n {
		return n - 1
	}
	return cur - 1
}

// Clamp resets cur to 0 once it falls outside a view of n rows.
func Clamp(n, cur int) int {
	if cur < 0 || cur >= n {
		return 0
	}
	return cur
}
