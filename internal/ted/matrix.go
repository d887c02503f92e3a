package ted

// matrix is a dense float64 table over an inclusive index rectangle
// [rowLo..rowHi] x [colLo..colHi], backed by a single flat slice. The
// distance tables index it by postorder positions, including the -1
// row/column that stands for an empty forest.
type matrix struct {
	rowLo, colLo int
	cols         int
	data         []float64
}

func newMatrix(rowLo, rowHi, colLo, colHi int) *matrix {
	rows := rowHi - rowLo + 1
	cols := colHi - colLo + 1
	return &matrix{
		rowLo: rowLo,
		colLo: colLo,
		cols:  cols,
		data:  make([]float64, rows*cols),
	}
}

func (m *matrix) at(r, c int) float64 {
	return m.data[(r-m.rowLo)*m.cols+(c-m.colLo)]
}

func (m *matrix) set(r, c int, v float64) {
	m.data[(r-m.rowLo)*m.cols+(c-m.colLo)] = v
}

func min3(a, b, c float64) float64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
