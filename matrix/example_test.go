package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/infogain/matrix"
)

// ExampleNewDenseFromRows copies a table into row-major storage and reads a column.
func ExampleNewDenseFromRows() {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 1},
		{1, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	labels, _ := m.Col(m.Cols() - 1)
	fmt.Print(m)
	fmt.Println("labels:", labels)
	// Output:
	// [0, 1, 1]
	// [1, 0, 0]
	// labels: [1 0]
}
