// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// ExampleMatrix_Mul multiplies two 2×2 matrices read from text.
func ExampleMatrix_Mul() {
	a, _ := matrix.New[int](2)
	b, _ := matrix.New[int](2)
	_ = a.ReadText(strings.NewReader("1 2\n4 5"))
	_ = b.ReadText(strings.NewReader("1 3\n4 9"))

	c, err := a.Mul(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	_, _ = c.WriteTo(os.Stdout)

	// Output:
	// 9 21
	// 24 57
}

// ExampleMatrix_MulVec shows the matrix-vector product and a size error.
func ExampleMatrix_MulVec() {
	a, _ := matrix.New[int](2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 4)
	_ = a.Set(1, 1, 5)

	v, _ := vector.FromSlice([]int{1, 4}, 2)
	y, _ := a.MulVec(v)
	fmt.Println(y)

	short, _ := vector.New[int](3)
	_, err := a.MulVec(short)
	fmt.Println(err)

	// Output:
	// 9 24
	// Matrix.MulVec: vector: size mismatch
}
