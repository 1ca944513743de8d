// SPDX-License-Identifier: MIT

// Command rank23 multiplies 3×3 matrices with the 23-multiplication scheme
// and verifies the scheme against the naive product.
package main

func main() {
	Execute()
}
