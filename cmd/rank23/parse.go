// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/ring"
	"github.com/samber/lo"
)

// splitGrid splits "1,2,3;4,5,6;7,8,9" into trimmed cells. Shape is not
// checked here; matrix.FromRows reports it as a ShapeError.
func splitGrid(s string) [][]string {
	rows := strings.Split(strings.TrimSpace(s), ";")
	return lo.Map(rows, func(row string, _ int) []string {
		return lo.Map(strings.Split(row, ","), func(cell string, _ int) string {
			return strings.TrimSpace(cell)
		})
	})
}

// parseMat3 parses the grid named arg with parse applied to every cell.
func parseMat3[T any](arg, s string, parse func(string) (T, error)) (matrix.Mat3[T], error) {
	cells := splitGrid(s)
	rows := make([][]T, len(cells))
	for i, row := range cells {
		rows[i] = make([]T, len(row))
		for j, cell := range row {
			v, err := parse(cell)
			if err != nil {
				return matrix.Mat3[T]{}, fmt.Errorf("%s: row %d col %d: %w", arg, i, j, err)
			}
			rows[i][j] = v
		}
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return m, fmt.Errorf("%s: %w", arg, err)
	}

	return m, nil
}

func parseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// parseMod reads signed integers and reduces them into r.
func parseMod(r ring.Mod) func(string) (uint64, error) {
	return func(s string) (uint64, error) {
		v, err := parseInt(s)
		if err != nil {
			return 0, err
		}
		return r.Elem(v), nil
	}
}
