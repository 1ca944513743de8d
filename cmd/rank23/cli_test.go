package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/katalvlaran/rank23/matrix"
	"github.com/katalvlaran/rank23/rank23"
	"github.com/katalvlaran/rank23/ring"
	"github.com/katalvlaran/rank23/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	seq = "1,2,3;4,5,6;7,8,9"
	rev = "9,8,7;6,5,4;3,2,1"
	id  = "1,0,0;0,1,0;0,0,1"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errb)
	err := root.Execute()
	return out.String(), errb.String(), err
}

func TestParseMat3(t *testing.T) {
	m, err := parseMat3("A", " 1, 2,3 ; 4,5,6;7,8, 9 ", parseInt)
	require.NoError(t, err)
	assert.Equal(t, matrix.Mat3[int64]{1, 2, 3, 4, 5, 6, 7, 8, 9}, m)

	_, err = parseMat3("A", "1,2,x;4,5,6;7,8,9", parseInt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A: row 0 col 2")

	// Eight and ten entries are rejected before any arithmetic.
	for _, tc := range []struct {
		in        string
		row, cols int
	}{
		{"1,2,3;4,5,6;7,8", 2, 2},
		{"1,2,3;4,5,6;7,8,9,10", 2, 4},
	} {
		_, err = parseMat3("B", tc.in, parseInt)
		require.ErrorIs(t, err, matrix.ErrBadShape)
		var se *matrix.ShapeError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, tc.row, se.Row)
		assert.Equal(t, tc.cols, se.Cols)
	}

	_, err = parseMat3("B", "1,2,3;4,5,6", parseInt)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestMulCmd(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"int", []string{"mul", seq, rev}, "[30, 24, 18]\n[84, 69, 54]\n[138, 114, 90]\n"},
		{"int checked", []string{"mul", "--check", seq, id}, "[1, 2, 3]\n[4, 5, 6]\n[7, 8, 9]\n"},
		{"mod", []string{"mul", "--ring", "mod", "--modulus", "7", seq, rev}, "[2, 3, 4]\n[0, 6, 5]\n[5, 2, 6]\n"},
		{"float", []string{"mul", "--ring", "float", "1.5,0,0;0,1,0;0,0,1", seq}, "[1.5, 3, 4.5]\n[4, 5, 6]\n[7, 8, 9]\n"},
		{"big", []string{"mul", "--ring", "big", "--check", "12345678901234567890,0,0;0,1,0;0,0,1", id},
			"[12345678901234567890, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestMulCmd_Errors(t *testing.T) {
	_, _, err := run(t, "mul", "1,2,3;4,5,6;7,8", seq)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, _, err = run(t, "mul", "--ring", "mod", "--modulus", "0", seq, seq)
	require.ErrorIs(t, err, ring.ErrZeroModulus)

	_, _, err = run(t, "mul", "--ring", "quaternion", seq, seq)
	require.Error(t, err)

	_, _, err = run(t, "mul", seq)
	require.Error(t, err)
}

func TestMulCmd_Logging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "mul", seq, id)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"counts":"mul=23 add=29 sub=31 neg=0 total=83"`)

	_, _, err = run(t, "--log-level", "loud", "mul", seq, id)
	require.Error(t, err)
}

func TestVerifyCmd(t *testing.T) {
	out, _, err := run(t, "verify", "-n", "50", "--seed", "3", "-o", "json")
	require.NoError(t, err)
	var rep verify.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.Passed)
	assert.Equal(t, uint64(3), rep.Config.Seed)
	assert.Equal(t, int64(rank23.Multiplications), rep.Counts.Muls)

	out, _, err = run(t, "verify", "-n", "20", "-o", "yaml")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, true, doc["passed"])

	out, _, err = run(t, "verify", "-n", "1000", "-w", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Fixed")
	assert.Contains(t, out, "1,000 trials")
	assert.Contains(t, out, "PASS: ")

	_, _, err = run(t, "verify", "-n", "0")
	require.ErrorIs(t, err, verify.ErrInvalidConfig)
}

func TestCountCmd(t *testing.T) {
	out, _, err := run(t, "count", "--depth", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "rank23   23   29   31    0     83")
	assert.Contains(t, out, "naive    27   18    0    0     45")
	assert.Contains(t, out, "n=9: 529 vs 729 scalar multiplications")

	_, _, err = run(t, "count", "--depth", "0")
	require.Error(t, err)
}

func TestEnvCmd(t *testing.T) {
	out, _, err := run(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "GOARCH:")
	assert.Contains(t, out, "batch:")
}
