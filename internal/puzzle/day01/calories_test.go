package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/advent/internal/domain"
)

const example = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestParse(t *testing.T) {
	elves, err := Parse([]byte(example))
	require.NoError(t, err)

	want := []Elf{{6000}, {4000}, {11000}, {24000}, {10000}}
	assert.Equal(t, want, elves)
}

func TestParse_TrimsWhitespaceAndCRLF(t *testing.T) {
	elves, err := Parse([]byte(" 1 \r\n2\r\n\r\n3\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []Elf{{3}, {3}}, elves)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"blank":       "\n\n",
		"not a count": "100\nabc\n",
		"negative":    "100\n\n-5\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindInvalidInput), "got %v", err)
		})
	}
}

func TestParse_ErrorReportsLine(t *testing.T) {
	_, err := Parse([]byte("1\n2\n\nx\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestMostCalories(t *testing.T) {
	elves, err := Parse([]byte(example))
	require.NoError(t, err)

	pos, cal, err := MostCalories(elves)
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
	assert.Equal(t, uint64(24000), cal)

	_, _, err = MostCalories(nil)
	assert.Error(t, err)
}

func TestTopCalories(t *testing.T) {
	elves, err := Parse([]byte(example))
	require.NoError(t, err)

	assert.Equal(t, uint64(45000), TopCalories(elves, 3))
	assert.Equal(t, uint64(7), TopCalories([]Elf{{3}, {4}}, 3), "fewer than three elves sums them all")
}

func TestSolve(t *testing.T) {
	parts, err := Solver{}.Solve([]byte(example))
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, "24000", parts[0].Value)
	assert.Equal(t, "4", parts[0].Vars["elf"])
	assert.Equal(t, "45000", parts[1].Value)
	assert.Equal(t, 1, Solver{}.Info().Day)
}
