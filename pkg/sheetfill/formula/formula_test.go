package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShift(t *testing.T) {
	tests := []struct {
		formula    string
		dCol, dRow int
		expected   string
	}{
		{"=A1+1", 0, 1, "=A2+1"},
		{"=A1+1", 1, 0, "=B1+1"},
		{"=SUM(A1:B2)", 0, 3, "=SUM(A4:B5)"},
		{"=$A$1*B2", 2, 2, "=$A$1*D4"},
		{"=$A1+A$1", 1, 1, "=$A2+B$1"},
		{"=Sheet2!C3", 0, -1, "=Sheet2!C2"},
		{"=A1", 0, -1, "=" + RefError},
		{"=A1", -1, 0, "=" + RefError},
		{`="A1"&A1`, 0, 1, `="A1"&A2`},
		{"=SUM(A:A)", 1, 5, "=SUM(B:B)"},
		{"=MyRange*2", 3, 3, "=MyRange*2"},
		{"A1*2", 0, 1, "A2*2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Shift(tt.formula, tt.dCol, tt.dRow),
			"Shift(%q, %d, %d)", tt.formula, tt.dCol, tt.dRow)
	}
}

func TestEncodeIsPositionIndependent(t *testing.T) {
	a := Encode("=A1+1", 2, 1)
	b := Encode("=A2+1", 2, 2)
	assert.Equal(t, a, b)
	assert.Equal(t, "=R[0]C[-1]+1", a)

	c := Encode("=A1+1", 2, 2)
	assert.NotEqual(t, a, c)
}

func TestEncodeAbsolute(t *testing.T) {
	assert.Equal(t, Encode("=$A$1", 1, 1), Encode("=$A$1", 5, 9))
	assert.Equal(t, "=R1C1", Encode("=$A$1", 5, 9))
}

func TestReferences(t *testing.T) {
	assert.Equal(t, []string{"A1", "B2:C3"}, References("=A1+SUM(B2:C3)"))
	assert.Empty(t, References(`="text"`))
}
