package linkage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethodRoundTrip(t *testing.T) {
	methods := []Method{
		MethodSingle, MethodComplete, MethodAverage, MethodWeighted,
		MethodWard, MethodCentroid, MethodMedian,
	}
	for _, m := range methods {
		parsed, err := ParseMethod(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseMethodUnknown(t *testing.T) {
	_, err := ParseMethod("bogus")
	assert.Error(t, err)
	assert.Equal(t, `linkage: unrecognized method name: "bogus"`, err.Error())
}

func TestParseMethodChainRoundTrip(t *testing.T) {
	methods := []MethodChain{
		MethodChainSingle, MethodChainComplete, MethodChainAverage,
		MethodChainWeighted, MethodChainWard,
	}
	for _, m := range methods {
		parsed, err := ParseMethodChain(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseMethodChainUnknown(t *testing.T) {
	_, err := ParseMethodChain("centroid")
	assert.Error(t, err)
}

func TestMethodAsChain(t *testing.T) {
	chain, ok := MethodSingle.AsChain()
	assert.True(t, ok)
	assert.Equal(t, MethodChainSingle, chain)

	_, ok = MethodCentroid.AsChain()
	assert.False(t, ok)

	_, ok = MethodMedian.AsChain()
	assert.False(t, ok)
}

func TestMethodChainAsMethod(t *testing.T) {
	assert.Equal(t, MethodWard, MethodChainWard.AsMethod())
	assert.Equal(t, MethodChainWard.String(), MethodWard.String())
}

func TestUpdateSingle(t *testing.T) {
	b := 5.0
	updateSingle(3.0, &b)
	assert.Equal(t, 3.0, b)

	b = 2.0
	updateSingle(3.0, &b)
	assert.Equal(t, 2.0, b)
}

func TestUpdateComplete(t *testing.T) {
	b := 5.0
	updateComplete(3.0, &b)
	assert.Equal(t, 5.0, b)

	b = 2.0
	updateComplete(3.0, &b)
	assert.Equal(t, 3.0, b)
}

func TestUpdateAverage(t *testing.T) {
	b := 10.0
	updateAverage(2.0, &b, 1, 1)
	assert.Equal(t, 6.0, b)

	b = 10.0
	updateAverage(2.0, &b, 1, 3)
	// (1*2 + 3*10) / 4 = 32/4 = 8
	assert.Equal(t, 8.0, b)
}

func TestUpdateWeighted(t *testing.T) {
	b := 10.0
	updateWeighted(2.0, &b)
	assert.Equal(t, 6.0, b)
}

func TestUpdateMedian(t *testing.T) {
	b := 10.0
	updateMedian(2.0, &b, 4.0)
	// 0.5*(2+10) - 4*0.25 = 6 - 1 = 5
	assert.Equal(t, 5.0, b)
}

func TestSquareMatrixOnlyAffectsSquaredMethods(t *testing.T) {
	data := []float64{1.0, 2.0, 3.0}

	cp := append([]float64(nil), data...)
	squareMatrix(MethodWard, cp)
	assert.Equal(t, []float64{1.0, 4.0, 9.0}, cp)

	cp = append([]float64(nil), data...)
	squareMatrix(MethodSingle, cp)
	assert.Equal(t, data, cp)
}
