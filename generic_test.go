package linkage

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lvlath/linkage/internal/distinct"
)

func TestGenericAgreesWithPrimitive(t *testing.T) {
	methods := []Method{
		MethodSingle,
		MethodComplete,
		MethodAverage,
		MethodWeighted,
		MethodWard,
		MethodCentroid,
		MethodMedian,
	}

	rng := rand.New(rand.NewSource(3))
	for _, method := range methods {
		for trial := 0; trial < 40; trial++ {
			n := rng.Intn(25)
			m := distinct.New(rng, n)

			want := Primitive(m.Data(), m.Observations(), method)
			got := Generic(m.Data(), m.Observations(), method)

			assert.True(t, want.EqualWithin(got, 1e-9),
				"method=%s observations=%d\nwant=%v\ngot=%v", method, n, want.Steps(), got.Steps())
		}
	}
}

func TestGenericAgreesWithNNChain(t *testing.T) {
	methods := []MethodChain{
		MethodChainSingle,
		MethodChainComplete,
		MethodChainAverage,
		MethodChainWeighted,
		MethodChainWard,
	}

	rng := rand.New(rand.NewSource(4))
	for _, method := range methods {
		for trial := 0; trial < 40; trial++ {
			n := rng.Intn(25)
			m := distinct.New(rng, n)

			want := NNChain(m.Data(), m.Observations(), method)
			got := Generic(m.Data(), m.Observations(), method.AsMethod())

			assert.True(t, want.EqualWithin(got, 1e-9),
				"method=%s observations=%d\nwant=%v\ngot=%v", method, n, want.Steps(), got.Steps())
		}
	}
}

func TestGenericTrivial(t *testing.T) {
	den := Generic([]float64{}, 0, MethodCentroid)
	assert.Equal(t, 0, den.Len())

	den = Generic([]float64{}, 1, MethodMedian)
	assert.Equal(t, 0, den.Len())
}
