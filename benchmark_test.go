package mt2_test

import (
	"testing"

	"github.com/tgmt2/mt2"
)

func BenchmarkCompute(b *testing.B) {
	ev := mt2.Event{
		MVis1: 100, PxVis1: 410, PyVis1: 20,
		MVis2: 150, PxVis2: -210, PyVis2: -300,
		PxMiss: -200, PyMiss: 280,
		MInvis1: 100, MInvis2: 100,
	}
	opts := mt2.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mt2.Compute(ev, opts)
	}
}
