package builder_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tmatrom/builder"
	"github.com/katalvlaran/tmatrom/solver/disc"
)

func benchBuild(b *testing.B, order int, opts ...builder.Option) {
	s, err := disc.New(3, 1)
	if err != nil {
		b.Fatalf("disc.New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(context.Background(), order, 3, s, opts...); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Direct_30 benchmarks a disc build with the BLAS projection.
func BenchmarkBuild_Direct_30(b *testing.B) { benchBuild(b, 30) }

// BenchmarkBuild_FFT_30 benchmarks the same build with FFT projection.
func BenchmarkBuild_FFT_30(b *testing.B) {
	benchBuild(b, 30, builder.WithProjection(builder.ProjectFFT))
}

// BenchmarkBuild_FFT_30_Workers4 adds parallel column projection.
func BenchmarkBuild_FFT_30_Workers4(b *testing.B) {
	benchBuild(b, 30, builder.WithProjection(builder.ProjectFFT), builder.WithWorkers(4))
}
