package opening

import "testing"

func BenchmarkComputeMaxCapacity(b *testing.B) {
	wall := wallAt(0, 40, 2.5)
	for i := 0; i < b.N; i++ {
		ComputeMaxCapacity(wall, 0.5, 0.1, 1.2)
	}
}

func BenchmarkGenerateOpenings(b *testing.B) {
	wall := wallAt(0, 40, 2.5)
	for i := 0; i < b.N; i++ {
		GenerateOpenings(wall, 60, 0.5, 0.1, 1.2, 0x87ceeb)
	}
}
