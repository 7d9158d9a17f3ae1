package wire_test

import (
	"testing"

	"github.com/wippyai/protowire/wire"
)

func BenchmarkWriterScalars(b *testing.B) {
	w := wire.NewWriter()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Tag(1, wire.WireVarint).Uint32(uint32(i))
		w.Tag(2, wire.WireVarint).Sint64(int64(-i))
		w.Tag(3, wire.WireFixed64).Double(float64(i) * 0.5)
		w.Tag(4, wire.WireBytes).String("benchmark")
		_ = w.Finish()
	}
}

func BenchmarkWriterNested(b *testing.B) {
	w := wire.NewWriter()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 8; j++ {
			w.Fork()
			w.Tag(1, wire.WireVarint).Uint32(uint32(j))
			w.Ldelim(2)
		}
		_ = w.Finish()
	}
}

func BenchmarkReaderScalars(b *testing.B) {
	buf := wire.NewWriter().
		Tag(1, wire.WireVarint).Uint32(12345).
		Tag(2, wire.WireFixed64).Double(3.5).
		Tag(3, wire.WireBytes).String("benchmark").
		Finish()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := wire.NewReader(buf)
		for r.Len() > 0 {
			_, wt, err := r.Tag()
			if err != nil {
				b.Fatal(err)
			}
			if err := r.Skip(wt); err != nil {
				b.Fatal(err)
			}
		}
	}
}
