package benchmark

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	translationaccuracy "github.com/baditaflorin/go_translation_accuracy"
	"github.com/baditaflorin/go_translation_accuracy/internal/adapters/normalizer"
	"github.com/baditaflorin/go_translation_accuracy/internal/core/domain"
	"github.com/baditaflorin/go_translation_accuracy/internal/ports"
)

// generateText creates a text of roughly the specified byte size by
// repeating a sample sentence.
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "The quick brown fox jumps over the lazy dog. This sentence contains all letters of the English alphabet and is commonly used for testing text processing algorithms and systems."
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}

	if sb.Len() > size {
		return sb.String()[:size]
	}
	return sb.String()
}

// BenchmarkNormalizers compares the default and optimized normalizers on
// inputs of different sizes.
func BenchmarkNormalizers(b *testing.B) {
	smallText := generateText(100)    // 100 bytes
	mediumText := generateText(10000) // 10 KB
	largeText := generateText(100000) // 100 KB

	benchmarks := []struct {
		name  string
		norm  ports.Normalizer
		input string
	}{
		{"Default-Small", normalizer.NewWhitespace(), smallText},
		{"Default-Medium", normalizer.NewWhitespace(), mediumText},
		{"Default-Large", normalizer.NewWhitespace(), largeText},

		{"Optimized-Small", normalizer.NewOptimized(), smallText},
		{"Optimized-Medium", normalizer.NewOptimized(), mediumText},
		{"Optimized-Large", normalizer.NewOptimized(), largeText},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bm.input)))

			for i := 0; i < b.N; i++ {
				_ = bm.norm.Normalize(bm.input)
			}
		})
	}
}

// BenchmarkCompare benchmarks single-pair comparison with different
// configurations. The texts stay small; the edit-distance table is
// quadratic in their lengths.
func BenchmarkCompare(b *testing.B) {
	original := generateText(2000)
	similar := strings.Replace(original, "the", "a", 10)
	different := generateText(1000)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	b.Run("Builtin", func(b *testing.B) {
		c, _ := translationaccuracy.New()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = c.Compare(ctx, original, similar)
		}
	})

	b.Run("LibraryDistance", func(b *testing.B) {
		c, _ := translationaccuracy.New(
			translationaccuracy.WithLibraryDistance(),
		)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = c.Compare(ctx, original, similar)
		}
	})

	b.Run("OptimizedNormalizer", func(b *testing.B) {
		c, _ := translationaccuracy.New(
			translationaccuracy.WithOptimizedNormalizer(),
		)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = c.Compare(ctx, original, similar)
		}
	})

	b.Run("Different", func(b *testing.B) {
		c, _ := translationaccuracy.New()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = c.Compare(ctx, original, different)
		}
	})

	b.Run("Identical", func(b *testing.B) {
		c, _ := translationaccuracy.New()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = c.Compare(ctx, original, original)
		}
	})
}

// BenchmarkCompareBatch benchmarks batch comparison at different
// parallelism levels.
func BenchmarkCompareBatch(b *testing.B) {
	var pairs []domain.TextPair
	base := generateText(1000)
	for i := 0; i < 32; i++ {
		pairs = append(pairs, domain.TextPair{
			Reference:  base,
			Hypothesis: strings.Replace(base, "fox", "cat", i%5),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, parallelism := range []int{1, 2, 4, 8} {
		b.Run("Parallelism-"+strconv.Itoa(parallelism), func(b *testing.B) {
			c, _ := translationaccuracy.New(
				translationaccuracy.WithParallelism(parallelism),
			)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = c.CompareBatch(ctx, pairs)
			}
		})
	}
}
