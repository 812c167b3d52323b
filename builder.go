package fragql

import "fmt"

// Builder holds the interleaved literal segments and embedded expressions
// of a SQL template prior to finalization. A Builder owns no mutable
// state after construction: Fragment may be called any number of times
// and always produces a fresh sequence.
type Builder[A any] struct {
	segments []string
	embeds   []any
}

// Template creates a Builder from n+1 literal text segments interleaved
// with n embedded expressions, preserving source order. Each embed is one
// of:
//
//   - Fragment[A]: embedded as-is
//   - *Builder[A]: finalized immediately and embedded
//   - Accessor[A] or func(A) Value: wrapped as Arg
//   - any other value: wrapped as Bind, becoming a placeholder
//
// Template panics with a *UsageError when the segment and embed counts
// disagree.
func Template[A any](segments []string, embeds ...any) *Builder[A] {
	if len(segments) != len(embeds)+1 {
		panic(&UsageError{
			Op:     "Template",
			Detail: fmt.Sprintf("%d segments require %d embeds, got %d", len(segments), len(segments)-1, len(embeds)),
		})
	}
	return &Builder[A]{segments: segments, embeds: embeds}
}

// Fragment finalizes the builder into a sequence alternating raw text
// with the wrapped embeds. The final text segment always terminates the
// sequence, even when empty.
func (b *Builder[A]) Fragment() Fragment[A] {
	children := make([]Fragment[A], 0, len(b.segments)+len(b.embeds))
	for i, embed := range b.embeds {
		children = append(children, rawFragment[A]{sql: b.segments[i]}, wrapEmbed[A](embed))
	}
	children = append(children, rawFragment[A]{sql: b.segments[len(b.segments)-1]})
	return seqFragment[A]{children: children}
}

// As finalizes b for embedding under a different argument shape I,
// composing every accessor with the projection mapper.
func As[I, A any](b *Builder[A], mapper func(I) A) Fragment[I] {
	return Remap(b.Fragment(), mapper)
}

func wrapEmbed[A any](embed any) Fragment[A] {
	switch embed := embed.(type) {
	case Fragment[A]:
		return embed
	case *Builder[A]:
		return embed.Fragment()
	case Accessor[A]:
		return argFragment[A]{get: embed}
	case func(A) Value:
		return argFragment[A]{get: embed}
	default:
		return bindFragment[A]{v: embed}
	}
}
