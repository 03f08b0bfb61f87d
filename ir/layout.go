package ir

import "fmt"

// ResolvedMember is a block member with its placement decided.
type ResolvedMember struct {
	Name string
	Type Type

	// Count is the array element count, zero for non-arrays.
	Count uint32

	// Offset is the resolved byte offset. For push-constant blocks it
	// is global across the push area, matching authored offsets.
	Offset uint32

	// Size is the byte size of the member including array stride.
	Size uint32
}

// End returns the first byte past the member.
func (m ResolvedMember) End() uint32 {
	return m.Offset + m.Size
}

// ResolveLayout places block members so that every dialect addresses
// the same bytes. The rules, applied in declaration order with a
// cursor starting at base:
//
//   - Three- and four-component vectors and all arrays round the
//     cursor up to a multiple of 16 before placement.
//   - Two-component vectors round up to a multiple of 8.
//   - Scalars are placed at the cursor if they fit before the next
//     16-byte boundary, otherwise at the next boundary.
//   - Array elements stride in 16-byte units, hence the four-component
//     element requirement on BlockMember.Count.
//   - An explicit member offset must satisfy the member's alignment
//     and must not fall below the cursor; it may only introduce gaps.
//
// The returned span is the byte distance from base to the end of the
// last member. When capacity is non-zero and the span exceeds it,
// ResolveLayout fails with ErrLayoutOverflow.
func ResolveLayout(members []BlockMember, base, capacity uint32) ([]ResolvedMember, uint32, error) {
	resolved := make([]ResolvedMember, 0, len(members))
	cursor := base

	for _, m := range members {
		if !m.Type.IsValid() {
			return nil, 0, &Error{
				Kind:    ErrInvalidShader,
				Entity:  m.Name,
				Message: fmt.Sprintf("invalid member type %s", m.Type),
			}
		}

		size := m.Type.Size()
		align := m.Type.Align()
		if m.Count > 0 {
			if m.Type.Size() != 16 {
				return nil, 0, &Error{
					Kind:    ErrInvalidShader,
					Entity:  m.Name,
					Message: fmt.Sprintf("array members need a four-component element type, got %s", m.Type),
				}
			}
			size = 16 * m.Count
			align = 16
		}

		offset := alignUp(cursor, align)
		if m.Count == 0 && m.Type.Count == 1 && crosses16(cursor, size) {
			offset = alignUp(cursor, 16)
		}

		if m.Offset != nil {
			want := *m.Offset
			if want < cursor {
				return nil, 0, &Error{
					Kind:    ErrInvalidShader,
					Entity:  m.Name,
					Message: fmt.Sprintf("explicit offset %d overlaps the previous member (cursor %d)", want, cursor),
				}
			}
			if want%align != 0 {
				return nil, 0, &Error{
					Kind:    ErrInvalidShader,
					Entity:  m.Name,
					Message: fmt.Sprintf("explicit offset %d is not aligned to %d", want, align),
				}
			}
			offset = want
		}

		resolved = append(resolved, ResolvedMember{
			Name:   m.Name,
			Type:   m.Type,
			Count:  m.Count,
			Offset: offset,
			Size:   size,
		})
		cursor = offset + size
	}

	span := cursor - base
	if capacity > 0 && span > capacity {
		return nil, 0, &Error{
			Kind:    ErrLayoutOverflow,
			Message: fmt.Sprintf("members span %d bytes, capacity is %d", span, capacity),
		}
	}
	return resolved, span, nil
}

func alignUp(v, align uint32) uint32 {
	return (v + align - 1) / align * align
}

// crosses16 reports whether a value of the given size placed at the
// cursor would straddle a 16-byte boundary.
func crosses16(cursor, size uint32) bool {
	return cursor/16 != (cursor+size-1)/16
}
