// Package ir defines the portable shader description that shadergen
// renders into dialect source text.
//
// Unlike a compiler IR, this model stops at the declaration level: it
// describes one entry point's resources, constant blocks, stage
// interface and body, and leaves the body itself as authored statement
// text. The backends never parse that text; everything that must differ
// between dialects is requested through the Vocab passed to the body
// callback.
//
// # Structure
//
// A Shader holds:
//   - Resources: textures and samplers with per-dialect binding
//     coordinates supplied up front
//   - Blocks: uniform constant blocks with portably resolved member
//     offsets
//   - Push: the optional push-constant block for the stage
//   - IO: the ordered stage interface (linked slots and system values)
//   - Body: a callback producing the body text for one render
//
// # Authoring contract
//
// Body text is written once and must stay dialect-neutral: component
// swizzles, arithmetic and operator syntax shared by all dialects, and
// Vocab calls for everything else (type spellings, intrinsics, texture
// access, block member access). Bodies reference stage IO slots by
// their declared names, and outputs are written by assigning to the
// named slots. A body that declares outputs must run to its end, since
// output delivery is generated after it; compute bodies may return
// early.
//
// # Portable conventions
//
// Rendered shaders behave identically under these conventions, with
// per-dialect fix-ups generated where a dialect deviates:
//   - Clip-space Y points up.
//   - The fragment coordinate's W component holds the reciprocal of
//     clip-space W.
//   - Block member offsets follow the layout rules documented on
//     ResolveLayout, so one CPU-side struct feeds every dialect.
//
// # Failure model
//
// Nothing is rendered on error: validation, binding synthesis, layout
// resolution and vocabulary mapping all fail before any source text is
// produced, and every failure carries an ErrorKind describing which
// contract was violated.
package ir
