// Package pipeline implements the markup-to-HTML stages:
//   - Markdown preprocessing (BOM, line endings)
//   - Markdown to HTML conversion via Goldmark, with chroma code highlighting
//     and a ==highlight== inline extension
//   - Style fragment injection before </head>
//
// Writing the result and choosing output paths is left to the root viewdoc
// package.
package pipeline
