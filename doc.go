// Package viewdoc renders lightweight markup documents to styled HTML files
// for viewing in a browser.
//
// # Quick Start
//
// Render a file next to itself and get the artifact path back:
//
//	v := viewdoc.NewViewer(viewdoc.WithStyle(fragment))
//	out, err := v.RenderPath(ctx, "docs/README.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// out == "/abs/docs/.README.md.html"
//
// # Targets
//
// RenderPath classifies its argument once:
//
//   - a regular file is rendered to a hidden sibling, ".<name>.html";
//   - a directory is treated as a Python package: its setup.py is run with
//     --long-description and the output is rendered to ".long-description.html"
//     in that directory;
//   - anything else fails with ErrNotFound.
//
// While rendering, the process working directory is the target's directory,
// so relative references in the document resolve as they would for the
// author. The previous directory is restored on every return path.
//
// # Conversion Pipeline
//
//  1. Preprocessing (BOM, line endings, ==highlight== syntax)
//  2. Markdown to HTML via Goldmark (GFM, footnotes, chroma highlighting)
//  3. Style fragment spliced before the first </head>
//  4. Write to the artifact path
//
// Artifacts are overwritten on every run and never deleted by the package.
package viewdoc
