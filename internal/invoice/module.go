package invoice

import "go.uber.org/fx"

// Module exposes the PDF invoice renderer to fx graph.
var Module = fx.Provide(func() Renderer { return NewPDFRenderer() })
