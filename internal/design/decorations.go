package design

import "bragi/internal/models"

// buildDecorations emits the accent shapes for one slide. Element order is
// fixed because the renderer stacks them in sequence: variant shapes first,
// then the corner gradient when the guide allows gradients.
func buildDecorations(style models.SlideStyle, designStyle models.DesignStyle) []models.DecorativeElement {
	var out []models.DecorativeElement
	p := style.Palette

	switch designStyle {
	case models.StyleInnovative, models.StyleTech:
		out = append(out,
			models.DecorativeElement{
				Kind:     models.ElementRect,
				Position: models.ElementPosition{Top: "8%", Right: "6%"},
				Width:    "160px", Height: "8px",
				Color: p.Accent, Opacity: 0.85, ZIndex: 2,
			},
			models.DecorativeElement{
				Kind:     models.ElementRect,
				Position: models.ElementPosition{Bottom: "10%", Left: "5%"},
				Width:    "96px", Height: "8px",
				Color: p.Secondary, Opacity: 0.6, ZIndex: 2,
			},
		)
	case models.StylePlayful:
		out = append(out,
			models.DecorativeElement{
				Kind:     models.ElementCircle,
				Position: models.ElementPosition{Top: "6%", Right: "8%"},
				Width:    "120px", Height: "120px",
				Color: p.Accent, Opacity: 0.35, ZIndex: 1,
			},
			models.DecorativeElement{
				Kind:     models.ElementCircle,
				Position: models.ElementPosition{Bottom: "8%", Left: "6%"},
				Width:    "72px", Height: "72px",
				Color: p.Secondary, Opacity: 0.3, ZIndex: 1,
			},
		)
	default:
		if style.Elements.Shapes {
			out = append(out, models.DecorativeElement{
				Kind:     models.ElementBar,
				Position: models.ElementPosition{Top: "0", Left: "0"},
				Width:    "100%", Height: "6px",
				Color: p.Primary, Opacity: 1, ZIndex: 3,
			})
		}
	}

	if style.Elements.Gradients {
		out = append(out, models.DecorativeElement{
			Kind:     models.ElementCornerGradient,
			Position: models.ElementPosition{Bottom: "0", Right: "0"},
			Width:    "40%", Height: "40%",
			Color: p.Secondary, Opacity: 0.18, ZIndex: 0,
		})
	}

	return out
}
