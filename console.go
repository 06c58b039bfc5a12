package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Console is the expression input strip along the bottom edge. Typing
// reports literal changes as they happen; submitting with Enter
// evaluates the whole expression and reports the result.
type Console struct {
	ui    *ebitenui.UI
	input *widget.TextInput
}

func NewConsole(onExpression func(literal *float64), onResult func(value *float64, err error)) *Console {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth-16, 28),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     imageui.NewNineSliceColor(color.NRGBA{R: 24, G: 28, B: 34, A: 230}),
			Disabled: imageui.NewNineSliceColor(color.NRGBA{R: 24, G: 28, B: 34, A: 120}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.NRGBA{R: 230, G: 230, B: 230, A: 255},
			Disabled: color.NRGBA{R: 140, G: 140, B: 140, A: 255},
			Caret:    color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		}),
		widget.TextInputOpts.Face(&face),
		widget.TextInputOpts.Placeholder("enter a number or expression"),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			onExpression(numericLiteral(args.InputText))
		}),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			v, err := EvalExpression(args.InputText)
			if err != nil {
				onResult(nil, err)
				return
			}
			onResult(&v, nil)
		}),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Bottom: 8, Left: 8, Right: 8}),
		)),
	)
	root.AddChild(input)

	return &Console{ui: &ebitenui.UI{Container: root}, input: input}
}

func (c *Console) Update() {
	c.ui.Update()
}

func (c *Console) Draw(screen *ebiten.Image) {
	c.ui.Draw(screen)
}

func (c *Console) Text() string {
	return c.input.GetText()
}

// numericLiteral parses text as a bare numeric literal. Anything richer
// than a literal, including emptiness, yields nil.
func numericLiteral(text string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil
	}
	return &v
}

// EvalExpression evaluates a calculator expression. The math module is
// bound under "math", so math.sqrt and friends work inside expressions.
func EvalExpression(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, fmt.Errorf("empty expression")
	}

	src := "math := import(\"math\")\n__r := (" + expr + ")"
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	compiled, err := script.Compile()
	if err != nil {
		return 0, err
	}
	if err := compiled.Run(); err != nil {
		return 0, err
	}

	v := compiled.Get("__r")
	switch v.ValueType() {
	case "int":
		return float64(v.Int()), nil
	case "float":
		return v.Float(), nil
	}
	return 0, fmt.Errorf("expression result is %s, not a number", v.ValueType())
}
