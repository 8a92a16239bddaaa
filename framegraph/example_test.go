package framegraph_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/framegraph"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/transform"
)

// ExampleGraph_Transform picks the cheaper two-hop route over a direct edge.
func ExampleGraph_Transform() {
	a, b, c := frame.Frame{Kind: "A"}, frame.Frame{Kind: "B"}, frame.Frame{Kind: "C"}
	ab, _ := transform.NewTranslation(a, b, matrix.Vec3{1, 0, 0}, 1.0)
	bc, _ := transform.NewTranslation(b, c, matrix.Vec3{0, 1, 0}, 2.0)
	ac, _ := transform.NewTranslation(a, c, matrix.Vec3{0, 0, 1}, 5.0)

	g := framegraph.New()
	_ = g.AddRoot(a)
	_ = g.Register(a, b, ab, nil)
	_ = g.Register(b, c, bc, nil)
	_ = g.Connect(a, c, ac, nil)

	e := epoch.FromYear(2020)
	p, _ := g.Path(a, c, e)
	t, err := g.Transform(a, c, e)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(p, p.Cost, t.Position(matrix.Zero))
	// Output: A→B→C 3 (1, 1, 0)
}

// ExampleGraph_Adopt registers a rotated frame through a Definition.
func ExampleGraph_Adopt() {
	body := frame.Frame{Kind: "BODY"}
	r, _ := transform.NewRotation(frame.GCRF(), body, matrix.RotationZ(math.Pi/2), 1)

	g := framegraph.New()
	_ = g.AddRoot(frame.GCRF())
	if _, err := g.Adopt(framegraph.Definition{Child: body, Of: frame.GCRF(), Forward: r}); err != nil {
		fmt.Println("error:", err)
		return
	}

	t, _ := g.Transform(frame.GCRF(), body, epoch.J2000)
	p := t.Position(matrix.Vec3{1, 0, 0})
	fmt.Printf("(%.3f, %.3f, %.3f)\n", p[0], p[1], p[2])

	_, err := g.Transform(body, frame.Frame{Kind: "MOON"}, epoch.J2000)
	fmt.Println(err)
	// Output:
	// (0.000, 1.000, 0.000)
	// framegraph: no path between frames: framegraph: frame not found: MOON
}

// ExampleGraph_Mermaid renders the registry as a flowchart.
func ExampleGraph_Mermaid() {
	body := frame.Frame{Kind: "BODY"}
	r, _ := transform.NewRotation(frame.GCRF(), body, matrix.Identity(), 1)

	g := framegraph.New()
	_ = g.AddRoot(frame.GCRF())
	_ = g.Register(frame.GCRF(), body, r, nil)

	fmt.Print(g.Mermaid(nil))
	// Output:
	// graph LR
	//     BODY["BODY"]
	//     BODY --> GCRF
	//     GCRF["GCRF"]
	//     GCRF --> BODY
}
