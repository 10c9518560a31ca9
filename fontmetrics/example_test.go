package fontmetrics_test

import (
	"fmt"
	"log"

	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/termgrid"
	"github.com/gogpu/termgrid/fontmetrics"
)

func ExampleFromFace() {
	gm, err := fontmetrics.FromFace(basicfont.Face7x13,
		fontmetrics.WithPageSize(termgrid.PageSize{Lines: 24, Columns: 80}),
		fontmetrics.WithPageMargin(termgrid.PageMargin{Left: 2, Top: 2}),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(gm)
	fmt.Println(gm.MapTopLeft(1, 1), gm.PageExtent())
	// Output:
	// (pageSize=24x80, cellSize=7x13, baseline=2, underline=1@1, margin=(left=2, bottom=0))
	// (9, 15) 562x314
}
