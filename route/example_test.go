package route_test

import (
	"fmt"

	"github.com/tycoonlabs/worldmap/core"
	"github.com/tycoonlabs/worldmap/route"
)

// ExampleFindPath routes across a small trade network.
func ExampleFindPath() {
	m := core.NewWorldMap()
	for _, id := range []string{"harbor", "market", "quarry", "keep"} {
		_ = m.AddNode(core.NewNode(id, 0, 0))
	}
	_, _ = m.Connect("harbor", "market")
	_, _ = m.Connect("market", "keep")
	_, _ = m.Connect("harbor", "quarry")
	_, _ = m.Connect("quarry", "keep")

	path, err := route.FindPath(m, "harbor", "keep")
	if err != nil {
		fmt.Println("no route:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [harbor market keep]
}
