package loopselect_test

import (
	"context"
	"fmt"
	"time"

	loopselect "github.com/joeycumines/go-loopselect"
)

// Example resolves the "auto" specifier for the current host and runs the
// selected loop briefly, the way a server bootstrapper would.
func Example() {
	resolver, err := loopselect.NewResolver()
	if err != nil {
		panic(err)
	}

	res, err := resolver.ResolveString("auto", loopselect.DetectFacts(1))
	if err != nil {
		panic(err)
	}

	loop, err := res.Factory()
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	go func() {
		time.Sleep(10 * time.Millisecond)
		_ = loop.Shutdown(ctx)
	}()
	_ = loop.Run(ctx)

	fmt.Println(res.Name != "")
	// Output: true
}

// ExampleResolver_Parse shows the three specifier forms.
func ExampleResolver_Parse() {
	resolver, err := loopselect.NewResolver()
	if err != nil {
		panic(err)
	}

	for _, raw := range []string{"auto", "poll", "ext/turbo.so:NewLoop"} {
		spec, err := resolver.Parse(raw)
		if err != nil {
			panic(err)
		}
		fmt.Println(spec.Kind)
	}
	// Output:
	// auto
	// builtin
	// custom
}
