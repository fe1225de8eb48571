package rng_test

import (
	"fmt"

	"github.com/lox/arandu/rng"
)

func ExampleNew() {
	g := rng.New(12345678910)
	for i := 0; i < 5; i++ {
		fmt.Println(g.Uint64())
	}
	// Output:
	// 17268875868827775025
	// 15907229386274246648
	// 14832573858159415549
	// 8229320679984513782
	// 10555335349386087215
}

func ExampleGenerator_LongJump() {
	g := rng.New(12345678910)
	for i := 0; i < 5; i++ {
		g.Uint64()
	}
	g.LongJump()
	for i := 0; i < 5; i++ {
		fmt.Println(g.Uint64())
	}
	// Output:
	// 15692518693471803865
	// 2277327732768985144
	// 1854986761115111549
	// 9011823577279469932
	// 1375242800036617185
}

func ExampleGenerator_Streams() {
	workers := rng.New(12345678910).Streams(3)
	for i, g := range workers {
		fmt.Println(i, g.Uint64())
	}
	// Output:
	// 0 17268875868827775025
	// 1 17873933020239986777
	// 2 11939092052353193890
}
