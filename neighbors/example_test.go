package neighbors_test

import (
	"fmt"

	"github.com/katalvlaran/katas/neighbors"
)

// ExampleMaxDonations collects from a circle of six residents.
// Residents 0 and 5 are neighbours, so 10 and 8 cannot both donate.
func ExampleMaxDonations() {
	donations := []int{10, 3, 2, 5, 7, 8}
	opts := neighbors.DefaultOptions()
	opts.ReturnPicks = true

	total, picks, err := neighbors.MaxDonations(donations, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(total, picks)
	// Output:
	// 19 [0 2 4]
}

// ExampleMaxDonations_rolling computes the total in constant memory.
func ExampleMaxDonations_rolling() {
	total, _, _ := neighbors.MaxDonations([]int{7, 7, 7, 7, 7, 7, 7}, &neighbors.Options{MemoryMode: neighbors.Rolling})
	fmt.Println(total)
	// Output:
	// 21
}
