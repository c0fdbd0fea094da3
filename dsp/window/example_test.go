package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHann, 4, WithPeriodic())
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.50 1.00 0.50
}

func ExampleParseType() {
	t, err := ParseType("flattop")
	if err != nil {
		panic(err)
	}
	fmt.Println(t, t == TypeFlatTop)
	// Output:
	// flattop true
}
