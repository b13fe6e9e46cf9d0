// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix64

import (
	"fmt"
)

func ExampleValue() {
	a := MustFromString("12.5")
	b := MustFromString("0.2")

	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	product, err := a.Mul(b)
	if err != nil {
		panic(err)
	}
	quotient, err := a.Div(MustFromString("2.5"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s + %s = %s\n", a, b, sum)
	fmt.Printf("%s * %s = %s\n", a, b, product)
	fmt.Printf("floor = %d, frac = %d, rounded = %d\n", a.Floor(), a.Frac(), a.Round())
	fmt.Printf("quotient = %s\n", quotient)

	// Output:
	// 12.5 + 0.2 = 12.7
	// 12.5 * 0.2 = 2.5
	// floor = 12, frac = 500000, rounded = 13
	// quotient = 5
}

func ExampleValue_Sqrt() {
	two, _ := FromUint64(2)
	root, ok := two.Sqrt()
	fmt.Println(root, ok)

	_, ok = Value(0).Sqrt()
	fmt.Println(ok)

	// Output:
	// 1.414214 true
	// false
}
