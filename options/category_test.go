package options_test

import (
	"fmt"

	"github.com/ItsTehBrian/Configurate/options"
)

func ExampleCategoryEnum_Has() {
	fmt.Println(options.CategoryDefault.Has(options.CategoryTextualBool))
	fmt.Println(options.CategoryDefault.Has(options.CategoryUnsafeNumber))
	fmt.Println(options.CategoryAll.Has(options.CategoryUnsafeNumber | options.CategoryTextNumber))
	fmt.Println(options.CategoryNone.Has(options.CategoryNumericChar))

	// Output:
	// true
	// false
	// true
	// false
}
