package timex_test

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
	"github.com/msto63/epochx/foundation/utils/timex"
)

func ExampleConverter_StringToEpoch() {
	c := timex.NewConverter(timex.WithNormalizer(timex.LocationNormalizer{Location: time.UTC}))

	secs, err := c.StringToEpoch("2023-12-25 15:30:45")
	fmt.Println(secs, err)

	secs, err = c.StringToEpoch("1969-12-31 23:59:59")
	fmt.Println(secs, err)

	_, err = c.StringToEpoch("2023-12-25T15:30:45")
	fmt.Println(mdwerror.GetCode(err), mdwerror.GetCode(err).Number())
	// Output:
	// 1703518245 <nil>
	// -1 <nil>
	// MALFORMED_DATETIME 11
}

func ExampleParser_Parse() {
	bt, err := timex.NewParser(timex.WithMultiplier(timex.ShiftMultiplier{})).Parse([]byte("2023-13-01"))
	fmt.Println(bt.Year, bt.Month, bt.Day, err)
	// Output: 2023 12 1 <nil>
}
