package api

import (
	"fmt"
	"strconv"
)

func jsonInt(id int64) string {
	return strconv.FormatInt(id, 10)
}

// jsonNumber formats an id decoded into an any, which encoding/json produces as float64.
func jsonNumber(v any) string {
	return fmt.Sprintf("%.0f", v)
}
