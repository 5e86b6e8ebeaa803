package model

import (
	"strconv"
	"strings"
)

// FlexInt decodes JSON numbers or numeric strings. The storefront sends
// prices and quantities as either, and non-numeric input coerces to 0
// instead of failing the request.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int64(v))
		return nil
	}
	*f = 0
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

func (f FlexInt) Int64() int64 {
	return int64(f)
}
