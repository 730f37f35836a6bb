package donors

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary amount as the remote API sends it: sometimes a JSON
// number, sometimes a string like "1250.00", sometimes null or absent.
//
// Decoding never fails: anything that is not a number decodes to zero, so a
// drifting upstream shape can not break a report.
type Amount struct {
	decimal.Decimal
}

// A is a shortcut to create an Amount.
func A(v float64) Amount { return Amount{decimal.NewFromFloat(v)} }

func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Decimal = parseAmount(data)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Decimal.String())
}

func parseAmount(data []byte) decimal.Decimal {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return decimal.Zero
	}
	str := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &str); err != nil {
			return decimal.Zero
		}
		// thousand separators are common in hand typed amounts.
		str = strings.ReplaceAll(strings.TrimSpace(str), ",", "")
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero
	}
	return d
}
