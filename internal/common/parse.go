package common

import (
	"strconv"
	"strings"
)

// ParseUint64orHex parses a decimal or 0x-prefixed hex number, as found in node error messages.
// A nil value parses as 0.
func ParseUint64orHex(val *string) (uint64, error) {
	if val == nil {
		return 0, nil
	}

	str := strings.TrimSpace(*val)
	base := 10

	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		str = str[2:]
		base = 16
	}

	return strconv.ParseUint(str, base, 64)
}

// ToLowerWithTrim normalises configuration keys such as log levels and component names.
func ToLowerWithTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
