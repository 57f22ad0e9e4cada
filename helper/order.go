package helper

import "fmt"

// FormatOrderCode renders the external order identifier, e.g. ORD000042.
func FormatOrderCode(id uint) string {
	return fmt.Sprintf("ORD%06d", id)
}
