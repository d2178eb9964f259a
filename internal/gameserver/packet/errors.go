package packet

import "fmt"

// TooMuchDataError reports a collection whose length does not fit its
// size prefix.
type TooMuchDataError struct {
	Len int
	Max int
}

func (e *TooMuchDataError) Error() string {
	return fmt.Sprintf("too much data: %d elements, prefix max %d", e.Len, e.Max)
}
