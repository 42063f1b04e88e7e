package client

import "fmt"

type ErrWaitThreshold struct {
	Got      int64
	Expected int64
}

func (e ErrWaitThreshold) Error() string {
	return fmt.Sprintf("waiting for %d blocks exceeded the threshold %d", e.Got, e.Expected)
}
