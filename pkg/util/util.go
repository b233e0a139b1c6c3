package util

import (
	"time"
)

func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

func Must[T any](val T, err error) T {
	PanicIfErr(err)
	return val
}

// SetInterval calls f every interval until stop is called.
// stop waits for a running f to return.
func SetInterval(f func(start, now time.Time), interval time.Duration) (stop func()) {
	start := time.Now()
	ticker := time.NewTicker(interval)
	stopChan := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case now := <-ticker.C:
				f(start, now)
			case <-stopChan:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(stopChan)
		<-done
	}
}
