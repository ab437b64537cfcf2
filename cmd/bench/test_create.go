package main

import (
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

func TestCreate(c Config) {

	client := NewClient()

	before := len(ListUsers(client, c.Base))

	var failures int64
	t0 := time.Now()
	Countdown(c.Workers, c.N, func(i int64) {
		status, _ := Do(client, "POST", c.Base+"/user/")
		if status != http.StatusOK {
			atomic.AddInt64(&failures, 1)
		}
	})
	Report("CREATE", c.N, time.Since(t0))

	after := len(ListUsers(client, c.Base))
	if failures > 0 || int64(after-before) != c.N {
		fmt.Println("ERROR: expected", c.N, "new users, got", after-before, "failures:", failures)
		os.Exit(8)
	}
}
