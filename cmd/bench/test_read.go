package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"
)

func TestRead(c Config) {

	client := NewClient()

	ids := Preload(client, c)

	t0 := time.Now()
	Countdown(c.Workers, c.N, func(i int64) {
		id := ids[rand.Intn(len(ids))]
		status, _ := Do(client, "GET", c.Base+"/user/"+strconv.Itoa(id))
		if status != http.StatusOK {
			fmt.Println("ERROR: read user", id, status)
			os.Exit(9)
		}
	})
	Report("READ", c.N, time.Since(t0))
}
