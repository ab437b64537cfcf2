package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"
)

func TestDelete(c Config) {

	client := NewClient()

	ids := Preload(client, c)

	t0 := time.Now()
	Countdown(c.Workers, c.N, func(i int64) {
		status, _ := Do(client, "DELETE", c.Base+"/user/"+strconv.Itoa(ids[i]))
		if status != http.StatusOK {
			fmt.Println("ERROR: delete user", ids[i], status)
			os.Exit(10)
		}
	})
	Report("DELETE", c.N, time.Since(t0))

	// freed slots are reused lowest first
	status, body := Do(client, "POST", c.Base+"/user/")
	if status != http.StatusOK {
		fmt.Println("ERROR: create after delete:", status)
		os.Exit(11)
	}
	fmt.Println("DELETE next id after deleting all:", body)
}
