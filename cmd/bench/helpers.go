package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fulldump/usersvc/bootstrap"
	"github.com/fulldump/usersvc/configuration"
)

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

// Countdown runs f in parallel until n items have been consumed, f receives
// the item number.
func Countdown(workers int, n int64, f func(i int64)) {
	items := n
	Parallel(workers, func() {
		for {
			i := atomic.AddInt64(&items, -1)
			if i < 0 {
				return
			}
			f(i)
		}
	})
}

func NewClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
		Timeout: 10 * time.Second,
	}
}

// Do sends a request and returns status and body, it exits on transport
// errors.
func Do(client *http.Client, method, url string) (int, string) {

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		fmt.Println("ERROR: new request:", err.Error())
		os.Exit(3)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("ERROR: do request:", err.Error())
		os.Exit(4)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Println("ERROR: read body:", err.Error())
		os.Exit(5)
	}

	return resp.StatusCode, string(body)
}

// Preload creates n users and returns their ids
func Preload(client *http.Client, c Config) []int {

	fmt.Println("Preload users...")

	ids := make([]int, c.N)
	Countdown(c.Workers, c.N, func(i int64) {
		status, body := Do(client, "POST", c.Base+"/user/")
		if status != http.StatusOK {
			fmt.Println("ERROR: create user:", status)
			os.Exit(6)
		}
		id, err := strconv.Atoi(body)
		if err != nil {
			fmt.Println("ERROR: unexpected id:", body)
			os.Exit(7)
		}
		ids[i] = id
	})

	return ids
}

// ListUsers returns the ids currently stored in the server
func ListUsers(client *http.Client, base string) []string {
	_, body := Do(client, "GET", base+"/users")
	if body == "" {
		return nil
	}
	return strings.Split(body, ",")
}

func Report(name string, n int64, took time.Duration) {
	fmt.Println(name, "sent:", n)
	fmt.Println(name, "took:", took)
	fmt.Printf("%s Throughput: %.2f req/sec\n", name, float64(n)/took.Seconds())
}

// CreateServer starts an in-process server when no base URL is configured
func CreateServer(c *Config) {

	if c.Base != "" {
		return
	}

	conf := configuration.Default()
	conf.HttpAddr = "127.0.0.1:8087"
	conf.EnableAccessLog = false
	conf.Capacity = int(c.N)
	c.Base = "http://" + conf.HttpAddr

	start, stop, err := bootstrap.Bootstrap(conf)
	if err != nil {
		fmt.Println("ERROR: bootstrap:", err.Error())
		os.Exit(2)
	}
	cleanups = append(cleanups, stop)
	go start()

	client := NewClient()
	for {
		status, _ := Do(client, "GET", c.Base+"/")
		if status == http.StatusOK {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
