package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | CREATE | READ | DELETE"`
	Base    string `usage:"base URL, empty to start an in-process server"`
	N       int64  `usage:"number of users"`
	Workers int    `usage:"number of workers"`
}

var cleanups []func()

func main() {

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	c := Config{
		Test:    "ALL",
		Base:    "",
		N:       100_000,
		Workers: 16,
	}
	goconfig.Read(&c)

	CreateServer(&c)

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestCreate(c)
		TestRead(c)
		TestDelete(c)
	case "CREATE":
		TestCreate(c)
	case "READ":
		TestRead(c)
	case "DELETE":
		TestDelete(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
