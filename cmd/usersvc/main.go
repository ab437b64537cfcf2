package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/usersvc/bootstrap"
	"github.com/fulldump/usersvc/configuration"
)

var VERSION = "dev"

var banner = `
  _   _                                
 | | | |___  ___ _ __ ___  _   _____   
 | | | / __|/ _ \ '__/ __|| | / / __|  
 | |_| \__ \  __/ |  \__ \ \ V / (__   
  \___/|___/\___|_|  |___/  \_/ \___|  
                       version ` + VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		json.MarshalWrite(os.Stdout, c, jsontext.WithIndent("    "))
		fmt.Println()
	}

	start, _, err := bootstrap.Bootstrap(c)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	start()
}
