package main

import (
	"log"

	"github.com/gomecano/cv-matcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
