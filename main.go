package main

import (
	"log"
	"os"

	"fingenius/src/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
