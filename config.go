package main

import (
	"log"
	"os"
	"strconv"
)

// Port configuration based on environment
var HTTP_PORT int

func init() {
	// Check for high-port development mode
	if os.Getenv("HIGH_PORT_MODE") == "true" {
		log.Println("Running in HIGH_PORT_MODE - using non-privileged port")
		HTTP_PORT = 8080
	} else {
		HTTP_PORT = 5000
	}

	if p := os.Getenv("PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			HTTP_PORT = v
		} else {
			log.Printf("Invalid PORT value %q, keeping %d", p, HTTP_PORT)
		}
	}

	log.Printf("Port configuration: HTTP=%d", HTTP_PORT)
}
