package main

import (
	"log"

	"github.com/PSINGLA1407/socialmedia/internal/transport/http"
)

func main() {
	if err := http.Run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
