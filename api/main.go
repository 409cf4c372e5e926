package main

import (
	"github.com/joho/godotenv"

	"github.com/Artox/open-build-service/api/cmd/obs"
)

func main() {
	_ = godotenv.Load()
	obs.Execute()
}
