package main

import (
	"github.com/joho/godotenv"

	"mnemo/cmd/mnemo-cli/cmd"
)

func main() {
	godotenv.Load()
	cmd.Execute()
}
