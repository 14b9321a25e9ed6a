package main

import "github.com/redactyl/footprint/cmd/footprint"

func main() { footprint.Execute() }
