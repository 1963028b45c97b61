package main

import "bazi-chart/internal/cli"

func main() {
	cli.Execute()
}
