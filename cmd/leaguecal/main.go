package main

import "github.com/leaguefeeds/leaguecal/internal/cli"

func main() {
	cli.Execute()
}
