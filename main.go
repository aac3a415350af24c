package main

import "github.com/nutrilog/devseed/cmd/nutriseed"

func main() {
	nutriseed.Execute()
}
