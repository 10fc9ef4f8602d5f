package main

import "github.com/Manu343726/rvasm/cmd"

func main() {
	cmd.Execute()
}
