package main

import "github.com/Manu343726/nc10as/cmd"

func main() {
	cmd.Execute()
}
