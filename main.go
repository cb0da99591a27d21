package main

import "github.com/chrisdamba/foodcatalogsim/cmd"

func main() {
	cmd.Execute()
}
