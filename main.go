package main

import "github.com/user/sentinel-aegis/cmd"

func main() {
	cmd.Execute()
}
