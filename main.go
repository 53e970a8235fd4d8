package main

import "github.com/yueyanglu/lu-etal/cmd"

func main() {
	cmd.Execute()
}
