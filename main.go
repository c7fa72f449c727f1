package main

import holdall "github.com/holdall/holdall/cmd/holdall"

func main() { holdall.Execute() }
