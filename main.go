package main

import "github.com/varalys/luhn/cmd/luhn"

func main() { luhn.Execute() }
